package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	httpapi "github.com/risechangeslives/risecms/internal/cms/http"
	"github.com/risechangeslives/risecms/internal/cms/mail"
	"github.com/risechangeslives/risecms/internal/cms/service"
	"github.com/risechangeslives/risecms/internal/cms/store"
	"github.com/risechangeslives/risecms/internal/cms/store/drivers/jsonfile"
	"github.com/risechangeslives/risecms/pkg/jwtx"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the CMS backend with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.HS256
	mailer mail.Sender

	authService    *service.AuthService
	userService    *service.UserService
	contentService *service.ContentService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "rise-cms",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}

	app.signer = jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("cms backend starting",
		"port", app.cfg.Port,
		"env", app.cfg.Env,
		"version", BuildVersion,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down cms backend...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("cms backend stopped")
	return nil
}

// initStore opens the flat-file store, seeding the default super admin
// and site content on first run.
func (app *Application) initStore() error {
	db, err := jsonfile.Open(jsonfile.Config{
		UsersPath:   app.cfg.UsersFile,
		ContentPath: app.cfg.ContentFile,
		DefaultUsers: domain.DefaultUsers(
			app.cfg.DefaultAdminEmail,
			app.cfg.DefaultAdminName,
			time.Now().UTC(),
		),
		DefaultContent: domain.DefaultContent(),
	}, app.logger)
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}

	app.db = db
	return nil
}

// initMailer picks SMTP when configured, otherwise logs codes to the
// console so the login flow stays usable in development.
func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("SMTP not configured, verification codes will be logged")
		app.mailer = &mail.ConsoleSender{Logger: app.logger}
		return
	}

	app.mailer = mail.NewSMTPSender(mail.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.MailFrom,
	})
}

func (app *Application) initServices() {
	app.authService = service.NewAuthService(
		app.db,
		service.NewCodeRegistry(),
		app.mailer,
		app.signer,
		app.cfg.Issuer,
	)
	app.userService = service.NewUserService(app.db)
	app.contentService = service.NewContentService(app.db)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.signer, app.cfg.Env, app.cfg.CORSOrigin, app.logger)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.ContentService = app.contentService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
