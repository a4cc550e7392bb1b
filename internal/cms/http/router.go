package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/risechangeslives/risecms/internal/cms/service"
	"github.com/risechangeslives/risecms/pkg/httpx"
	"github.com/risechangeslives/risecms/pkg/jwtx"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier jwtx.Verifier
	env      string
	logger   *slog.Logger

	AuthService    *service.AuthService
	UserService    *service.UserService
	ContentService *service.ContentService
}

func NewRouter(verifier jwtx.Verifier, env, corsOrigin string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:      http.NewServeMux(),
		verifier: verifier,
		env:      env,
		logger:   logger,
	}

	r.middlewares = []httpx.Middleware{
		httpx.Recover(),
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{corsOrigin},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerContent()
	r.registerSystem()

	// Anything the mux did not match above.
	r.Mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Route not found")
	})
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	verifyHandler := &VerifyHandler{AuthService: r.AuthService}
	sessionHandler := &SessionHandler{UserService: r.UserService}

	// Both steps of the login flow share the strict per-IP limit: the
	// first is an email-enumeration surface, the second a code oracle.
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.AuthLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.AuthLimit),
		),
	)

	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleLogout),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Account management is reserved for super admins.
	secured := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("super", "Super admin access required"),
		)
	}

	r.Mux.Handle("GET /api/auth/users", secured(h.HandleList))
	r.Mux.Handle("POST /api/auth/users", secured(h.HandleCreate))
	r.Mux.Handle("PUT /api/auth/users/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/auth/users/{id}", secured(h.HandleDelete))
}

func (r *Router) registerContent() {
	h := &ContentHandler{ContentService: r.ContentService}

	// Reads are public; the marketing site fetches content anonymously.
	r.Mux.HandleFunc("GET /api/content", h.HandleGetAll)
	r.Mux.HandleFunc("GET /api/content/{section}", h.HandleGetSection)

	// Writes need a valid session of either role.
	authn := httpx.AuthnMiddleware(r.verifier)
	r.Mux.Handle("PUT /api/content",
		httpx.Chain(http.HandlerFunc(h.HandlePutAll), authn),
	)
	r.Mux.Handle("PUT /api/content/{section}",
		httpx.Chain(http.HandlerFunc(h.HandlePutSection), authn),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /health", &HealthHandler{Env: r.env})
}
