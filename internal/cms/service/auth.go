package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/mail"
	"github.com/risechangeslives/risecms/internal/cms/store"
	"github.com/risechangeslives/risecms/pkg/jwtx"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "user is
	// inactive". The two cases are deliberately indistinguishable in the
	// response; receipt of the email remains the only existence signal.
	ErrInvalidCredentials = errors.New("service: invalid credentials")
	ErrMailDelivery       = errors.New("service: verification email delivery failed")
	ErrUserDeactivated    = errors.New("service: user not found or deactivated")
)

// AuthService implements the two-step login flow: an emailed one-time
// code exchanged for a signed session token.
type AuthService struct {
	Store      store.Store
	Registry   *CodeRegistry
	Mailer     mail.Sender
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration

	now func() time.Time
}

func NewAuthService(st store.Store, registry *CodeRegistry, mailer mail.Sender, signer jwtx.Signer, issuer string) *AuthService {
	return &AuthService{
		Store:      st,
		Registry:   registry,
		Mailer:     mailer,
		Signer:     signer,
		Issuer:     issuer,
		SessionTTL: jwtx.DefaultSessionTTL,
		now:        time.Now,
	}
}

// RequestLogin finds an active user by email, issues a verification code
// and dispatches it. Returns the normalised email for the response body.
func (s *AuthService) RequestLogin(ctx context.Context, email string) (string, error) {
	log := slogx.FromContext(ctx)
	normalized := strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login requested for unknown email")
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !user.IsActive {
		log.Warn("login requested for inactive user", slog.Int("user_id", user.ID))
		return "", ErrInvalidCredentials
	}

	code, err := s.Registry.Issue(normalized, user.ID)
	if err != nil {
		return "", err
	}

	if err := s.Mailer.SendVerificationCode(ctx, user.Email, user.Name, code); err != nil {
		log.Error("verification email dispatch failed",
			slog.Int("user_id", user.ID),
			slog.Any("error", err),
		)
		return "", ErrMailDelivery
	}

	log.Info("verification code issued", slog.Int("user_id", user.ID))
	return normalized, nil
}

// CompleteLogin verifies the submitted code, stamps the user's last login
// and returns a signed session token with the public user view.
func (s *AuthService) CompleteLogin(ctx context.Context, email, code string) (string, domain.PublicUser, error) {
	log := slogx.FromContext(ctx)

	userID, err := s.Registry.Verify(email, code)
	if err != nil {
		return "", domain.PublicUser{}, err
	}

	// Re-fetch: the account may have been deactivated or deleted between
	// the two login steps.
	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.PublicUser{}, ErrUserDeactivated
		}
		return "", domain.PublicUser{}, err
	}
	if !user.IsActive {
		return "", domain.PublicUser{}, ErrUserDeactivated
	}

	loginAt := s.now().UTC()
	if err := s.Store.Users().TouchLastLogin(ctx, user.ID, loginAt); err != nil {
		return "", domain.PublicUser{}, err
	}
	user.LastLogin = &loginAt

	token, err := s.Signer.Sign(jwtx.NewSessionClaims(
		user.ID,
		user.Email,
		user.Role.String(),
		s.Issuer,
		s.SessionTTL,
		s.now(),
	))
	if err != nil {
		return "", domain.PublicUser{}, err
	}

	log.Info("login completed", slog.Int("user_id", user.ID), slog.String("role", user.Role.String()))
	return token, user.Public(), nil
}
