package service

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/store/drivers/jsonfile"
	"github.com/risechangeslives/risecms/pkg/jwtx"
)

// captureSender records the last dispatched code instead of sending mail.
type captureSender struct {
	to   string
	code string
	fail bool
}

func (c *captureSender) SendVerificationCode(_ context.Context, to, _, code string) error {
	if c.fail {
		return errors.New("smtp unreachable")
	}
	c.to = to
	c.code = code
	return nil
}

func newTestAuth(t *testing.T) (*AuthService, *captureSender, *jwtx.HS256) {
	t.Helper()

	dir := t.TempDir()
	st, err := jsonfile.Open(jsonfile.Config{
		UsersPath:      filepath.Join(dir, "users.json"),
		ContentPath:    filepath.Join(dir, "content.json"),
		DefaultUsers:   domain.DefaultUsers("admin@example.com", "Admin", time.Now().UTC()),
		DefaultContent: domain.DefaultContent(),
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	signer := jwtx.NewHS256([]byte("test-secret"), "risecms")
	sender := &captureSender{}
	return NewAuthService(st, NewCodeRegistry(), sender, signer, "risecms"), sender, signer
}

func TestLoginFlow(t *testing.T) {
	svc, sender, verifier := newTestAuth(t)
	ctx := context.Background()

	email, err := svc.RequestLogin(ctx, "  Admin@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", email)
	require.Len(t, sender.code, 6)
	require.Equal(t, "admin@example.com", sender.to)

	token, user, err := svc.CompleteLogin(ctx, email, sender.code)
	require.NoError(t, err)
	require.Equal(t, 1, user.ID)
	require.Equal(t, domain.RoleSuper, user.Role)
	require.NotNil(t, user.LastLogin)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Equal(t, "admin@example.com", claims.Email)
	require.Equal(t, "super", claims.Role)
}

func TestRequestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	_, err := svc.RequestLogin(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequestLoginInactiveUser(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	ctx := context.Background()

	admin, err := svc.Store.Users().GetByID(ctx, 1)
	require.NoError(t, err)
	admin.IsActive = false
	require.NoError(t, svc.Store.Users().Update(ctx, admin))

	_, err = svc.RequestLogin(ctx, "admin@example.com")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequestLoginMailFailure(t *testing.T) {
	svc, sender, _ := newTestAuth(t)
	sender.fail = true

	_, err := svc.RequestLogin(context.Background(), "admin@example.com")
	require.ErrorIs(t, err, ErrMailDelivery)
}

func TestCompleteLoginWrongCode(t *testing.T) {
	svc, sender, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.RequestLogin(ctx, "admin@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if sender.code == wrong {
		wrong = "111111"
	}
	_, _, err = svc.CompleteLogin(ctx, "admin@example.com", wrong)
	require.ErrorIs(t, err, ErrCodeMismatch)

	// A correct code still works after a failed attempt.
	_, _, err = svc.CompleteLogin(ctx, "admin@example.com", sender.code)
	require.NoError(t, err)
}

func TestCompleteLoginDeactivatedBetweenSteps(t *testing.T) {
	svc, sender, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.RequestLogin(ctx, "admin@example.com")
	require.NoError(t, err)

	admin, err := svc.Store.Users().GetByID(ctx, 1)
	require.NoError(t, err)
	admin.IsActive = false
	require.NoError(t, svc.Store.Users().Update(ctx, admin))

	_, _, err = svc.CompleteLogin(ctx, "admin@example.com", sender.code)
	require.ErrorIs(t, err, ErrUserDeactivated)
}

func TestCompleteLoginCodeIsSingleUse(t *testing.T) {
	svc, sender, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.RequestLogin(ctx, "admin@example.com")
	require.NoError(t, err)

	_, _, err = svc.CompleteLogin(ctx, "admin@example.com", sender.code)
	require.NoError(t, err)

	_, _, err = svc.CompleteLogin(ctx, "admin@example.com", sender.code)
	require.ErrorIs(t, err, ErrNoCode)
}

func TestCompleteLoginPersistsLastLogin(t *testing.T) {
	svc, sender, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.RequestLogin(ctx, "admin@example.com")
	require.NoError(t, err)
	_, user, err := svc.CompleteLogin(ctx, "admin@example.com", sender.code)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)

	stored, err := svc.Store.Users().GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	require.True(t, stored.LastLogin.Equal(*user.LastLogin))
}
