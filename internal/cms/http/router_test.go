package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	cmshttp "github.com/risechangeslives/risecms/internal/cms/http"
	"github.com/risechangeslives/risecms/internal/cms/service"
	"github.com/risechangeslives/risecms/internal/cms/store/drivers/jsonfile"
	"github.com/risechangeslives/risecms/pkg/jwtx"
)

const (
	testSecret = "router-test-secret"
	testIssuer = "risecms"
)

type captureSender struct {
	code string
	fail bool
}

func (c *captureSender) SendVerificationCode(_ context.Context, _, _, code string) error {
	if c.fail {
		return errors.New("smtp unreachable")
	}
	c.code = code
	return nil
}

type testEnv struct {
	router *cmshttp.Router
	sender *captureSender
	signer *jwtx.HS256
	users  *service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
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

	signer := jwtx.NewHS256([]byte(testSecret), testIssuer)
	sender := &captureSender{}

	router := cmshttp.NewRouter(signer, "test", "http://localhost:3000", slog.New(slog.DiscardHandler))
	router.AuthService = service.NewAuthService(st, service.NewCodeRegistry(), sender, signer, testIssuer)
	router.UserService = service.NewUserService(st)
	router.ContentService = service.NewContentService(st)
	router.ApplyRoutes()

	return &testEnv{router: router, sender: sender, signer: signer, users: router.UserService}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// tokenFor signs a session token directly, bypassing the login flow, so
// authorization tests do not spend the login rate budget.
func (e *testEnv) tokenFor(t *testing.T, userID int, email, role string) string {
	t.Helper()
	token, err := e.signer.Sign(jwtx.NewSessionClaims(userID, email, role, testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "OK", body["status"])
	require.Equal(t, "test", body["environment"])
	require.Equal(t, "RISE CMS Backend is running!", body["message"])
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/nonsense", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Route not found", decodeBody(t, rec)["error"])
}

func TestLoginFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "Verification code sent to your email", body["message"])
	require.Equal(t, "admin@example.com", body["email"])
	require.EqualValues(t, 600, body["expiresIn"])
	require.Len(t, env.sender.code, 6)

	rec = env.do(t, http.MethodPost, "/api/auth/verify", "", map[string]string{
		"email": "admin@example.com",
		"code":  env.sender.code,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, user["id"])
	require.Equal(t, "super", user["role"])
	require.NotContains(t, user, "password")

	// The minted token works against a protected endpoint.
	rec = env.do(t, http.MethodGet, "/api/auth/me", body["token"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginValidation(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Email is required", decodeBody(t, rec)["error"])
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "nobody@example.com",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid credentials", decodeBody(t, rec)["error"])
	})

	t.Run("mail failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.sender.fail = true
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "admin@example.com",
		})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "Failed to send verification email", decodeBody(t, rec)["error"])
	})
}

func TestVerifyValidation(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/verify", "", map[string]string{
			"email": "admin@example.com",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Email and verification code are required", decodeBody(t, rec)["error"])
	})

	t.Run("no outstanding code", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/verify", "", map[string]string{
			"email": "admin@example.com",
			"code":  "123456",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "No verification code found or code expired", decodeBody(t, rec)["error"])
	})

	t.Run("wrong code", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "admin@example.com",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		wrong := "000000"
		if env.sender.code == wrong {
			wrong = "111111"
		}
		rec = env.do(t, http.MethodPost, "/api/auth/verify", "", map[string]string{
			"email": "admin@example.com",
			"code":  wrong,
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid verification code", decodeBody(t, rec)["error"])
	})
}

func TestLoginRateLimit(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{"email": "nobody@example.com"}
	for i := 0; i < 5; i++ {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", body)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := env.do(t, http.MethodPost, "/api/auth/login", "", body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "Too many login attempts, please try again later.", decodeBody(t, rec)["error"])
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestAuthnRequired(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Access token required", decodeBody(t, rec)["error"])
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid or expired token", decodeBody(t, rec)["error"])
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.NewSessionClaims(1, "admin@example.com", "super", testIssuer, time.Hour, time.Now().Add(-2*time.Hour))
		token, err := env.signer.Sign(claims)
		require.NoError(t, err)

		rec := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid or expired token", decodeBody(t, rec)["error"])
	})

	t.Run("content writes need a token", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/content", "", domain.Document{})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 1, "admin@example.com", "super")

	rec := env.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Logged out successfully", decodeBody(t, rec)["message"])
}

func TestMeAfterUserDeleted(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.users.CreateUser(context.Background(), service.CreateParams{
		Email: "editor@example.com", Password: "pw", Role: "admin", Name: "Editor",
	})
	require.NoError(t, err)
	token := env.tokenFor(t, created.ID, created.Email, "admin")

	require.NoError(t, env.users.DeleteUser(context.Background(), created.ID, 1))

	rec := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", decodeBody(t, rec)["error"])
}

func TestUserManagementAuthz(t *testing.T) {
	env := newTestEnv(t)

	adminToken := env.tokenFor(t, 2, "editor@example.com", "admin")
	rec := env.do(t, http.MethodGet, "/api/auth/users", adminToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Super admin access required", decodeBody(t, rec)["error"])

	superToken := env.tokenFor(t, 1, "admin@example.com", "super")
	rec = env.do(t, http.MethodGet, "/api/auth/users", superToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUserCRUDOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 1, "admin@example.com", "super")

	rec := env.do(t, http.MethodPost, "/api/auth/users", token, map[string]any{
		"email": "editor@example.com", "password": "pw12345678", "role": "admin", "name": "Editor",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	require.EqualValues(t, 2, created["id"])
	require.NotContains(t, created, "password")

	t.Run("duplicate email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/users", token, map[string]any{
			"email": "EDITOR@example.com", "password": "pw", "role": "admin", "name": "Dup",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "User with this email already exists", decodeBody(t, rec)["error"])
	})

	t.Run("invalid role", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/users", token, map[string]any{
			"email": "x@example.com", "password": "pw", "role": "owner", "name": "X",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid role", decodeBody(t, rec)["error"])
	})

	t.Run("update", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/auth/users/2", token, map[string]any{
			"name": "Senior Editor", "isActive": false,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		user := decodeBody(t, rec)
		require.Equal(t, "Senior Editor", user["name"])
		require.Equal(t, false, user["isActive"])
	})

	t.Run("update unknown", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/auth/users/99", token, map[string]any{"name": "Ghost"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "User not found", decodeBody(t, rec)["error"])
	})

	t.Run("self delete refused", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/auth/users/1", token, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Cannot delete your own account", decodeBody(t, rec)["error"])
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/auth/users/2", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "User deleted successfully", decodeBody(t, rec)["message"])
	})
}

func TestContentOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, 1, "admin@example.com", "super")

	t.Run("public read", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/content", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, decodeBody(t, rec), "hero")
	})

	t.Run("public section read", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/content/hero", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/content/pricing", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Section not found", decodeBody(t, rec)["error"])
	})

	t.Run("section replace", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/content/hero", token, map[string]any{
			"title": "Rebuilt",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		require.Equal(t, "hero section updated successfully", body["message"])

		ts, err := time.Parse(time.RFC3339, body["timestamp"].(string))
		require.NoError(t, err)
		require.WithinDuration(t, time.Now(), ts, time.Minute)

		rec = env.do(t, http.MethodGet, "/api/content/hero", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"title":"Rebuilt"}`, rec.Body.String())
	})

	t.Run("full replace", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/content", token, domain.Document{
			"hero": json.RawMessage(`{"title":"Fresh"}`),
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Content updated successfully", decodeBody(t, rec)["message"])

		rec = env.do(t, http.MethodGet, "/api/content", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		doc := decodeBody(t, rec)
		require.Len(t, doc, 1)
	})
}
