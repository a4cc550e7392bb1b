package httpx

import "net/http"

// RequireRole gates a handler to callers whose verified session carries
// the given role. Must run after AuthnMiddleware.
func RequireRole(role string, msg string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromContext(r.Context()) != role {
				WriteError(w, http.StatusForbidden, msg)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
