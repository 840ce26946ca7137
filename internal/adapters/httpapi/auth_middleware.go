package httpapi

import (
	"net/http"
	"strings"

	"github.com/Crestview-Financial/bank-portal-api/internal/platform/auth/tokens"
)

// NewAuthMiddleware enforces Authorization: Bearer <token> on protected routes.
//
// The two rejection cases are distinct observable outcomes:
//   - no bearer token presented (missing header or missing scheme) -> 401
//   - token presented but signature/expiry verification failed     -> 403
//
// On success the verified claims are stored in the request context.
func NewAuthMiddleware(verifier *tokens.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeMessage(w, http.StatusUnauthorized, "No token provided")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(authz, prefix) {
				writeMessage(w, http.StatusUnauthorized, "No token provided")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
			if raw == "" {
				writeMessage(w, http.StatusUnauthorized, "No token provided")
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				writeMessage(w, http.StatusForbidden, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
