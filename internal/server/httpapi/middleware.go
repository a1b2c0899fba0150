package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// authTokenMiddleware is the capability gate for cart routes. The raw token
// travels in the custom auth-token header (legacy frontend contract, not
// Authorization: Bearer). Missing or unverifiable tokens terminate the
// request with 401; there is no retry semantics at this layer.
func (s *HTTPServer) authTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(common.AuthTokenHeaderName)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"errors": "Please authenticate using valid token",
			})
			return
		}

		userID, err := s.users.ResolveUserID(r.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrInvalidToken) {
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"errors": "Please authenticate using a valid token",
				})
				return
			}
			writeFailure(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the identity the auth gate resolved, or "" when
// the request never passed the gate.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
