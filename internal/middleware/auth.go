package middleware

import (
	"net/http"
	"strings"

	"github.com/yusufkecer/jarosmart-backend/internal/auth"
)

// SessionMiddleware attaches the session carried by a bearer token. Requests
// without an Authorization header pass through untouched so the services can
// report the missing session themselves; a malformed or expired token is
// rejected here.
func SessionMiddleware(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				writeError(w, http.StatusUnauthorized, "unauthenticated", "invalid authorization format")
				return
			}

			session, err := issuer.Parse(tokenStr)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}
