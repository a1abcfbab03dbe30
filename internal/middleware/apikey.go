package middleware

import (
	"net/http"
)

func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("X-API-Key")
			if key == "" {
				writeError(w, http.StatusForbidden, "forbidden", "missing API key")
				return
			}

			if key != apiKey {
				writeError(w, http.StatusForbidden, "forbidden", "invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
