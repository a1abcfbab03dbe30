package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/yusufkecer/jarosmart-backend/internal/auth"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request. It must run inside the session
// middleware to record the user id.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			}
			if s, ok := auth.FromContext(r.Context()); ok {
				fields = append(fields, zap.String("user_id", s.UserID))
			}
			logger.Info("request", fields...)
		})
	}
}
