package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Logger writes one structured access line per request.
func Logger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := logrus.Fields{
				"request_id":    RequestIDFromContext(r.Context()),
				"method":        r.Method,
				"path":          r.URL.Path,
				"status_code":   status,
				"latency_ms":    float64(time.Since(start).Nanoseconds()) / 1e6,
				"client_ip":     r.RemoteAddr,
				"user_agent":    r.UserAgent(),
				"response_size": ww.BytesWritten(),
			}
			if origin := r.Header.Get("Origin"); origin != "" {
				fields["origin"] = origin
			}

			entry := log.WithFields(fields)
			switch {
			case status >= 500:
				entry.Error("request completed")
			case status >= 400:
				entry.Warn("request completed")
			default:
				entry.Info("request completed")
			}
		})
	}
}
