package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/blaisecz/caffeine-planner/internal/logger"
)

// AccessLogOptions configures the access log.
type AccessLogOptions struct {
	// Slow marks requests taking at least Slow as warn level; 0 disables it.
	Slow time.Duration
}

// statusWriter records the status code and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += n
	return n, err
}

// AccessLog logs method, path, status, elapsed and bytes of every request.
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			log := logger.Named("http")
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			if reqID := chimw.GetReqID(r.Context()); reqID != "" {
				evt = evt.Str("request_id", reqID)
			}
			evt.Int("status", sw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", sw.bytes).
				Msg("request done")
		})
	}
}
