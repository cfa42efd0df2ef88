package middleware

import (
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/blaisecz/caffeine-planner/internal/logger"
	"github.com/blaisecz/caffeine-planner/pkg/problem"
)

// Recovery recovers from panics and returns a 500 problem response
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				log := logger.Named("http")
				log.Error().
					Str("request_id", chimw.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", v).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				problem.InternalError("An unexpected error occurred").Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
