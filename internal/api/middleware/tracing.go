package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts an OpenTelemetry span for each HTTP request, continuing any
// incoming W3C trace context, and propagates it to handlers and services.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("caffeine-planner-api/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		if span.IsRecording() {
			input := map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
			}
			if r.URL.RawQuery != "" {
				input["query"] = r.URL.RawQuery
			}
			if data, err := json.Marshal(input); err == nil {
				span.SetAttributes(attribute.String("langfuse.observation.input", string(data)))
			}
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r.WithContext(ctx))

		// The route pattern is only known after chi has matched.
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
				span.SetAttributes(attribute.String("http.route", pattern))
			}
		}

		span.SetAttributes(attribute.Int("http.status_code", sw.status))
		if sw.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(sw.status))
		}
		if span.IsRecording() {
			output := map[string]any{
				"status_code": sw.status,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if data, err := json.Marshal(output); err == nil {
				span.SetAttributes(attribute.String("langfuse.observation.output", string(data)))
			}
		}
	})
}
