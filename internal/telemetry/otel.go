// Package telemetry wires OpenTelemetry tracing. Spans are exported to the Langfuse
// OTLP endpoint when Langfuse credentials are configured.
package telemetry

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/blaisecz/caffeine-planner/internal/config"
	"github.com/blaisecz/caffeine-planner/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Enabled reports whether traces will leave the process.
func Enabled(cfg *config.Config) bool {
	return cfg.LangfuseBaseURL != "" && cfg.LangfusePublicKey != "" && cfg.LangfuseSecretKey != ""
}

// InitTracer installs the global tracer provider and W3C propagator.
// Without Langfuse configuration the default no-op provider stays in place.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log := logger.Named("telemetry")
	if !Enabled(cfg) {
		log.Info().Msg("tracing disabled: langfuse not configured")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(TracesEndpoint(cfg.LangfuseBaseURL)),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": BasicAuth(cfg.LangfusePublicKey, cfg.LangfuseSecretKey),
		}),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("deployment.environment", cfg.LangfuseEnv),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Info().Str("service", serviceName).Str("env", cfg.LangfuseEnv).Msg("tracing enabled")
	return tp.Shutdown, nil
}

// TracesEndpoint returns the Langfuse OTLP traces URL for a base URL.
func TracesEndpoint(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/api/public/otel/v1/traces"
}

// BasicAuth builds the Authorization header value from Langfuse keys.
func BasicAuth(publicKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(publicKey+":"+secretKey))
}
