// Script to test Langfuse connectivity by creating a test trace and score.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/caffeine-planner/internal/config"
	"github.com/blaisecz/caffeine-planner/internal/langfuse"
	"github.com/blaisecz/caffeine-planner/internal/logger"
	"github.com/blaisecz/caffeine-planner/internal/telemetry"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Format: "console", Service: "langfuse-test"})

	lfCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", lfCfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(lfCfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(lfCfg.SecretKey))
	fmt.Printf("Environment: %s\n", lfCfg.Environment)
	fmt.Printf("OTLP:        %s\n", telemetry.TracesEndpoint(lfCfg.BaseURL))
	fmt.Println()

	client := langfuse.NewClient(lfCfg)
	if !client.IsEnabled() {
		log.Error().Msg("Langfuse client is disabled, check LANGFUSE_* env vars")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "test-user-123",
		Name:   "test-trace",
		Input: map[string]any{
			"doses": []map[string]any{{"amount_mg": 95, "timestamp": time.Now().Add(-2 * time.Hour).Format(time.RFC3339)}},
		},
		Output: map[string]any{"status": "success"},
		Tags:   []string{"test", "manual"},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create trace")
		os.Exit(1)
	}

	if err := client.CreateScore(ctx, langfuse.ScoreInput{TraceID: traceID, Name: "user_rating", Value: 5, Comment: "langfuse-test"}); err != nil {
		log.Error().Err(err).Msg("failed to create score")
		os.Exit(1)
	}

	if err := client.Flush(ctx); err != nil {
		log.Error().Err(err).Msg("events not delivered before timeout")
		os.Exit(1)
	}

	fmt.Println("Test trace queued and flushed.")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", lfCfg.BaseURL, traceID)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
