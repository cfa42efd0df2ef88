// Package langfuse is a small HTTP client for the Langfuse ingestion and prompt APIs.
// Events are sent in the background; a client without credentials is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blaisecz/caffeine-planner/internal/logger"
)

// asyncTimeout bounds each background ingestion call.
const asyncTimeout = 5 * time.Second

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace queues a trace and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore queues a score for an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Flush waits for queued events to be delivered or for ctx to end.
	Flush(ctx context.Context) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	// ID overrides the generated trace ID.
	ID       string
	UserID   string
	Name     string
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

type client struct {
	baseURL     string
	publicKey   string
	secretKey   string
	environment string
	enabled     bool
	httpClient  *http.Client
	log         zerolog.Logger
	inflight    sync.WaitGroup
}

// NewClient creates a new Langfuse client.
// If baseURL or keys are empty, returns a disabled no-op client.
func NewClient(cfg Config) Client {
	log := logger.Named("langfuse")
	enabled := cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != ""

	switch {
	case cfg.BaseURL == "":
		log.Info().Msg("disabled: LANGFUSE_BASE_URL is empty")
	case cfg.PublicKey == "":
		log.Info().Msg("disabled: LANGFUSE_PUBLIC_KEY is empty")
	case cfg.SecretKey == "":
		log.Info().Msg("disabled: LANGFUSE_SECRET_KEY is empty")
	default:
		log.Info().Str("base_url", cfg.BaseURL).Str("env", cfg.Environment).Msg("enabled")
	}

	return &client{
		baseURL:     cfg.BaseURL,
		publicKey:   cfg.PublicKey,
		secretKey:   cfg.SecretKey,
		environment: cfg.Environment,
		enabled:     enabled,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.environment != "" {
		metadata["environment"] = c.environment
	}

	c.enqueue(newEvent("trace-create", traceBody{
		ID:       traceID,
		Name:     in.Name,
		UserID:   in.UserID,
		Input:    in.Input,
		Output:   in.Output,
		Tags:     in.Tags,
		Metadata: metadata,
	}))

	return traceID, nil
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}
	if in.TraceID == "" {
		return fmt.Errorf("score %q: empty trace id", in.Name)
	}

	c.enqueue(newEvent("score-create", scoreBody{
		ID:      uuid.New().String(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}))

	return nil
}

func (c *client) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newEvent(kind string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.New().String(),
		Type:      kind,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

// enqueue sends an event in the background; failures are logged, never returned.
func (c *client) enqueue(event ingestionEvent) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := c.sendBatch(ctx, []ingestionEvent{event}); err != nil {
			c.log.Warn().Err(err).Str("event", event.Type).Msg("ingestion failed")
		}
	}()
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}
	return nil
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
