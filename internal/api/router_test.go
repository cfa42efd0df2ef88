package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/caffeine-planner/internal/api/handler"
	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/langfuse"
	"github.com/blaisecz/caffeine-planner/internal/service"
)

// stubUserRepo is enough for the planner; no users are stored.
type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, u *domain.User) error { return nil }
func (stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (stubUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) { return false, nil }
func (stubUserRepo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	return nil, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := stubUserRepo{}
	planner := service.NewPlannerService(repo, service.PlannerOptions{})
	insights := service.NewInsightsService(planner, nil, langfuse.NewClient(langfuse.Config{}))

	rt := NewRouter(
		handler.NewUserHandler(service.NewUserService(repo)),
		handler.NewPlannerHandler(planner),
		handler.NewInsightsHandler(insights),
		[]string{"*"},
	)
	srv := httptest.NewServer(rt.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body["status"] != "ok" {
		t.Fatalf("unexpected body %v (%v)", body, err)
	}
}

func TestRouter_TimelineEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"doses":[{"amount_mg":200,"timestamp":"2024-01-15T10:00:00Z"},{"amount_mg":160,"timestamp":"2024-01-15T06:00:00Z"}],
		"now":"2024-01-15T12:00:00Z"
	}`
	resp, err := http.Post(srv.URL+"/v1/caffeine/timeline", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out domain.TimelineResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TotalCaffeineMg < 221.2 || out.TotalCaffeineMg > 222.2 {
		t.Errorf("level = %v, want about 221.7", out.TotalCaffeineMg)
	}
	if !out.CrashTime.After(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected crash time %v", out.CrashTime)
	}
}

func TestRouter_InsightsWithoutLLM(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/caffeine/insights", "application/json", bytes.NewBufferString(`{"doses":[]}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", resp.StatusCode)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/v1/caffeine/timeline", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/nope")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
