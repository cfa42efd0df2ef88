package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/blaisecz/caffeine-planner/docs"
	"github.com/blaisecz/caffeine-planner/internal/api/handler"
	"github.com/blaisecz/caffeine-planner/internal/api/middleware"
)

// slowRequest marks requests for the access log.
const slowRequest = 2 * time.Second

type Router struct {
	userHandler     *handler.UserHandler
	plannerHandler  *handler.PlannerHandler
	insightsHandler *handler.InsightsHandler
	allowedOrigins  []string
}

func NewRouter(
	userHandler *handler.UserHandler,
	plannerHandler *handler.PlannerHandler,
	insightsHandler *handler.InsightsHandler,
	allowedOrigins []string,
) *Router {
	return &Router{
		userHandler:     userHandler,
		plannerHandler:  plannerHandler,
		insightsHandler: insightsHandler,
		allowedOrigins:  allowedOrigins,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.AccessLog(middleware.AccessLogOptions{Slow: slowRequest}))
	r.Use(middleware.Tracing)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Traceparent"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/", rt.userHandler.List)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Get("/{userId}/sensitivity", rt.userHandler.Sensitivity)
		})

		r.Route("/caffeine", func(r chi.Router) {
			r.Post("/sensitivity", rt.plannerHandler.Sensitivity)
			r.Post("/timeline", rt.plannerHandler.Timeline)
			r.Post("/schedule/validate", rt.plannerHandler.ValidateSchedule)
			r.Post("/schedule/optimize", rt.plannerHandler.Optimize)

			r.Post("/insights", rt.insightsHandler.Generate)
			r.Post("/insights/feedback", rt.insightsHandler.Feedback)
		})
	})

	return r
}
