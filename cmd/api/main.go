// Caffeine Planner API
//
// REST API for modelling caffeine levels and planning intake.
//
//	@title			Caffeine Planner API
//	@version		1.0
//	@description	Model caffeine levels, predict crashes and sleep impact, and plan safe intake schedules.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	Stored user profiles
//
//	@tag.name			caffeine
//	@tag.description	Caffeine model and schedule planning
//
//	@tag.name			caffeine-insights
//	@tag.description	LLM-generated insights and feedback
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/caffeine-planner/internal/api"
	"github.com/blaisecz/caffeine-planner/internal/api/handler"
	"github.com/blaisecz/caffeine-planner/internal/config"
	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/internal/langfuse"
	"github.com/blaisecz/caffeine-planner/internal/llm"
	"github.com/blaisecz/caffeine-planner/internal/logger"
	"github.com/blaisecz/caffeine-planner/internal/repository"
	"github.com/blaisecz/caffeine-planner/internal/seed"
	"github.com/blaisecz/caffeine-planner/internal/service"
	"github.com/blaisecz/caffeine-planner/internal/telemetry"
)

const serviceName = "caffeine-planner-api"

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: serviceName})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Msg("database migration completed")

	if cfg.Seed {
		log.Info().Msg("seeding database with sample profiles (SEED=true)")
		if err := seed.Run(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	plannerService := service.NewPlannerService(userRepo, service.PlannerOptions{
		MaxGridPoints: cfg.OptimizerMaxGridPoints,
		MaxSearchCost: int64(cfg.OptimizerMaxSearchCost),
	})

	lfClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	insightsService := service.NewInsightsService(plannerService, newInsightsLLM(ctx, cfg), lfClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	plannerHandler := handler.NewPlannerHandler(plannerService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(userHandler, plannerHandler, insightsHandler, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shCtx); err != nil {
		log.Warn().Err(err).Msg("http server shutdown error")
	}
	if err := lfClient.Flush(shCtx); err != nil {
		log.Warn().Err(err).Msg("langfuse events not flushed")
	}
	if err := shutdownTracer(shCtx); err != nil {
		log.Warn().Err(err).Msg("tracer shutdown error")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newInsightsLLM returns nil when OpenAI is not configured so the insights
// endpoint answers 503.
func newInsightsLLM(ctx context.Context, cfg *config.Config) llm.InsightsLLM {
	log := logger.Named("llm")

	var opts []llm.Option
	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
		SavePath:    cfg.LangfusePromptPath,
	})
	switch {
	case err == nil:
		opts = append(opts, llm.WithSystemPrompt(prompt))
		log.Info().Msg("using loaded system prompt")
	case errors.Is(err, langfuse.ErrNoPrompt):
		log.Debug().Msg("using built-in system prompt")
	default:
		log.Warn().Err(err).Msg("failed to load prompt, using built-in system prompt")
	}

	client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICaffeineInsightsModel, opts...)
	if client == nil {
		log.Warn().Msg("OpenAI API key not configured, insights endpoint will be unavailable")
		return nil
	}
	return client
}
