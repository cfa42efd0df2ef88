// Script to seed the database with sample user profiles.
// Usage: go run scripts/seed/main.go
package main

import (
	"os"

	"github.com/blaisecz/caffeine-planner/internal/config"
	"github.com/blaisecz/caffeine-planner/internal/logger"
	"github.com/blaisecz/caffeine-planner/internal/seed"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "seed"})

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		os.Exit(1)
	}

	if err := seed.Run(db); err != nil {
		log.Error().Err(err).Msg("failed to seed database")
		os.Exit(1)
	}
}
