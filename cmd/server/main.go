package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/sada/internal/api"
	"github.com/RMahshie/sada/internal/config"
	"github.com/RMahshie/sada/internal/logging"
	"github.com/RMahshie/sada/internal/processing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.Server.Env, cfg.Logging.Level)

	svc, err := processing.NewDefaultCalculationService(cfg.Criteria.Expressions())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create calculation service")
	}

	// Wait for interrupt signal to gracefully shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := api.ListenAndServe(ctx, cfg.Server, svc); err != nil {
		log.Error().Err(err).Msg("Server failed")
		stop()
		os.Exit(1)
	}
}
