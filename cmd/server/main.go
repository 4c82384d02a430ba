package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recetario/internal/config"
	"recetario/internal/repository"
	"recetario/internal/router"
	"recetario/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	recetaRepo, err := repository.NewRecetaRepository(cfg.RecipesFile())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open recipes store")
	}
	inventarioRepo, err := repository.NewInventarioRepository(cfg.InventoryFile())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open inventory store")
	}

	r, err := router.New(cfg, recetaRepo, inventarioRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.CleanupEnabled {
		intervalo := time.Duration(cfg.CleanupIntervalMinutes) * time.Minute
		worker.NewSweeper(recetaRepo, cfg.UploadsDir, intervalo).Start(ctx)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("recetario listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
