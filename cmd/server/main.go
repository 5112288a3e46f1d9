package main

import (
	"coastal-day-planner/internal/adapters/cache"
	"coastal-day-planner/internal/adapters/conditions"
	"coastal-day-planner/internal/adapters/repositories"
	"coastal-day-planner/internal/api"
	"coastal-day-planner/internal/config"
	"coastal-day-planner/internal/platform/db"
	"coastal-day-planner/internal/platform/logger"
	"coastal-day-planner/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires concrete adapters (SQL store, conditions providers) behind ports
// and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	lg, err := logger.New("coastal-day-planner", cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("logger")
	}
	log.Logger = lg

	if envErr != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialect := cfg.Dialect()

	sqlDB, err := db.Open(dialect, cfg.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := initAndSeed(ctx, sqlDB, cfg); err != nil {
		return err
	}

	catalog := repositories.NewSQLPOICatalog(sqlDB, dialect)
	spots := repositories.NewSQLSpotRepository(sqlDB, dialect)
	hours := repositories.NewSQLOpenHoursRepository(sqlDB, dialect)

	provider, err := newConditionsProvider(cfg, sqlDB, spots)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Deps{
		Catalog:    catalog,
		Spots:      spots,
		Conditions: provider,
		Hours:      hours,
		Ping:       sqlDB.PingContext,
	})

	// Write timeout covers a cold-cache plan with retried upstream calls.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("db", string(dialect)).
			Str("conditions", cfg.ConditionsProvider).
			Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func initAndSeed(ctx context.Context, sqlDB *sql.DB, cfg *config.Config) error {
	if err := repositories.InitSchema(ctx, sqlDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if !cfg.SeedOnStart {
		return nil
	}

	if err := repositories.SeedFromJSON(ctx, sqlDB, cfg.Dialect(), cfg.SeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info().Str("path", cfg.SeedPath).Msg("catalog seeded")

	return nil
}

// Live results are cached in the store; on upstream failure the mock
// generator answers and nothing is cached.
func newConditionsProvider(cfg *config.Config, sqlDB *sql.DB, spots ports.SpotRepository) (ports.ConditionsProvider, error) {
	mock := conditions.NewMockProvider()
	if cfg.ConditionsProvider == config.ProviderMock {
		return mock, nil
	}

	live, err := conditions.NewOpenMeteoProvider(spots, conditions.OpenMeteoOptions{
		ForecastURL: cfg.OpenMeteoForecastURL,
		MarineURL:   cfg.OpenMeteoMarineURL,
		Timeout:     cfg.HTTPClientTimeout,
	})
	if err != nil {
		return nil, err
	}

	store := cache.NewSQLConditionsCache(sqlDB, cfg.Dialect())
	return conditions.NewFallbackProvider(conditions.NewCachedProvider(live, store), mock), nil
}
