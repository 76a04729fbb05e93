package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/config"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/infra"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/router"

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

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := router.New(cfg, db, rdb)

	// Warm every view-model concurrently. A failed fetch is not fatal: the
	// view-model substitutes its demo dataset and the change feed or the
	// next write re-fetches real rows.
	loaders := map[string]func(context.Context) error{
		"inventory":    app.Inventory.Load,
		"categories":   app.Categories.Load,
		"suppliers":    app.Suppliers.Load,
		"orders":       app.Orders.Load,
		"users":        app.Users.Load,
		"transactions": app.Transactions.Load,
	}
	var wg sync.WaitGroup
	for name, load := range loaders {
		wg.Add(1)
		go func(name string, load func(context.Context) error) {
			defer wg.Done()
			if err := load(ctx); err != nil {
				log.Warn().Err(err).Str("view", name).Msg("initial load failed")
			}
		}(name, load)
	}
	wg.Wait()

	app.WatchChanges(ctx)
	app.StartBackground(ctx, cfg.WorkerPoolSize)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("LogistX backend listening on :%d", cfg.Port)
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
