package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/config"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/infra"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/router"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/worker"

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

	// Composition root for async infrastructure: the worker pool drains the
	// cotización/email queues and the publisher pushes stock snapshots to the
	// distributor portal when inventory changed.
	distribuidor := infra.NewDistribuidorClient(cfg.DistribuidorAPIURL, cfg.DistribuidorAPIKey)
	distribuidorCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	cotizacionRepo := repository.NewCotizacionRepository(db)
	itemRepo := repository.NewItemRepository(db)
	reglaRepo := repository.NewReglaRepository(db)

	workerHandlers := worker.Handlers{
		Cotizacion: worker.NewCotizacionWorker(cotizacionRepo, dispatcher, cfg.PDFStoragePath, cfg.NombreNegocio),
		Email:      worker.NewEmailWorker(mailer),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	worker.StartPublicadorStock(ctx, worker.PublicadorConfig{
		ItemRepo:      itemRepo,
		ReglaRepo:     reglaRepo,
		Distribuidor:  distribuidor,
		CB:            distribuidorCB,
		RDB:           rdb,
		NombreNegocio: cfg.NombreNegocio,
	})

	r := router.New(cfg, db, rdb, distribuidorCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Roda Llantas backend listening on :%d", cfg.Port)
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
