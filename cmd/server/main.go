package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/config"
	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/repository"
	"github.com/FN2184/tiny-business-manager/internal/router"
	"github.com/FN2184/tiny-business-manager/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store, err := nuevoSnapshotStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SnapshotBackend).Msg("failed to open snapshot backend")
	}
	defer func() {
		if err := store.Cerrar(); err != nil {
			log.Error().Err(err).Msg("error closing snapshot backend")
		}
	}()

	// ── In-memory aggregates ─────────────────────────────────────────────
	tasaInicial, err := decimal.NewFromString(cfg.TasaDefault)
	if err != nil {
		log.Fatal().Err(err).Str("valor", cfg.TasaDefault).Msg("invalid TASA_DEFAULT")
	}
	repos := router.Repos{
		Catalogo:   repository.NewCatalogoRepository(),
		Categorias: repository.NewCategoriaRepository(),
		Clientes:   repository.NewClienteRepository(),
		Carrito:    repository.NewCarritoRepository(),
		Tasa:       repository.NewTasaRepository(tasaInicial),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Rehydrate state before serving; a missing or corrupt snapshot falls
	// back to defaults instead of aborting the boot.
	sinc := worker.NewSincronizador(store, repos.Catalogo, repos.Clientes, repos.Categorias, repos.Tasa)
	sinc.Rehidratar(ctx)

	dispatcher := worker.NewDispatcher(sinc, cfg.PDFStoragePath)
	dispatcher.Start(ctx, cfg.WorkerPoolSize)

	// Periodic full sync catches anything a dropped job missed.
	if _, err := worker.StartSyncCron(ctx, cfg.SyncCronSpec, sinc); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.SyncCronSpec).Msg("invalid SYNC_CRON_SPEC")
	}

	r := router.New(cfg, repos, store, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("tiny-business-manager listening on :%d", cfg.Port)
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

	// One last full sync so nothing queued in memory is lost.
	sinc.SincronizarTodo(shutdownCtx)
	log.Info().Msg("server exited")
}

func nuevoSnapshotStore(cfg *config.Config) (infra.SnapshotStore, error) {
	switch cfg.SnapshotBackend {
	case "file":
		return infra.NewFileStore(cfg.DataDir)
	case "bolt":
		return infra.NewBoltStore(cfg.BoltPath)
	case "redis":
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return infra.NewRedisStore(rdb, infra.NewCircuitBreaker(infra.DefaultCBConfig())), nil
	default:
		return nil, fmt.Errorf("snapshot backend desconocido: %q", cfg.SnapshotBackend)
	}
}
