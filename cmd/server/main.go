package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/x17green/debtledger/internal/config"
	"github.com/x17green/debtledger/internal/domain"
	"github.com/x17green/debtledger/internal/eventbus"
	"github.com/x17green/debtledger/internal/handler"
	"github.com/x17green/debtledger/internal/server"
	"github.com/x17green/debtledger/internal/service"
	"github.com/x17green/debtledger/internal/storage"
	"github.com/x17green/debtledger/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	var repo domain.Repository
	var closeStore func() error

	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.Storage.DSN)
		if err != nil {
			log.Fatal(ctx, "Failed to open sqlite store",
				"dsn", cfg.Storage.DSN,
				"error", err,
			)
		}
		repo = store
		closeStore = store.Close
	default:
		repo = storage.NewMemoryStore()
		closeStore = func() error { return nil }
	}
	log.Info(ctx, "Repository initialized",
		"driver", cfg.Storage.Driver,
	)

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	ledgerService := service.NewLedgerService(repo, bus, log, cfg.Ledger)
	importService := service.NewImportService(repo, bus, log)
	log.Info(ctx, "Services initialized")

	activityConsumer := eventbus.NewActivityConsumer(repo, log, cfg.Worker.PoolSize)
	importConsumer := eventbus.NewImportConsumer(repo, ledgerService, log, cfg.Worker.PoolSize)
	log.Info(ctx, "Consumers initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	if err := bus.Subscribe(eventbus.EventTypeActivity, activityConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe activity consumer",
			"error", err,
		)
	}
	if err := bus.Subscribe(eventbus.EventTypeImportRow, importConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe import consumer",
			"error", err,
		)
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	debtHandler := handler.NewDebtHandler(ledgerService, log)
	importHandler := handler.NewImportHandler(importService, log)
	healthHandler := handler.NewHealthHandler()
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, debtHandler, importHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown: stop accepting requests, drain in-flight events,
	// then release the store.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	if err := closeStore(); err != nil {
		log.Error(shutdownCtx, "Store close error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
