package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/DoughGuardian_Go/internal/bootstrap"
	"github.com/osse101/DoughGuardian_Go/internal/config"
	"github.com/osse101/DoughGuardian_Go/internal/handler"
	"github.com/osse101/DoughGuardian_Go/internal/progression"
	"github.com/osse101/DoughGuardian_Go/internal/scheduler"
	"github.com/osse101/DoughGuardian_Go/internal/server"
	"github.com/osse101/DoughGuardian_Go/internal/worker"
)

// @title Dough Guardian API
// @version 1.0
// @description Idle progression for the Dough Guardian: harmony, essence, dough forms, wisdom cookies and dojo upgrades.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	if cfg.Version != "" {
		handler.Version = cfg.Version
	}

	ctx := context.Background()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		slog.Error("Catalog rejected", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open progress store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		closeStore()
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	clock := progression.RealClock{}
	progressionService := progression.NewService(cat, store, events.Publisher, clock, progression.CacheConfig{
		Size: cfg.SessionCacheSize,
		TTL:  cfg.SessionTTL,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize, worker.DefaultJobTimeout)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.AutosaveInterval, worker.NewAutosaveJob(progressionService))
	sched.Schedule(cfg.PassiveTickInterval, worker.NewPassiveTickJob(progressionService))
	sched.Start()

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
	}, server.Dependencies{
		Progression:  progressionService,
		Store:        store,
		StoreBackend: cfg.StoreBackend,
		Hub:          events.Hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port, "store_backend", cfg.StoreBackend)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		Scheduler:   sched,
		Pool:        pool,
		Progression: progressionService,
		Events:      events,
		CloseStore:  closeStore,
	})
	cancel()

	if exitCode != 0 {
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(exitCode)
	}
}
