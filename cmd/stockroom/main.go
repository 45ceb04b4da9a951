package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	corecfg "github.com/stockroom-lab/stockroom/internal/core/config"
	"github.com/stockroom-lab/stockroom/internal/core/storage"
	"github.com/stockroom-lab/stockroom/internal/core/storage/memory"
	"github.com/stockroom-lab/stockroom/internal/core/storage/postgres"
	"github.com/stockroom-lab/stockroom/internal/inventory"
	"github.com/stockroom-lab/stockroom/internal/migrations"
	"github.com/stockroom-lab/stockroom/internal/report"
	"github.com/stockroom-lab/stockroom/internal/server"
)

// healthStore is a store that can also answer health probes.
type healthStore interface {
	storage.Store
	server.HealthChecker
}

func main() {
	configPath := flag.String("config", "stockroom.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"server", cfg.Server,
		"database_type", cfg.Database.Type,
		"reporting", cfg.Reporting,
		"seed", cfg.Seed)

	// 2. Initialize Storage
	store, closeStore, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 3. Initialize Services
	inventorySvc := inventory.NewService(store, cfg.Seed.CatalogPath)
	reportSvc := report.NewService(store, store, report.Options{
		Location:         cfg.Reporting.Location(),
		StrictBucketKind: cfg.Reporting.StrictBucketKind,
		RankSize:         cfg.Reporting.RankSize,
		RecentSalesLimit: cfg.Reporting.RecentSalesLimit,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Seed.OnStart {
		if _, err := inventorySvc.SeedSampleData(ctx, time.Now()); err != nil {
			slog.Error("Failed to seed sample data", "error", err)
			os.Exit(1)
		}
	}

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode)
	inventorySvc.RegisterRoutes(srv.Engine)
	reportSvc.RegisterRoutes(srv.Engine)

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore builds the configured store and returns its cleanup func.
func openStore(cfg corecfg.DatabaseConfig) (healthStore, func(), error) {
	if cfg.Type == corecfg.DatabaseMemory {
		slog.Info("[Memory] Using in-memory store; data is lost on shutdown")
		return memory.NewStore(), func() {}, nil
	}

	dbAdapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := dbAdapter.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}

	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.AutoMigrate); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("run database migrations: %w", err)
	}

	validateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbAdapter.ValidateSchema(validateCtx); err != nil {
		closeFn()
		return nil, nil, err
	}

	return dbAdapter, closeFn, nil
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
