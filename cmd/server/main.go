package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/algo-sync/internal/app"
	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/handler"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/server"
	"github.com/MKhiriev/algo-sync/internal/workers"
	"github.com/MKhiriev/algo-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("algo-sync-server")

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "dev" && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	a, err := app.New(ctx, cfg, log, app.WithMigrations())
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	handlers, err := handler.NewHandlers(a.Services, *cfg, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Go(func() { workers.NewWorkers(cfg.Workers, a.Storages, a.Services, log).Run(ctx) })

	err = srv.RunServer(ctx)
	cancel()
	wg.Wait()

	return err
}
