package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cyphers-laptop/internal/app"
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/handler"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/server"
	"github.com/MKhiriev/cyphers-laptop/internal/workers"
	"github.com/MKhiriev/cyphers-laptop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("bot").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("bot", cfg.App.LogLevel)
	if cfg.App.Limited {
		log.Warn().Msg("running in limited mode")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = run(ctx, cfg, build, log); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
}

// run blocks until ctx is canceled. The ops server comes up first so that
// /healthz answers while migrations are still running.
func run(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) error {
	rt, err := app.NewRuntime(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer rt.Close()

	handlers, err := handler.NewHandlers(rt.Lifecycle, rt.Registry, build, cfg.Server, log)
	if err != nil {
		return err
	}
	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Run(ctx)
	}()

	if err = rt.Lifecycle.Start(ctx, rt.StartupSteps()...); err != nil {
		cancel()
		<-serveErr
		return err
	}

	jobs := workers.NewWorkers(rt.Services, cfg, log)
	jobs.Start(ctx)
	defer jobs.Stop()

	return <-serveErr
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
