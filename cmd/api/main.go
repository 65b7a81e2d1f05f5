package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/britemovies/movie-catalog-api/internal/app"
	"github.com/britemovies/movie-catalog-api/internal/config"
	"github.com/britemovies/movie-catalog-api/internal/repository"
	"github.com/britemovies/movie-catalog-api/internal/vcs"
)

func main() {
	displayVersion := flag.Bool("version", false, "Display version and exit")
	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", vcs.Version())
		os.Exit(0)
	}

	err := run()
	if err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	err = repository.RunMigrations(cfg.DB.DSN)
	if err != nil {
		logger.Error("failed to run migrations", "error", err)
		return err
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		return err
	}
	defer application.Close()

	shutdownTelemetry, err := application.InitTelemetry()
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(ctx)

	application.SeedIfEmpty(ctx)

	err = application.Serve()
	if err != nil {
		logger.Error("server error", "error", err)
		return err
	}

	return nil
}
