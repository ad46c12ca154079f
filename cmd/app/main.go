package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"grubdash/cmd"
	httpin "grubdash/internal/adapters/in/http"
	"grubdash/internal/pkg/logging"
	"grubdash/internal/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("grubdash stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(logging.Config{Level: config.LogLevel, File: config.LogFile}, os.Stdout)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := cmd.NewStorage(config)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := storage.Close(); closeErr != nil {
			logger.Error("failed to close storage", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(config, storage)
	if config.SeedFile != "" {
		seeded, seedErr := app.Seed(ctx, config.SeedFile)
		if seedErr != nil {
			return seedErr
		}
		logger.Info("Seed loaded", "file", config.SeedFile, "dishes", seeded.Dishes, "orders", seeded.Orders)
	}

	metricsFactory := metrics.NewFactory()
	e, err := httpin.NewRouter(app.CreateServer(), logger, metricsFactory)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(config.EchoLogLevel())

	jobManager := app.CreateJobManager(metricsFactory.Orders(), logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr, "store", config.StoreDriver)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
