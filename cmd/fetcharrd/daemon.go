package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/fetcharr/internal/app"
	"github.com/vmunix/fetcharr/internal/config"
	"github.com/vmunix/fetcharr/internal/logging"
	"github.com/vmunix/fetcharr/internal/transcode"
)

func runDaemon(configPath string, once bool) error {
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log)
	logger.Info("fetcharrd starting", "version", version, "scan_interval", cfg.ScanInterval())

	a, err := app.Build(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			if err := cycle(ctx, a, logger); err != nil {
				return err
			}

			if once {
				return nil
			}
			logger.Info("scan cycle complete, sleeping", "interval", cfg.ScanInterval())
			select {
			case <-ctx.Done():
				logger.Info("fetcharrd stopping")
				return nil
			case <-time.After(cfg.ScanInterval()):
			}
		}
	})

	return g.Wait()
}

// cycle runs one full scan. Catalog-level errors are logged and the other
// catalog still runs; configuration-class errors terminate the process.
func cycle(ctx context.Context, a *app.App, logger *slog.Logger) error {
	scans := []struct {
		name string
		run  func(context.Context) error
	}{
		{"movies", a.Scanner.ScanMovies},
		{"series", a.Scanner.ScanSeries},
	}
	for _, s := range scans {
		if err := s.run(ctx); err != nil {
			if errors.Is(err, transcode.ErrCommandMissing) {
				return err
			}
			logger.Error("scan aborted", "catalog", s.name, "error", err)
		}
	}
	return nil
}
