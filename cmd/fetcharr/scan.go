package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/fetcharr/internal/app"
	"github.com/vmunix/fetcharr/internal/config"
	"github.com/vmunix/fetcharr/internal/logging"
	"github.com/vmunix/fetcharr/internal/transcode"
)

var (
	scanMoviesOnly bool
	scanSeriesOnly bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one scan cycle and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate(configPath)
		if err != nil {
			return err
		}
		logger := logging.New(cfg.Log)

		a, err := app.Build(cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if !scanSeriesOnly {
			if err := a.Scanner.ScanMovies(ctx); err != nil {
				if errors.Is(err, transcode.ErrCommandMissing) {
					return err
				}
				logger.Error("movie scan aborted", "error", err)
			}
		}
		if !scanMoviesOnly {
			if err := a.Scanner.ScanSeries(ctx); err != nil {
				if errors.Is(err, transcode.ErrCommandMissing) {
					return err
				}
				logger.Error("series scan aborted", "error", err)
			}
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanMoviesOnly, "movies-only", false, "Scan only the movie catalog")
	scanCmd.Flags().BoolVar(&scanSeriesOnly, "series-only", false, "Scan only the series catalog")
	scanCmd.MarkFlagsMutuallyExclusive("movies-only", "series-only")
	rootCmd.AddCommand(scanCmd)
}
