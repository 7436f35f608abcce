// Package app wires configuration into a ready-to-run scanner.
package app

import (
	"log/slog"

	"github.com/vmunix/fetcharr/internal/acquire"
	"github.com/vmunix/fetcharr/internal/catalog"
	"github.com/vmunix/fetcharr/internal/config"
	"github.com/vmunix/fetcharr/internal/history"
	"github.com/vmunix/fetcharr/internal/scanner"
	"github.com/vmunix/fetcharr/internal/tmdb"
	"github.com/vmunix/fetcharr/internal/trailer"
	"github.com/vmunix/fetcharr/internal/transcode"
	"github.com/vmunix/fetcharr/internal/ytdlp"
)

// cacheRoot is the process-relative parent of per-item download caches.
const cacheRoot = "tmp"

// App bundles the composed pipeline and its closable resources.
type App struct {
	Scanner *scanner.Scanner
	History *history.Store // nil when disabled
}

// Close releases resources.
func (a *App) Close() error {
	if a.History != nil {
		return a.History.Close()
	}
	return nil
}

// Build composes the pipeline from a validated config.
func Build(cfg *config.Config, log *slog.Logger) (*App, error) {
	var store *history.Store
	if cfg.History.Database != "" {
		var err error
		store, err = history.Open(cfg.History.Database)
		if err != nil {
			return nil, err
		}
	}

	var movies scanner.MovieCatalog
	if cfg.Radarr != nil {
		movies = catalog.NewClient(cfg.Radarr.URL, cfg.Radarr.APIKey)
	}
	var series scanner.SeriesCatalog
	if cfg.Sonarr != nil {
		series = catalog.NewClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey)
	}

	onlyOne := cfg.OnlyOneTrailer()

	resolver := trailer.NewResolver(
		tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.Language),
		trailer.Policy{
			OfficialOnly: cfg.TMDB.OfficialOnly,
			Types:        cfg.TMDB.VideoTypes,
			Size:         cfg.TMDB.VideoSize,
			Site:         cfg.TMDB.SourceSite,
		},
		cfg.YtDlp.BaseURL,
		onlyOne,
		log.With("component", "resolver"),
	)

	fallback := trailer.NewFallback(cfg.YtDlp.BaseURL, cfg.YtDlp.SearchPrefixes, cfg.YtDlp.SearchKeyword)

	// Quiet mode only silences lifecycle logging; the subprocess output is
	// still captured so error mapping keeps working.
	var progress ytdlp.ProgressFunc
	if !cfg.App.Quiet {
		progress = ytdlp.LogProgress(log.With("component", "ytdlp"))
	}

	downloader := ytdlp.NewCLI(ytdlp.Options{
		Binary:             cfg.YtDlp.Binary,
		Format:             cfg.YtDlp.Format,
		MaxDuration:        cfg.YtDlp.MaxDurationSeconds,
		SkipIntros:         cfg.YtDlp.SkipIntros,
		SponsorblockRemove: cfg.YtDlp.SponsorblockRemove,
		RequestInterval:    cfg.YtDlp.RequestInterval,
		NoWarnings:         cfg.YtDlp.NoWarnings,
		CookiesFile:        cfg.YtDlp.CookiesFile,
		Timeout:            cfg.YtDlp.DownloadTimeout.Std(),
	}, progress)

	engine := acquire.NewEngine(downloader, cacheRoot, onlyOne, log.With("component", "acquire"))

	processor := transcode.NewProcessor(transcode.Options{
		CommandTemplate: cfg.FFmpeg.CommandTemplate,
		Threads:         cfg.FFmpeg.Threads,
		BufferSize:      cfg.FFmpeg.BufferSize,
		OutputExtension: cfg.FFmpeg.OutputExtension,
		Quiet:           cfg.App.Quiet,
		Timeout:         cfg.FFmpeg.TranscodeTimeout.Std(),
	}, log.With("component", "transcode"))

	sc := scanner.New(movies, series, resolver, fallback, engine, processor, store,
		scanner.Options{
			TrailerDir:          cfg.App.TrailerDir,
			CustomPath:          cfg.App.CustomPath,
			CustomMovieDir:      cfg.App.CustomMovieDir,
			CustomShowDir:       cfg.App.CustomShowDir,
			UseTitle:            cfg.App.UseTitle,
			OnlyOneTrailer:      onlyOne,
			FreeSpaceGB:         cfg.App.FreeSpaceGB,
			SeasonTitleTemplate: cfg.YtDlp.SeasonTitleTemplate,
		},
		log.With("component", "scanner"),
	)

	return &App{Scanner: sc, History: store}, nil
}
