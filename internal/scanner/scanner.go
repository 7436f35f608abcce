// Package scanner sequences the trailer pipeline for every catalog item:
// disk guard, output-state short circuit, resolve, fallback, acquire,
// finalize. One item's failure never aborts the scan of the rest.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vmunix/fetcharr/internal/catalog"
	"github.com/vmunix/fetcharr/internal/history"
	"github.com/vmunix/fetcharr/internal/trailer"
	"github.com/vmunix/fetcharr/internal/transcode"
)

// Options carries the scanner's path and policy configuration.
type Options struct {
	TrailerDir          string // subdirectory under each item's library path
	CustomPath          string // optional output root override
	CustomMovieDir      string
	CustomShowDir       string
	UseTitle            string // which catalog title variant to use
	OnlyOneTrailer      bool
	FreeSpaceGB         float64
	SeasonTitleTemplate string // "{show} Season {season}"
}

// Scanner drives one scan cycle over the configured catalogs.
type Scanner struct {
	movies    MovieCatalog // nil when Radarr is not configured
	series    SeriesCatalog
	resolver  CandidateResolver
	fallback  FallbackStrategist
	engine    AcquisitionEngine
	processor PostProcessor
	recorder  OutcomeRecorder
	opts      Options
	log       *slog.Logger
}

// New creates a Scanner.
func New(movies MovieCatalog, series SeriesCatalog, resolver CandidateResolver,
	fallback FallbackStrategist, engine AcquisitionEngine, processor PostProcessor,
	recorder OutcomeRecorder, opts Options, log *slog.Logger) *Scanner {

	if log == nil {
		log = slog.Default()
	}
	if recorder == nil {
		recorder = (*history.Store)(nil)
	}
	return &Scanner{
		movies:    movies,
		series:    series,
		resolver:  resolver,
		fallback:  fallback,
		engine:    engine,
		processor: processor,
		recorder:  recorder,
		opts:      opts,
		log:       log,
	}
}

// ScanMovies processes every movie in the catalog. Returns an error only for
// catalog-level or configuration-class failures.
func (s *Scanner) ScanMovies(ctx context.Context) error {
	if s.movies == nil {
		s.log.Warn("radarr not configured, skipping movie scan")
		return nil
	}

	s.log.Info("movie trailer scan started")
	movies, err := s.movies.ListMovies(ctx)
	if err != nil {
		return fmt.Errorf("list movies: %w", err)
	}

	for _, m := range movies {
		item := s.movieItem(m)
		if !item.Valid() {
			s.log.Warn("skipping item without path or title", "kind", item.Kind, "id", item.ID)
			continue
		}
		if err := s.process(ctx, item); err != nil {
			return err
		}
	}

	s.log.Info("movie trailer scan finished", "movies", len(movies))
	return nil
}

// ScanSeries processes every season of every series in the catalog.
func (s *Scanner) ScanSeries(ctx context.Context) error {
	if s.series == nil {
		s.log.Warn("sonarr not configured, skipping series scan")
		return nil
	}

	s.log.Info("series trailer scan started")
	series, err := s.series.ListSeries(ctx)
	if err != nil {
		return fmt.Errorf("list series: %w", err)
	}

	for _, sh := range series {
		if sh.Path == "" || sh.Title == "" {
			s.log.Warn("skipping series without path or title", "id", sh.ID)
			continue
		}
		for _, season := range sh.Seasons {
			item := s.seasonItem(sh, season)
			if err := s.process(ctx, item); err != nil {
				return err
			}
		}
	}

	s.log.Info("series trailer scan finished", "series", len(series))
	return nil
}

// process runs the full pipeline for one item. All per-item errors are
// handled here; only configuration-class errors propagate.
func (s *Scanner) process(ctx context.Context, item *trailer.Item) error {
	if err := os.MkdirAll(item.OutputDir, 0o755); err != nil {
		s.log.Error("cannot create output directory", "item", item.String(), "dir", item.OutputDir, "error", err)
		return nil
	}

	if err := EnsureSpace(item.OutputDir, s.opts.FreeSpaceGB); err != nil {
		s.log.Error("skipping item", "item", item.String(), "error", err)
		s.record(item, nil, "skipped-disk-space", err.Error())
		return nil
	}

	state, err := trailer.ReadOutputState(item.OutputDir)
	if err != nil {
		s.log.Error("cannot read output directory", "item", item.String(), "error", err)
		return nil
	}

	if s.opts.OnlyOneTrailer && state.Count() >= 1 {
		s.log.Info("already satisfied", "item", item.String(), "trailers", state.Count())
		return nil
	}

	s.log.Info("searching trailers", "item", item.String())

	resolved := trailer.FilterNew(s.resolver.Resolve(ctx, item), state, s.log)
	candidates := resolved
	if len(resolved) == 0 {
		// Fallback fires only on an empty post-filter resolver result,
		// never after acquisition failures.
		candidates = trailer.FilterNew(s.fallback.Candidates(item), state, s.log)
		if len(candidates) > 0 {
			s.log.Info("no metadata candidates, using search fallback", "item", item.String())
		}
	}

	if len(candidates) == 0 {
		s.log.Warn("no trailer candidates", "item", item.String())
		s.record(item, nil, "no-candidates", "")
		return nil
	}

	cacheDir, report, err := s.engine.Run(ctx, item, candidates)
	if err != nil {
		s.log.Error("acquisition failed", "item", item.String(), "error", err)
		return nil
	}
	for _, o := range report.Outcomes {
		detail := ""
		if o.Err != nil {
			detail = o.Err.Error()
		}
		s.record(item, &o.Candidate, string(o.Status), detail)
	}

	if report.Downloaded() == 0 {
		// Nothing staged; still tear the cache down.
		if err := os.RemoveAll(cacheDir); err != nil {
			s.log.Warn("cache cleanup failed", "dir", cacheDir, "error", err)
		}
		return nil
	}

	if err := s.processor.Finalize(ctx, cacheDir, item); err != nil {
		if errors.Is(err, transcode.ErrCommandMissing) {
			return err // deployment is unusable, abort the run
		}
		s.log.Error("post-processing failed", "item", item.String(), "error", err)
	}
	return nil
}

func (s *Scanner) movieItem(m catalog.Movie) *trailer.Item {
	item := &trailer.Item{
		Kind:             trailer.KindMovie,
		ID:               m.ID,
		TmdbID:           m.TmdbID,
		Title:            m.Title,
		UseTitle:         m.UseTitle(s.opts.UseTitle),
		Year:             m.Year,
		Path:             m.Path,
		YouTubeTrailerID: m.YouTubeTrailerID,
	}

	item.OutputDir = filepath.Join(m.Path, s.opts.TrailerDir)
	if s.opts.CustomPath != "" && s.opts.CustomMovieDir != "" {
		item.OutputDir = filepath.Join(s.opts.CustomPath, s.opts.CustomMovieDir, item.UseTitle)
	}
	return item
}

func (s *Scanner) seasonItem(sh catalog.Series, season catalog.Season) *trailer.Item {
	useTitle := sh.UseTitle(s.opts.UseTitle)
	seasonTitle := strings.NewReplacer(
		"{show}", useTitle,
		"{season}", strconv.Itoa(season.SeasonNumber),
	).Replace(s.opts.SeasonTitleTemplate)

	item := &trailer.Item{
		Kind:     trailer.KindSeries,
		ID:       sh.ID,
		TmdbID:   sh.TmdbID,
		Title:    sh.Title,
		UseTitle: seasonTitle,
		Year:     sh.Year,
		Path:     sh.Path,
		Season:   season.SeasonNumber,
	}

	base := filepath.Join(sh.Path, s.opts.TrailerDir)
	if s.opts.CustomPath != "" && s.opts.CustomShowDir != "" {
		base = filepath.Join(s.opts.CustomPath, s.opts.CustomShowDir, useTitle)
	}
	item.OutputDir = filepath.Join(base, trailer.SanitizeName(seasonTitle))
	return item
}

func (s *Scanner) record(item *trailer.Item, c *trailer.Candidate, status, detail string) {
	e := history.Entry{
		Kind:   string(item.Kind),
		Title:  item.Title,
		Year:   item.Year,
		Season: item.Season,
		Status: status,
		Detail: detail,
	}
	if c != nil {
		e.Candidate = c.Name
		e.Source = c.Source
	}
	if err := s.recorder.Record(e); err != nil {
		s.log.Warn("history record failed", "item", item.String(), "error", err)
	}
}
