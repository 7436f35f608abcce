package scanner

import (
	"context"

	"github.com/vmunix/fetcharr/internal/acquire"
	"github.com/vmunix/fetcharr/internal/catalog"
	"github.com/vmunix/fetcharr/internal/history"
	"github.com/vmunix/fetcharr/internal/trailer"
)

// CandidateResolver resolves metadata-service trailer candidates.
type CandidateResolver interface {
	Resolve(ctx context.Context, item *trailer.Item) []trailer.Candidate
}

// FallbackStrategist composes keyword-search candidates.
type FallbackStrategist interface {
	Candidates(item *trailer.Item) []trailer.Candidate
}

// AcquisitionEngine downloads candidates into a cache directory.
type AcquisitionEngine interface {
	Run(ctx context.Context, item *trailer.Item, candidates []trailer.Candidate) (string, acquire.Report, error)
}

// PostProcessor finalizes a cache directory into output artifacts.
type PostProcessor interface {
	Finalize(ctx context.Context, cacheDir string, item *trailer.Item) error
}

// MovieCatalog lists the movie library.
type MovieCatalog interface {
	ListMovies(ctx context.Context) ([]catalog.Movie, error)
}

// SeriesCatalog lists the series library.
type SeriesCatalog interface {
	ListSeries(ctx context.Context) ([]catalog.Series, error)
}

// OutcomeRecorder persists scan outcomes. (*history.Store)(nil) satisfies it
// as a no-op.
type OutcomeRecorder interface {
	Record(e history.Entry) error
}
