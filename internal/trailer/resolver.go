package trailer

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/vmunix/fetcharr/internal/tmdb"
)

// VideoSource is the slice of the TMDB client the resolver depends on.
type VideoSource interface {
	MovieVideos(ctx context.Context, tmdbID int64) ([]tmdb.Video, error)
	SeriesVideos(ctx context.Context, tmdbID int64) ([]tmdb.Video, error)
	SeasonVideos(ctx context.Context, tmdbID int64, season int) ([]tmdb.Video, error)
}

// Resolver turns a catalog item into an ordered list of trailer candidates.
type Resolver struct {
	source  VideoSource
	policy  Policy
	baseURL string // downloader base URL, video key appended
	recency bool   // sort by publish recency (only-one-trailer policy)
	log     *slog.Logger

	now func() time.Time // test seam
}

// NewResolver creates a resolver. recency enables most-recent-first ordering.
func NewResolver(source VideoSource, policy Policy, baseURL string, recency bool, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		source:  source,
		policy:  policy,
		baseURL: baseURL,
		recency: recency,
		log:     log,
		now:     time.Now,
	}
}

// Resolve queries the metadata service and returns accepted candidates.
// Network or decode failures degrade to an empty list: the caller falls back
// to keyword search, and the cycle keeps going.
func (r *Resolver) Resolve(ctx context.Context, item *Item) []Candidate {
	videos, err := r.fetch(ctx, item)
	if err != nil {
		r.log.Warn("metadata lookup failed", "item", item.String(), "error", err)
		return nil
	}

	var candidates []Candidate
	for _, v := range videos {
		if !r.policy.Accept(v) {
			continue
		}
		candidates = append(candidates, Candidate{
			Name:        SanitizeName(v.Name),
			Source:      r.baseURL + v.Key,
			Provenance:  ProvenanceAPI,
			PublishedAt: v.Published(),
		})
	}

	if r.recency {
		now := r.now().UTC()
		// Most recently published first; stable keeps first-seen order on ties.
		sort.SliceStable(candidates, func(i, j int) bool {
			di := absDuration(now.Sub(candidates[i].PublishedAt))
			dj := absDuration(now.Sub(candidates[j].PublishedAt))
			return di < dj
		})
	}

	return candidates
}

func (r *Resolver) fetch(ctx context.Context, item *Item) ([]tmdb.Video, error) {
	switch {
	case item.Kind == KindSeries && item.Season > 0:
		return r.source.SeasonVideos(ctx, item.TmdbID, item.Season)
	case item.Kind == KindSeries:
		return r.source.SeriesVideos(ctx, item.TmdbID)
	default:
		return r.source.MovieVideos(ctx, item.TmdbID)
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
