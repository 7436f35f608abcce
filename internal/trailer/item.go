// Package trailer contains the trailer resolution core: the item and candidate
// model, the acceptance policy, the TMDB-backed resolver, the keyword-search
// fallback, and the duplicate-avoidance filter over existing output files.
package trailer

import "fmt"

// Kind distinguishes movie items from series-season items.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// Item is one unit of trailer coverage: a movie, or one season of a series.
// Items are rebuilt from catalog data on every scan cycle and never persisted.
type Item struct {
	Kind   Kind
	ID     int64 // catalog id
	TmdbID int64
	Title  string // raw catalog title
	Year   int
	Path   string // library location on disk

	// UseTitle is the display title resolved per configuration; for seasons it
	// is already season-scoped ("Show Season 2").
	UseTitle string

	// Season is zero for movies.
	Season int

	// YouTubeTrailerID is the catalog's first-party trailer hint, if any.
	YouTubeTrailerID string

	// OutputDir is the final artifact directory, computed by the scanner.
	OutputDir string
}

// Valid reports whether the item carries the fields processing depends on.
// Invalid items are skipped, not retried.
func (i *Item) Valid() bool {
	return i.Path != "" && i.Title != ""
}

// CacheKey names the per-item temporary download directory.
func (i *Item) CacheKey() string {
	if i.Kind == KindSeries && i.Season > 0 {
		return fmt.Sprintf("%s (%d) S%02d", SanitizeName(i.Title), i.Year, i.Season)
	}
	return fmt.Sprintf("%s (%d)", SanitizeName(i.Title), i.Year)
}

func (i *Item) String() string {
	if i.Kind == KindSeries && i.Season > 0 {
		return fmt.Sprintf("%s season %d", i.Title, i.Season)
	}
	return fmt.Sprintf("%s (%d)", i.Title, i.Year)
}
