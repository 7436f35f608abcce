// Package catalog provides read-only clients for the Radarr and Sonarr APIs.
package catalog

// Movie is one Radarr library entry, trimmed to what trailer resolution needs.
type Movie struct {
	ID               int64  `json:"id"`
	TmdbID           int64  `json:"tmdbId"`
	Title            string `json:"title"`
	OriginalTitle    string `json:"originalTitle"`
	SortTitle        string `json:"sortTitle"`
	Year             int    `json:"year"`
	Path             string `json:"path"`
	YouTubeTrailerID string `json:"youTubeTrailerId"`
}

// Series is one Sonarr library entry.
type Series struct {
	ID            int64    `json:"id"`
	TmdbID        int64    `json:"tmdbId"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"originalTitle"`
	SortTitle     string   `json:"sortTitle"`
	Year          int      `json:"year"`
	Path          string   `json:"path"`
	Seasons       []Season `json:"seasons"`
}

// Season is one season slot of a series. Season 0 is the specials bucket.
type Season struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

// TitleField selects one of the catalog title variants by config key.
// Unknown keys fall back to the display title.
func titleField(title, original, sort, key string) string {
	switch key {
	case "originalTitle":
		if original != "" {
			return original
		}
	case "sortTitle":
		if sort != "" {
			return sort
		}
	}
	return title
}

// UseTitle returns the configured title variant for a movie.
func (m *Movie) UseTitle(key string) string {
	return titleField(m.Title, m.OriginalTitle, m.SortTitle, key)
}

// UseTitle returns the configured title variant for a series.
func (s *Series) UseTitle(key string) string {
	return titleField(s.Title, s.OriginalTitle, s.SortTitle, key)
}
