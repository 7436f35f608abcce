package tmdb

import "time"

// publishedAtLayout matches TMDB's millisecond RFC3339 timestamps,
// e.g. "1999-03-10T17:57:00.000Z".
const publishedAtLayout = "2006-01-02T15:04:05.000Z"

// Video represents one TMDB video descriptor (trailer, teaser, clip, ...).
type Video struct {
	Key         string `json:"key"`  // provider video id, e.g. YouTube id
	Name        string `json:"name"`
	Site        string `json:"site"` // "YouTube", "Vimeo"
	Type        string `json:"type"` // "Trailer", "Teaser", "Clip", ...
	Size        int    `json:"size"` // 720, 1080, 2160
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"` // "1999-03-10T17:57:00.000Z"
}

type videosResponse struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// Published parses PublishedAt into a UTC instant.
// A missing or malformed timestamp yields the zero time.
func (v *Video) Published() time.Time {
	if v.PublishedAt == "" {
		return time.Time{}
	}
	t, err := time.Parse(publishedAtLayout, v.PublishedAt)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, v.PublishedAt); err != nil {
			return time.Time{}
		}
	}
	return t.UTC()
}
