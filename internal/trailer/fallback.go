package trailer

import (
	"fmt"
	"strings"
)

// Fallback composes keyword-search candidates when the resolver comes back
// empty. It never talks to the network; it only builds candidate descriptors
// for the downloader's provider search syntax.
type Fallback struct {
	baseURL  string   // direct-link base for catalog trailer hints
	prefixes []string // downloader search prefixes, e.g. "ytsearch"
	keyword  string   // suffix appended to the search query
}

// NewFallback creates a fallback strategist.
func NewFallback(baseURL string, prefixes []string, keyword string) *Fallback {
	return &Fallback{
		baseURL:  baseURL,
		prefixes: prefixes,
		keyword:  keyword,
	}
}

// Candidates synthesizes the fallback candidate list for an item. A catalog
// trailer hint takes priority and is placed ahead of search queries.
func (f *Fallback) Candidates(item *Item) []Candidate {
	name := SanitizeName(item.UseTitle)

	var candidates []Candidate
	if item.YouTubeTrailerID != "" {
		candidates = append(candidates, Candidate{
			Name:       name,
			Source:     f.baseURL + item.YouTubeTrailerID,
			Provenance: ProvenanceCatalogHint,
		})
	}

	query := item.UseTitle
	if f.keyword != "" {
		query = strings.TrimSpace(query + " " + f.keyword)
	}
	for _, prefix := range f.prefixes {
		candidates = append(candidates, Candidate{
			Name:       name,
			Source:     fmt.Sprintf("%s:%s", prefix, query),
			Provenance: ProvenanceSearch,
		})
	}

	return candidates
}
