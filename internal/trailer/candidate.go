package trailer

import (
	"regexp"
	"strings"
	"time"
)

// Provenance records which path produced a candidate.
type Provenance string

const (
	// ProvenanceAPI marks candidates resolved from the metadata service.
	ProvenanceAPI Provenance = "api"
	// ProvenanceCatalogHint marks the catalog's own trailer id.
	ProvenanceCatalogHint Provenance = "catalog-hint"
	// ProvenanceSearch marks synthesized keyword-search candidates.
	ProvenanceSearch Provenance = "search"
)

// Candidate is one potential trailer source, not yet fetched.
type Candidate struct {
	// Name is sanitized and safe to use as a filename component.
	Name string

	// Source is either a direct video URL or a downloader search string
	// such as "ytsearch:The Matrix trailer".
	Source string

	Provenance Provenance

	// PublishedAt is the zero time when the source has no publish date.
	PublishedAt time.Time
}

// slashes matches runs of forward and backward slashes.
var slashes = regexp.MustCompile(`[\\/]+`)

// multiSpace matches multiple consecutive spaces.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeName replaces path separators with spaces and collapses whitespace,
// so candidate names are always usable as filename stems.
func SanitizeName(name string) string {
	name = slashes.ReplaceAllString(name, " ")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// Stem strips the extension from a filename.
func Stem(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}
