package trailer

import (
	"slices"

	"github.com/vmunix/fetcharr/internal/tmdb"
)

// Policy is the configured acceptance filter for metadata-service videos.
// Each sub-condition applies only when set; an unset condition never rejects.
// A video must satisfy every configured sub-condition.
type Policy struct {
	OfficialOnly *bool
	Types        []string
	Size         int
	Site         string
}

// Accept evaluates the conjunction of the configured sub-conditions.
func (p Policy) Accept(v tmdb.Video) bool {
	if p.OfficialOnly != nil && v.Official != *p.OfficialOnly {
		return false
	}
	if len(p.Types) > 0 && !slices.Contains(p.Types, v.Type) {
		return false
	}
	if p.Size != 0 && v.Size != p.Size {
		return false
	}
	if p.Site != "" && v.Site != p.Site {
		return false
	}
	return true
}
