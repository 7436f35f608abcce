package trailer

import (
	"log/slog"
	"os"
	"strings"

	"github.com/hbollon/go-edlib"
)

// nearDuplicateThreshold flags existing filenames that are probably the same
// trailer under a slightly different name. Informational only.
const nearDuplicateThreshold = 0.85

// OutputState is a snapshot of the filenames already present in an item's
// output directory at scan time.
type OutputState struct {
	Dir   string
	Names map[string]struct{} // filename stems, for O(1) duplicate checks
	count int
}

// ReadOutputState lists dir once and indexes the filename stems.
func ReadOutputState(dir string) (*OutputState, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	state := &OutputState{Dir: dir, Names: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		state.Names[Stem(e.Name())] = struct{}{}
		state.count++
	}
	return state, nil
}

// Count returns the number of files present.
func (s *OutputState) Count() int { return s.count }

// HasStem reports whether a file with the given stem already exists.
func (s *OutputState) HasStem(stem string) bool {
	_, ok := s.Names[stem]
	return ok
}

// FilterNew drops candidates whose name stem already exists in the output
// directory. Pure set difference; exposed separately so duplicate avoidance is
// testable without any network or filesystem setup.
func FilterNew(candidates []Candidate, state *OutputState, log *slog.Logger) []Candidate {
	if state == nil || len(state.Names) == 0 {
		return candidates
	}

	kept := candidates[:0:0]
	for _, c := range candidates {
		if state.HasStem(c.Name) {
			continue
		}
		if log != nil {
			if near, ok := state.nearMatch(c.Name); ok {
				log.Warn("candidate name is close to an existing trailer",
					"candidate", c.Name, "existing", near)
			}
		}
		kept = append(kept, c)
	}
	return kept
}

func (s *OutputState) nearMatch(name string) (string, bool) {
	lower := strings.ToLower(name)
	for existing := range s.Names {
		score := edlib.JaroWinklerSimilarity(lower, strings.ToLower(existing))
		if float64(score) >= nearDuplicateThreshold {
			return existing, true
		}
	}
	return "", false
}
