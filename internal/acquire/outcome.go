package acquire

import "github.com/vmunix/fetcharr/internal/trailer"

// Status is the terminal state of one candidate download attempt.
type Status string

const (
	StatusDownloaded       Status = "downloaded"
	StatusDurationRejected Status = "duration-rejected"
	StatusFailed           Status = "download-failed"
	StatusSkippedQuota     Status = "skipped-quota"
)

// Outcome records what happened to one candidate.
type Outcome struct {
	Candidate trailer.Candidate
	Status    Status
	Err       error
}

// Report is the per-item fold over all candidate outcomes.
type Report struct {
	Outcomes []Outcome
}

// Downloaded counts successfully fetched candidates.
func (r Report) Downloaded() int {
	return r.countStatus(StatusDownloaded)
}

// Failed counts candidates that ended in download failure.
func (r Report) Failed() int {
	return r.countStatus(StatusFailed)
}

func (r Report) countStatus(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}
