package ytdlp

import "log/slog"

// Event marks a download lifecycle transition. Events exist for logging only;
// no control flow depends on them.
type Event int

const (
	EventStarted Event = iota
	EventFinished
	EventFailed
)

func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventFinished:
		return "finished"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProgressFunc receives lifecycle events with the candidate source as detail.
type ProgressFunc func(event Event, detail string)

// LogProgress adapts lifecycle events onto a slog logger.
func LogProgress(log *slog.Logger) ProgressFunc {
	return func(event Event, detail string) {
		switch event {
		case EventFailed:
			log.Warn("download "+event.String(), "source", detail)
		default:
			log.Info("download "+event.String(), "source", detail)
		}
	}
}
