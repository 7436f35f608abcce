package ytdlp

import "errors"

// Sentinel errors for the ytdlp package.
var (
	// ErrDurationExceeded is returned when the resolved stream is longer than
	// the configured duration cap and the match filter rejected it.
	ErrDurationExceeded = errors.New("video duration exceeds configured cap")

	// ErrDownloadFailed is returned for any other download failure.
	ErrDownloadFailed = errors.New("download failed")
)
