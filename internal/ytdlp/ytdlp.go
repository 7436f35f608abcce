// Package ytdlp wraps the yt-dlp command-line downloader.
package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

// Request describes one download: a direct URL or a provider search string,
// plus the output filename template.
type Request struct {
	Source         string
	OutputTemplate string
}

// Downloader fetches one video per call.
type Downloader interface {
	Download(ctx context.Context, req Request) error
}

// Options carries the process-wide downloader configuration.
type Options struct {
	Binary             string
	Format             string
	MaxDuration        int // seconds, 0 = no cap
	SkipIntros         bool
	SponsorblockRemove []string // categories; "default" set when empty
	RequestInterval    int      // seconds between yt-dlp's own requests
	NoWarnings         bool
	CookiesFile        string
	Timeout            time.Duration // 0 = unlimited
}

// CLI invokes the yt-dlp binary.
type CLI struct {
	opts     Options
	progress ProgressFunc
}

// NewCLI creates a yt-dlp wrapper. progress may be nil.
func NewCLI(opts Options, progress ProgressFunc) *CLI {
	if opts.Binary == "" {
		opts.Binary = "yt-dlp"
	}
	return &CLI{opts: opts, progress: progress}
}

// Download runs yt-dlp for one source. A duration-cap rejection maps to
// ErrDurationExceeded, everything else to ErrDownloadFailed.
func (c *CLI) Download(ctx context.Context, req Request) error {
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	args := c.args(req)
	cmd := commandContext(ctx, c.opts.Binary, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	c.emit(EventStarted, req.Source)
	err := cmd.Run()

	if rejectedByDurationFilter(output.String()) {
		c.emit(EventFailed, req.Source)
		return ErrDurationExceeded
	}
	if err != nil {
		c.emit(EventFailed, req.Source)
		return fmt.Errorf("%w: %s: %s", ErrDownloadFailed, err, tail(output.String(), 300))
	}

	c.emit(EventFinished, req.Source)
	return nil
}

// args builds the yt-dlp argv. Never passes --ignore-errors or --quiet: the
// wrapper reads exit status and the match-filter skip message off the
// subprocess output, and both flags destroy those signals.
func (c *CLI) args(req Request) []string {
	args := []string{
		"--no-playlist",
		"-f", c.opts.Format,
		"-o", req.OutputTemplate,
	}
	if c.opts.MaxDuration > 0 {
		args = append(args, "--match-filter", fmt.Sprintf("duration <= %d", c.opts.MaxDuration))
	}
	if c.opts.SkipIntros {
		categories := strings.Join(c.opts.SponsorblockRemove, ",")
		if categories == "" {
			categories = "default"
		}
		args = append(args, "--sponsorblock-remove", categories)
	}
	if c.opts.RequestInterval > 0 {
		args = append(args, "--sleep-requests", strconv.Itoa(c.opts.RequestInterval))
	}
	if c.opts.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.opts.CookiesFile != "" {
		args = append(args, "--cookies", c.opts.CookiesFile)
	}
	return append(args, req.Source)
}

func (c *CLI) emit(event Event, detail string) {
	if c.progress != nil {
		c.progress(event, detail)
	}
}

// rejectedByDurationFilter detects yt-dlp's match-filter skip message.
// The filter only ever carries a duration condition here.
func rejectedByDurationFilter(output string) bool {
	return strings.Contains(output, "does not pass filter (duration")
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}

// Available reports whether the binary can be found, for preflight checks.
func (c *CLI) Available() bool {
	_, err := exec.LookPath(c.opts.Binary)
	return err == nil
}
