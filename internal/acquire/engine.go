// Package acquire drives the external downloader across an item's candidate
// list, one candidate at a time, and accumulates a per-candidate outcome
// instead of aborting the batch on failure.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vmunix/fetcharr/internal/trailer"
	"github.com/vmunix/fetcharr/internal/ytdlp"
)

// Engine downloads candidates into a per-item cache directory.
type Engine struct {
	downloader ytdlp.Downloader
	cacheRoot  string
	onlyOne    bool
	log        *slog.Logger
}

// NewEngine creates an acquisition engine. cacheRoot is the parent of all
// per-item cache directories.
func NewEngine(downloader ytdlp.Downloader, cacheRoot string, onlyOne bool, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		downloader: downloader,
		cacheRoot:  cacheRoot,
		onlyOne:    onlyOne,
		log:        log,
	}
}

// Run attempts every candidate in order and returns the cache directory path
// together with the outcome report. The cache directory is returned even when
// nothing was downloaded; the caller owns its cleanup.
func (e *Engine) Run(ctx context.Context, item *trailer.Item, candidates []trailer.Candidate) (string, Report, error) {
	cacheDir := filepath.Join(e.cacheRoot, item.CacheKey())
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return cacheDir, Report{}, fmt.Errorf("create cache dir: %w", err)
	}

	var report Report
	for _, c := range candidates {
		// Under the only-one policy a filled cache ends the batch: the rest
		// are skipped without touching the downloader.
		if e.onlyOne && cachedFileCount(cacheDir) >= 1 {
			report.Outcomes = append(report.Outcomes, Outcome{Candidate: c, Status: StatusSkippedQuota})
			continue
		}

		report.Outcomes = append(report.Outcomes, e.attempt(ctx, cacheDir, item, c))
	}

	return cacheDir, report, nil
}

func (e *Engine) attempt(ctx context.Context, cacheDir string, item *trailer.Item, c trailer.Candidate) Outcome {
	stem := c.Name
	if e.onlyOne {
		stem = trailer.SanitizeName(item.UseTitle)
	}

	req := ytdlp.Request{
		Source:         c.Source,
		OutputTemplate: filepath.Join(cacheDir, stem+".%(ext)s"),
	}

	err := e.downloader.Download(ctx, req)
	switch {
	case err == nil:
		e.log.Info("trailer downloaded", "item", item.String(), "candidate", c.Name, "provenance", c.Provenance)
		return Outcome{Candidate: c, Status: StatusDownloaded}
	case errors.Is(err, ytdlp.ErrDurationExceeded):
		e.log.Info("candidate rejected by duration cap", "item", item.String(), "candidate", c.Name)
		return Outcome{Candidate: c, Status: StatusDurationRejected, Err: err}
	default:
		e.log.Warn("candidate download failed", "item", item.String(), "candidate", c.Name, "error", err)
		return Outcome{Candidate: c, Status: StatusFailed, Err: err}
	}
}

func cachedFileCount(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			n++
		}
	}
	return n
}
