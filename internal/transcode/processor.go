// Package transcode turns cached downloads into final trailer artifacts by
// running a configured ffmpeg command template over every cached file.
package transcode

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/fetcharr/internal/trailer"
)

// ErrCommandMissing indicates the transcode command template is absent.
// This is a configuration-class error: the deployment cannot produce any
// artifact, so it aborts the whole run rather than one item.
var ErrCommandMissing = errors.New("transcode command template is not configured")

var commandContext = exec.CommandContext

// Options carries the transcoder configuration.
type Options struct {
	CommandTemplate string // {input}, {output}, {threads}, {buffer}
	Threads         int
	BufferSize      string
	OutputExtension string
	Quiet           bool
	Timeout         time.Duration // per file, 0 = unlimited
}

// Processor finalizes cache directories.
type Processor struct {
	opts Options
	log  *slog.Logger
}

// NewProcessor creates a post-processor.
func NewProcessor(opts Options, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{opts: opts, log: log}
}

// Finalize transcodes every file in cacheDir into the item's output directory,
// then removes cacheDir. Removal is unconditional: it happens no matter how
// many files failed, so partial failures never leave temp data behind.
// Per-file transcoder failures are logged and do not stop the batch.
func (p *Processor) Finalize(ctx context.Context, cacheDir string, item *trailer.Item) error {
	if p.opts.CommandTemplate == "" {
		return ErrCommandMissing
	}

	defer func() {
		if err := os.RemoveAll(cacheDir); err != nil {
			p.log.Warn("cache cleanup failed", "dir", cacheDir, "error", err)
		}
	}()

	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		return nil // nothing staged; cleanup still runs
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := p.transcode(ctx, filepath.Join(cacheDir, entry.Name()), item); err != nil {
			p.log.Error("transcode failed", "item", item.String(), "file", entry.Name(), "error", err)
		}
	}
	return nil
}

func (p *Processor) transcode(ctx context.Context, input string, item *trailer.Item) error {
	stem := trailer.Stem(filepath.Base(input))
	output := filepath.Join(item.OutputDir, stem+"."+p.opts.OutputExtension)

	cmdline := strings.NewReplacer(
		"{input}", shellQuote(input),
		"{output}", shellQuote(output),
		"{threads}", strconv.Itoa(p.opts.Threads),
		"{buffer}", p.opts.BufferSize,
	).Replace(p.opts.CommandTemplate)

	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	p.log.Info("running transcoder", "cmd", cmdline)

	// The template is a full command line, so it goes through the shell.
	cmd := commandContext(ctx, "sh", "-c", cmdline)
	if !p.opts.Quiet {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
