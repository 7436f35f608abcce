package acquire_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/fetcharr/internal/acquire"
	"github.com/vmunix/fetcharr/internal/trailer"
	"github.com/vmunix/fetcharr/internal/ytdlp"
	"github.com/vmunix/fetcharr/internal/ytdlp/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItem() *trailer.Item {
	return &trailer.Item{
		Kind: trailer.KindMovie, Title: "The Matrix", UseTitle: "The Matrix",
		Year: 1999, Path: "/lib/Matrix",
	}
}

// writeDownload simulates yt-dlp materializing a file from the output template.
func writeDownload(t *testing.T) func(context.Context, ytdlp.Request) error {
	t.Helper()
	return func(_ context.Context, req ytdlp.Request) error {
		path := strings.ReplaceAll(req.OutputTemplate, "%(ext)s", "mp4")
		return os.WriteFile(path, []byte("video"), 0o644)
	}
}

func TestEngine_Run_DownloadsFirstCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	dl := mocks.NewMockDownloader(ctrl)
	dl.EXPECT().Download(gomock.Any(), gomock.Any()).DoAndReturn(writeDownload(t))

	engine := acquire.NewEngine(dl, t.TempDir(), true, testLogger())
	cacheDir, report, err := engine.Run(context.Background(), testItem(), []trailer.Candidate{
		{Name: "Official Trailer", Source: "https://yt/watch?v=a"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Downloaded())

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	// Only-one policy names the file after the item, not the candidate.
	assert.Equal(t, "The Matrix.mp4", entries[0].Name())
}

func TestEngine_Run_OnlyOneSkipsRestAfterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	dl := mocks.NewMockDownloader(ctrl)
	// Exactly one downloader call despite three candidates.
	dl.EXPECT().Download(gomock.Any(), gomock.Any()).DoAndReturn(writeDownload(t)).Times(1)

	engine := acquire.NewEngine(dl, t.TempDir(), true, testLogger())
	_, report, err := engine.Run(context.Background(), testItem(), []trailer.Candidate{
		{Name: "A", Source: "s1"},
		{Name: "B", Source: "s2"},
		{Name: "C", Source: "s3"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Downloaded())

	skipped := 0
	for _, o := range report.Outcomes {
		if o.Status == acquire.StatusSkippedQuota {
			skipped++
		}
	}
	assert.Equal(t, 2, skipped)
}

func TestEngine_Run_DurationRejectContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	dl := mocks.NewMockDownloader(ctrl)
	gomock.InOrder(
		dl.EXPECT().Download(gomock.Any(), gomock.Any()).Return(ytdlp.ErrDurationExceeded),
		dl.EXPECT().Download(gomock.Any(), gomock.Any()).DoAndReturn(writeDownload(t)),
	)

	engine := acquire.NewEngine(dl, t.TempDir(), true, testLogger())
	_, report, err := engine.Run(context.Background(), testItem(), []trailer.Candidate{
		{Name: "Too Long", Source: "s1"},
		{Name: "Just Right", Source: "s2"},
	})

	require.NoError(t, err)
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, acquire.StatusDurationRejected, report.Outcomes[0].Status)
	assert.Equal(t, acquire.StatusDownloaded, report.Outcomes[1].Status)
}

func TestEngine_Run_FailureDoesNotAbortBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	dl := mocks.NewMockDownloader(ctrl)
	gomock.InOrder(
		dl.EXPECT().Download(gomock.Any(), gomock.Any()).Return(ytdlp.ErrDownloadFailed),
		dl.EXPECT().Download(gomock.Any(), gomock.Any()).Return(ytdlp.ErrDownloadFailed),
	)

	engine := acquire.NewEngine(dl, t.TempDir(), true, testLogger())
	cacheDir, report, err := engine.Run(context.Background(), testItem(), []trailer.Candidate{
		{Name: "A", Source: "s1"},
		{Name: "B", Source: "s2"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Downloaded())
	assert.Equal(t, 2, report.Failed())

	// Cache dir still exists (empty); cleanup belongs to the caller.
	_, statErr := os.Stat(cacheDir)
	assert.NoError(t, statErr)
}

func TestEngine_Run_PerCandidateNamesWithoutOnlyOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	dl := mocks.NewMockDownloader(ctrl)
	var templates []string
	dl.EXPECT().Download(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ytdlp.Request) error {
			templates = append(templates, req.OutputTemplate)
			return nil
		}).Times(2)

	engine := acquire.NewEngine(dl, t.TempDir(), false, testLogger())
	_, _, err := engine.Run(context.Background(), testItem(), []trailer.Candidate{
		{Name: "Teaser One", Source: "s1"},
		{Name: "Teaser Two", Source: "s2"},
	})

	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Contains(t, templates[0], "Teaser One")
	assert.Contains(t, templates[1], "Teaser Two")
}
