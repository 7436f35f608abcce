package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "fetcharr.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Record(Entry{
		Kind: "movie", Title: "The Matrix", Year: 1999,
		Candidate: "Official Trailer", Source: "https://yt/a", Status: "downloaded",
	}))
	require.NoError(t, s.Record(Entry{
		Kind: "series", Title: "Game of Thrones", Year: 2011, Season: 2,
		Status: "no-candidates",
	}))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "Game of Thrones", entries[0].Title)
	assert.Equal(t, 2, entries[0].Season)
	assert.Equal(t, "no-candidates", entries[0].Status)
	assert.False(t, entries[0].CreatedAt.IsZero())

	assert.Equal(t, "The Matrix", entries[1].Title)
	assert.Equal(t, "Official Trailer", entries[1].Candidate)
	assert.Equal(t, "downloaded", entries[1].Status)
}

func TestStore_RecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(Entry{Kind: "movie", Title: "x", Status: "downloaded"}))
	}

	entries, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestStore_NilStoreIsNoOp(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Record(Entry{Kind: "movie", Title: "x"}))

	entries, err := s.Recent(10)
	assert.NoError(t, err)
	assert.Nil(t, entries)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fetcharr.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(Entry{Kind: "movie", Title: "The Matrix", Status: "downloaded"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "The Matrix", entries[0].Title)
}
