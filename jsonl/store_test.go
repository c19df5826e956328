package jsonl_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ctzreddy/llmjudge"
	"github.com/ctzreddy/llmjudge/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reviews.jsonl")
	store := jsonl.NewStore()

	reviews := []llmjudge.Review{
		{
			CaseID:     "abc123",
			Index:      0,
			Reviewed:   true,
			Agree:      true,
			ReviewedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			CaseID:     "def456",
			Index:      1,
			Reviewed:   true,
			Agree:      false,
			Note:       "score far too generous",
			ReviewedAt: time.Date(2026, 8, 1, 12, 5, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.Save(path, reviews))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, reviews, loaded)
}

func TestStore_Load_MissingFileReturnsNil(t *testing.T) {
	t.Parallel()

	store := jsonl.NewStore()
	reviews, err := store.Load(filepath.Join(t.TempDir(), "absent.jsonl"))

	require.NoError(t, err)
	assert.Nil(t, reviews)
}

func TestStore_Save_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reviews.jsonl")
	store := jsonl.NewStore()

	require.NoError(t, store.Save(path, []llmjudge.Review{{CaseID: "old", Reviewed: true}}))
	require.NoError(t, store.Save(path, []llmjudge.Review{{CaseID: "new", Reviewed: true}}))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "new", loaded[0].CaseID)
}
