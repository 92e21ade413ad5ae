package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askshell/ask/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRecords(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	entries := []domain.HistoryRecord{
		{Timestamp: base, Query: "undo last commit", Command: "git reset --soft HEAD~1", Provider: "openai", Model: "gpt-4o-mini"},
		{Timestamp: base.Add(time.Minute), Query: "disk usage", Command: "du -sh *", Provider: "anthropic", Model: "claude-sonnet-4-20250514"},
		{Timestamp: base.Add(2 * time.Minute), Query: "show raw", Provider: "openai", Model: "gpt-4o-mini", Raw: true},
	}
	for _, rec := range entries {
		require.NoError(t, store.Save(rec))
	}

	got, err := store.Records(0, "")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// newest first
	assert.Equal(t, "show raw", got[0].Query)
	assert.True(t, got[0].Raw)
	assert.Equal(t, "undo last commit", got[2].Query)
	assert.Equal(t, "git reset --soft HEAD~1", got[2].Command)
	assert.True(t, got[2].Timestamp.Equal(base))
}

func TestRecordsLimitAndSearch(t *testing.T) {
	store := newTestStore(t)
	for _, rec := range []domain.HistoryRecord{
		{Query: "undo last commit", Command: "git reset --soft HEAD~1"},
		{Query: "list pods", Command: "kubectl get pods"},
		{Query: "git log oneline", Command: "git log --oneline"},
	} {
		require.NoError(t, store.Save(rec))
	}

	limited, err := store.Records(2, "")
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	matched, err := store.Records(0, "git")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	none, err := store.Records(0, "terraform")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.HistoryRecord{Query: "q", Command: "c"}))

	require.NoError(t, store.Clear())

	got, err := store.Records(0, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExportJSON(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.HistoryRecord{Query: "disk usage", Command: "du -sh *", Provider: "openai"}))
	require.NoError(t, store.Save(domain.HistoryRecord{Query: "list files", Command: "ls -la", Provider: "openai"}))

	dest := filepath.Join(t.TempDir(), "export.jsonl")
	require.NoError(t, store.ExportJSON(dest))

	file, err := os.Open(dest)
	require.NoError(t, err)
	defer file.Close()

	var lines []domain.HistoryRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec domain.HistoryRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		lines = append(lines, rec)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, lines, 2)
	assert.Equal(t, "list files", lines[0].Query)
	assert.Equal(t, "du -sh *", lines[1].Command)
}

func TestDefaultTimestamp(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.HistoryRecord{Query: "q"}))

	got, err := store.Records(0, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Timestamp.IsZero())
}
