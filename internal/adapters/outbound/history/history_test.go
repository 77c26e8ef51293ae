package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/humorlab/humorlab/internal/adapters/outbound/history"
	"github.com/humorlab/humorlab/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.HistoryEntry{
		Timestamp:      "2026-02-25T10:00:00Z",
		JokeText:       "Dlaczego znowu ja?",
		OverallScore:   4.7,
		Grade:          "F",
		DominantTheory: domain.TheoryReverseEngineering,
	}

	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t1", OverallScore: 4.7}))
	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t2", OverallScore: 6.2}))
	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t3", OverallScore: 8.5}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 4.7, entries[0].OverallScore)
	assert.Equal(t, 8.5, entries[2].OverallScore)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".humorlab", "history", "analyses.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := history.New().Load(dir)
	assert.ErrorContains(t, err, "parsing")
}

func TestEntryFor(t *testing.T) {
	res := &domain.AnalysisResult{
		JokeText:          "Mnie to wkurza.",
		OverallScore:      8.1,
		DominantTheory:    domain.TheoryPsychoanalysis,
		ReachEstimate:     70,
		MonetizationScore: 55,
	}
	e := history.EntryFor(res, "2026-10-17T09:00:00Z")
	assert.Equal(t, "A", e.Grade)
	assert.Equal(t, domain.TheoryPsychoanalysis, e.DominantTheory)
	assert.Equal(t, 55, e.MonetizationScore)
}
