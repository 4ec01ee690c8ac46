package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actualFilter(_ int, status Status, _ int) bool { return status == Actual }

func TestParallelMatchesSequentialScoring(t *testing.T) {
	e := buildScenarioEngine(t)

	queries := []string{
		"invited inquietude weather made assistance finished",
		"highly regret invited purse alteration sure",
		"-highly speaking",
		"humoured",
		"",
	}

	for _, raw := range queries {
		seq, err := e.FindTopDocumentsFilter(raw, actualFilter)
		require.NoError(t, err)

		par, err := e.FindTopDocumentsParallel(raw, actualFilter, DefaultShardCount)
		require.NoError(t, err)

		assertSameDocumentSet(t, seq, par)
	}
}

func TestParallelScoringAcrossWorkerCounts(t *testing.T) {
	e := buildScenarioEngine(t)
	raw := "invited inquietude weather made assistance finished"

	seq, err := e.FindTopDocuments(raw)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 8, 16} {
		par, err := e.FindTopDocumentsParallel(raw, actualFilter, workers)
		require.NoError(t, err)
		assertSameDocumentSet(t, seq, par)
	}
}

func assertSameDocumentSet(t *testing.T, a, b []Document) {
	t.Helper()
	require.Equal(t, len(a), len(b))

	byID := func(docs []Document) map[int]Document {
		m := make(map[int]Document, len(docs))
		for _, d := range docs {
			m[d.ID] = d
		}
		return m
	}
	am, bm := byID(a), byID(b)
	for id, da := range am {
		db, ok := bm[id]
		require.True(t, ok, "id %d present sequentially but not in parallel result", id)
		assert.Equal(t, da.Rating, db.Rating)
		assert.InDelta(t, da.Relevance, db.Relevance, 1e-9)
	}
}

func TestShardedAccumulatorShardSelectionIsStable(t *testing.T) {
	acc := newShardedAccumulator(4)
	acc.add(10, 1.5)
	acc.add(10, 2.5)
	acc.add(11, 1.0)

	got := acc.buildOrdinaryMap()
	assert.InDelta(t, 4.0, got[10], 1e-9)
	assert.InDelta(t, 1.0, got[11], 1e-9)
}

func TestShardedAccumulatorRemove(t *testing.T) {
	acc := newShardedAccumulator(4)
	acc.add(10, 1.0)
	acc.remove(10)
	got := acc.buildOrdinaryMap()
	_, present := got[10]
	assert.False(t, present)
}

func TestPartitionStringsCoversAllItems(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	parts := partitionStrings(items, 3)

	var flat []string
	for _, p := range parts {
		flat = append(flat, p...)
	}
	sort.Strings(flat)
	assert.Equal(t, items, flat)
}
