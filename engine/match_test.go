package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchDocument(t *testing.T) {
	e := buildScenarioEngine(t)

	words, _, err := e.MatchDocument("car regret round", 1)
	require.NoError(t, err)
	assert.Len(t, words, 2)

	words, _, err = e.MatchDocument("root invited -relation", 3)
	require.NoError(t, err)
	assert.Empty(t, words)

	words, _, err = e.MatchDocument("-root invited", 3)
	require.NoError(t, err)
	assert.Len(t, words, 1)

	words, _, err = e.MatchDocument("", 0)
	require.NoError(t, err)
	assert.Empty(t, words)

	words, _, err = e.MatchDocument("root -having -regret", 1)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestMatchDocumentUnknownID(t *testing.T) {
	e := buildScenarioEngine(t)
	_, _, err := e.MatchDocument("anything", 999)
	assert.ErrorIs(t, err, ErrUnknownDocumentID)
}

func TestMatchDocumentParallelMatchesSequential(t *testing.T) {
	e := buildScenarioEngine(t)

	cases := []struct {
		query string
		id    int
	}{
		{"car regret round", 1},
		{"root invited -relation", 3},
		{"-root invited", 3},
		{"root -having -regret", 1},
	}

	for _, c := range cases {
		seqWords, seqStatus, err := e.MatchDocument(c.query, c.id)
		require.NoError(t, err)

		parWords, parStatus, err := e.MatchDocumentParallel(c.query, c.id, 4)
		require.NoError(t, err)

		assert.Equal(t, seqStatus, parStatus)
		assert.ElementsMatch(t, seqWords, parWords)
	}
}
