package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessQueriesPositionalCorrespondence(t *testing.T) {
	e := buildScenarioEngine(t)

	queries := []string{
		"humoured",
		"-highly speaking",
		"weather",
		"",
	}

	results := e.ProcessQueries(queries)
	require.Len(t, results, len(queries))

	assert.Len(t, results[0].Documents, 1)
	assert.Equal(t, 3, results[0].Documents[0].ID)

	assert.Empty(t, results[1].Documents)
	assert.NotEmpty(t, results[2].Documents)
	assert.Empty(t, results[3].Documents)
}

func TestProcessQueriesJoined(t *testing.T) {
	e := buildScenarioEngine(t)

	queries := []string{"humoured", "weather"}
	joined, errs := e.ProcessQueriesJoined(queries)

	require.Len(t, errs, len(queries))
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, joined, 2)
}

func TestProcessQueriesPropagatesParseErrors(t *testing.T) {
	e := buildScenarioEngine(t)

	results := e.ProcessQueries([]string{"valid", "--broken"})
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrMalformedMinus)
}

func TestProcessQueriesEmptyInput(t *testing.T) {
	e := buildScenarioEngine(t)
	results := e.ProcessQueries(nil)
	assert.Empty(t, results)
}
