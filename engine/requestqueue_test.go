package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestQueueSlidingWindow(t *testing.T) {
	e, err := New("")
	require.NoError(t, err)
	require.NoError(t, e.AddDocument(0, "cat", Actual, nil))

	q := NewRequestQueue(e)

	emptyQuery := "dog"    // matches nothing
	nonEmptyQuery := "cat" // matches doc 0

	for i := 0; i < 10; i++ {
		_, err := q.AddFindRequest(emptyQuery)
		require.NoError(t, err)
	}
	for i := 0; i < 1470; i++ {
		_, err := q.AddFindRequest(nonEmptyQuery)
		require.NoError(t, err)
	}
	for i := 0; i < 20; i++ {
		_, err := q.AddFindRequest(emptyQuery)
		require.NoError(t, err)
	}

	assert.Equal(t, 20, q.GetNoResultRequests())
}

func TestRequestQueueAddFindRequestPolicy(t *testing.T) {
	e := buildScenarioEngine(t)
	q := NewRequestQueue(e)
	actualOnly := func(_ int, status Status, _ int) bool { return status == Actual }

	seq, err := q.AddFindRequestPolicy("weather", actualOnly, Sequential, 0)
	require.NoError(t, err)

	par, err := q.AddFindRequestPolicy("weather", actualOnly, Parallel, 4)
	require.NoError(t, err)

	assertSameDocumentSet(t, seq, par)
	assert.Equal(t, 0, q.GetNoResultRequests())
}

func TestRequestQueueGetNoResultRequestsTracksWindowSize(t *testing.T) {
	e, err := New("")
	require.NoError(t, err)
	require.NoError(t, e.AddDocument(0, "cat", Actual, nil))

	q := NewRequestQueueWithWindow(e, 3)

	_, _ = q.AddFindRequest("dog") // empty, t=1
	_, _ = q.AddFindRequest("dog") // empty, t=2
	_, _ = q.AddFindRequest("cat") // non-empty, t=3
	assert.Equal(t, 2, q.GetNoResultRequests())

	_, _ = q.AddFindRequest("cat") // t=4, evicts t=1
	assert.Equal(t, 1, q.GetNoResultRequests())

	_, _ = q.AddFindRequest("cat") // t=5, evicts t=2
	assert.Equal(t, 0, q.GetNoResultRequests())
}
