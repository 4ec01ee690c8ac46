package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryBasic(t *testing.T) {
	stop := map[string]struct{}{"the": {}}

	q, err := parseQuery("cat -dog the mouse", stop)
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "mouse"}, q.plusTerms)
	assert.Equal(t, []string{"dog"}, q.minusTerms)
}

func TestParseQueryDedupAndSort(t *testing.T) {
	q, err := parseQuery("zebra apple zebra -mouse -mouse", nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"apple", "zebra"}, q.plusTerms)
	assert.Equal(t, []string{"mouse"}, q.minusTerms)
}

func TestParseQueryEmpty(t *testing.T) {
	q, err := parseQuery("", nil)
	assert.NoError(t, err)
	assert.Empty(t, q.plusTerms)
	assert.Empty(t, q.minusTerms)
}

func TestParseQueryMalformedMinus(t *testing.T) {
	for _, raw := range []string{"-", "word --also", "word - also"} {
		_, err := parseQuery(raw, nil)
		assert.ErrorIs(t, err, ErrMalformedMinus, "query: %q", raw)
	}
}

func TestParseQueryInvalidCharacter(t *testing.T) {
	_, err := parseQuery("bad\x01word", nil)
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestParseQueryStopWordDroppedFromBothSides(t *testing.T) {
	stop := map[string]struct{}{"the": {}}
	q, err := parseQuery("-the cat", stop)
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat"}, q.plusTerms)
	assert.Empty(t, q.minusTerms)
}
