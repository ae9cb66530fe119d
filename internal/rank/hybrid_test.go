package rank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHybrid_KeepsTopBySimilarity(t *testing.T) {
	candidates := []string{"world", "hell", "hallo", "helxo", "hello"}

	matches, err := Hybrid("hello", candidates, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, Match{Text: "hello", Similarity: 1, Distance: 0}, matches[0])
	assert.Equal(t, "helxo", matches[1].Text)
	assert.InDelta(t, 0.8, matches[1].Similarity, 1e-6)
	assert.Equal(t, 1, matches[1].Distance)
	assert.Equal(t, "hell", matches[2].Text)
	assert.InDelta(t, 0.75, matches[2].Similarity, 1e-6)
	assert.Equal(t, 1, matches[2].Distance)
}

func TestHybrid_DistanceDoesNotReorder(t *testing.T) {
	// "olleh" has the same runes as the query but a large edit distance.
	matches, err := Hybrid("hello", []string{"olleh", "hell"}, 2)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, "olleh", matches[0].Text)
	assert.Equal(t, 4, matches[0].Distance)
	assert.Equal(t, "hell", matches[1].Text)
}

func TestHybrid_TopLargerThanInput(t *testing.T) {
	texts, err := HybridTexts("berlin", []string{"potsdam", "berlino"}, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"berlino", "potsdam"}, texts)
}

func TestHybrid_ZeroTop(t *testing.T) {
	matches, err := Hybrid("berlin", []string{"berlin"}, 0)
	require.NoError(t, err)

	assert.Empty(t, matches)
}

func TestHybrid_NegativeTop(t *testing.T) {
	_, err := Hybrid("berlin", []string{"berlin"}, -1)

	assert.True(t, errors.Is(err, ErrNegativeTop))
}

func TestHybrid_InvalidInput(t *testing.T) {
	_, err := HybridTexts("", []string{"berlin"}, 1)
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = HybridTexts("berlin", []string{""}, 1)
	assert.ErrorIs(t, err, ErrEmptyCandidate)
}
