package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_NoChoices(t *testing.T) {
	t.Parallel()

	_, err := Select("param")
	require.ErrorIs(t, err, ErrNoChoices)
}

func TestUniqueSorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"author", "series2", "series10"},
		uniqueSorted([]string{"series10", "author", "series2", "author"}))
	assert.Empty(t, uniqueSorted(nil))
}

func TestPrefixSearcher(t *testing.T) {
	t.Parallel()

	names := []string{"author", "Rating", "reading_time"}
	search := prefixSearcher(names)

	assert.True(t, search("", 0))
	assert.True(t, search("ra", 1))
	assert.False(t, search("ra", 2))
	assert.True(t, search("RE", 2))
	assert.False(t, search("author.name", 0))
}
