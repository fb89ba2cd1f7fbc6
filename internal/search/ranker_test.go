package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	entries := []Entry{
		{"title": "low", "score_value": 1},
		{"title": "zero"},
		{"title": "high"},
		{"title": "mid"},
	}
	// fixed scores keyed by title
	scores := map[string]int{"low": 1, "zero": 0, "high": 9, "mid": 5}
	scoreFn := func(e Entry) (int, float64) {
		s := scores[e.Title()]
		return s, float64(s)
	}

	t.Run("sorts descending and drops zero scores", func(t *testing.T) {
		got := Rank(entries, scoreFn, 10)
		require.Len(t, got, 3)
		assert.Equal(t, "high", got[0].Entry.Title())
		assert.Equal(t, "mid", got[1].Entry.Title())
		assert.Equal(t, "low", got[2].Entry.Title())
	})

	t.Run("truncates to max results", func(t *testing.T) {
		got := Rank(entries, scoreFn, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "high", got[0].Entry.Title())
		assert.Equal(t, "mid", got[1].Entry.Title())
	})

	t.Run("non-positive max results yields empty", func(t *testing.T) {
		assert.Empty(t, Rank(entries, scoreFn, 0))
		assert.Empty(t, Rank(entries, scoreFn, -3))
	})

	t.Run("equal scores keep fetch order", func(t *testing.T) {
		tied := []Entry{
			{"title": "first"},
			{"title": "second"},
			{"title": "third"},
		}
		got := Rank(tied, func(Entry) (int, float64) { return 7, 7 }, 10)
		require.Len(t, got, 3)
		assert.Equal(t, "first", got[0].Entry.Title())
		assert.Equal(t, "second", got[1].Entry.Title())
		assert.Equal(t, "third", got[2].Entry.Title())
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Rank(nil, scoreFn, 5))
	})
}

func TestHead(t *testing.T) {
	entries := []Entry{
		{"title": "a"},
		{"title": "b"},
		{"title": "c"},
	}

	t.Run("returns first n in fetch order", func(t *testing.T) {
		got := Head(entries, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Entry.Title())
		assert.Equal(t, "b", got[1].Entry.Title())
		assert.Zero(t, got[0].Score)
	})

	t.Run("max beyond length returns all", func(t *testing.T) {
		assert.Len(t, Head(entries, 10), 3)
	})

	t.Run("non-positive max yields empty", func(t *testing.T) {
		assert.Empty(t, Head(entries, 0))
	})
}
