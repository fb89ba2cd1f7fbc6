package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"kitten sitting", "kitten", "sitting", 3},
		{"identical", "paris", "paris", 0},
		{"empty to word", "", "tour", 4},
		{"word to empty", "tour", "", 4},
		{"both empty", "", "", 0},
		{"single substitution", "restaurant", "restaurent", 1},
		{"night nacht", "night", "nacht", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Run("night nacht", func(t *testing.T) {
		// longer = "night" (5), two substitutions (i->a, g->c) -> 1 - 2/5
		assert.InDelta(t, 0.6, Similarity("night", "nacht"), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, Similarity("restaurant", "restaurent"), Similarity("restaurent", "restaurant"))
	})

	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 1.0, Similarity("hotel", "hotel"))
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Equal(t, 1.0, Similarity("", ""))
	})

	t.Run("one empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Similarity("tour", ""))
	})
}

func TestFuzzyMatch(t *testing.T) {
	t.Run("close word matches", func(t *testing.T) {
		assert.True(t, FuzzyMatch("restaurant", "best restaurent in town"))
	})

	t.Run("exact word matches", func(t *testing.T) {
		assert.True(t, FuzzyMatch("paris", "a trip to paris"))
	})

	t.Run("below threshold", func(t *testing.T) {
		// similarity("night", "nacht") = 0.6 < 0.7
		assert.False(t, FuzzyMatch("night", "the nacht fell"))
	})

	t.Run("short term never matches", func(t *testing.T) {
		assert.False(t, FuzzyMatch("to", "to to to"))
		assert.False(t, FuzzyMatch("ab", "ab"))
	})

	t.Run("short words are skipped", func(t *testing.T) {
		assert.False(t, FuzzyMatch("tour", "to or"))
	})

	t.Run("empty text", func(t *testing.T) {
		assert.False(t, FuzzyMatch("tour", ""))
	})
}
