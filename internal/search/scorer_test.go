package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePlainWeights(t *testing.T) {
	entry := Entry{
		"title":       "Paris Getaway",
		"description": "romantic trip",
		"region":      "europe",
	}

	t.Run("title match", func(t *testing.T) {
		score, relevance := Score(entry, "paris", "paris", PlainWeights)
		// title(5) + whole-text(1); "paris" is not in the description
		assert.Equal(t, 6, score)
		assert.InDelta(t, 6.0, relevance, 1e-9)
	})

	t.Run("description match", func(t *testing.T) {
		score, _ := Score(entry, "romantic", "romantic", PlainWeights)
		assert.Equal(t, 4, score) // description(3) + whole-text(1)
	})

	t.Run("whole-text scan covers every string field", func(t *testing.T) {
		score, _ := Score(entry, "europe", "europe", PlainWeights)
		assert.Equal(t, 1, score)
	})

	t.Run("no fuzzy or phrase bonus in plain weights", func(t *testing.T) {
		score, _ := Score(entry, "pariss", "pariss", PlainWeights)
		assert.Equal(t, 0, score)
	})

	t.Run("non-matching query scores zero", func(t *testing.T) {
		score, relevance := Score(entry, "tokyo", "tokyo", PlainWeights)
		assert.Equal(t, 0, score)
		assert.Equal(t, 0.0, relevance)
	})
}

func TestScoreIntelligentWeights(t *testing.T) {
	entry := Entry{
		"title":       "Paris Getaway",
		"description": "romantic trip",
	}

	t.Run("phrase bonus on original query", func(t *testing.T) {
		score, _ := Score(entry, "paris getaway", "paris getaway", IntelligentWeights)
		// phrase(10) + 2 title terms(5+5) + 2 fuzzy(1+1)
		assert.Equal(t, 22, score)
	})

	t.Run("phrase bonus checks original not enhanced query", func(t *testing.T) {
		// enhanced query adds terms, the phrase check still uses the original
		score, _ := Score(entry, "romantic trip", "romantic trip tour vacation", IntelligentWeights)
		// phrase(10) + desc romantic(2) + fuzzy romantic(1) + desc trip(2) + fuzzy trip(1)
		assert.Equal(t, 16, score)
	})

	t.Run("fuzzy bonus on near-miss term", func(t *testing.T) {
		score, _ := Score(entry, "pariss", "pariss", IntelligentWeights)
		// no substring match anywhere, fuzzy against title word "paris"
		assert.Equal(t, 1, score)
	})

	t.Run("relevance divides by enhanced term count", func(t *testing.T) {
		score, relevance := Score(entry, "paris", "paris trip journey vacation tour", IntelligentWeights)
		assert.Positive(t, score)
		assert.InDelta(t, float64(score)/5.0, relevance, 1e-9)
	})
}

func TestScoreMissingFields(t *testing.T) {
	t.Run("empty entry never panics", func(t *testing.T) {
		score, relevance := Score(Entry{}, "paris", "paris", IntelligentWeights)
		assert.Equal(t, 0, score)
		assert.Equal(t, 0.0, relevance)
	})

	t.Run("description probes candidate fields in order", func(t *testing.T) {
		entry := Entry{"title": "Tokyo", "body": "city tour highlights"}
		score, _ := Score(entry, "tour", "tour", PlainWeights)
		assert.Equal(t, 4, score) // body serves as description(3) + whole-text(1)
	})

	t.Run("earlier candidate shadows later ones", func(t *testing.T) {
		entry := Entry{"description": "quiet resort", "body": "city tour"}
		score, _ := Score(entry, "tour", "tour", IntelligentWeights)
		assert.Equal(t, 0, score)
	})

	t.Run("non-string fields are ignored", func(t *testing.T) {
		entry := Entry{"title": "Paris", "price": 42, "tags": []string{"food"}}
		score, _ := Score(entry, "food", "food", PlainWeights)
		assert.Equal(t, 0, score)
	})

	t.Run("empty query yields zero with term floor of one", func(t *testing.T) {
		entry := Entry{"title": "Paris"}
		score, relevance := Score(entry, "", "", PlainWeights)
		assert.Equal(t, 0, score)
		assert.Equal(t, 0.0, relevance)
	})
}

func TestScoreNeverNegative(t *testing.T) {
	entries := []Entry{
		{},
		{"title": "Paris Getaway", "description": "romantic trip"},
		{"title": "", "description": ""},
		{"body": "city tour"},
	}
	queries := []string{"", "paris", "food tour", "xyzzy", "the"}

	for _, e := range entries {
		for _, q := range queries {
			for _, w := range []Weights{PlainWeights, IntelligentWeights} {
				score, relevance := Score(e, q, Enhance(q), w)
				assert.GreaterOrEqual(t, score, 0)
				assert.GreaterOrEqual(t, relevance, 0.0)
			}
		}
	}
}
