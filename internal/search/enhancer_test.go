package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnhance(t *testing.T) {
	t.Run("food trigger appends food synonyms", func(t *testing.T) {
		got := Enhance("Paris food tour")

		assert.True(t, strings.HasPrefix(got, "Paris food tour"), "original query must be preserved unchanged")
		assert.Contains(t, got, "cuisine dining restaurant meal")
	})

	t.Run("synonym values are not triggers", func(t *testing.T) {
		// "tour" is a travel synonym but not a trigger key, so a query
		// containing only "tour" does not self-enhance.
		assert.Equal(t, "tour", Enhance("tour"))
		assert.NotContains(t, Enhance("Paris food tour"), "journey")
	})

	t.Run("travel trigger", func(t *testing.T) {
		assert.Equal(t, "travel plans trip journey vacation tour", Enhance("travel plans"))
	})

	t.Run("trigger matches case-insensitively", func(t *testing.T) {
		got := Enhance("HOTEL in Tokyo")
		assert.Equal(t, "HOTEL in Tokyo accommodation stay lodging resort", got)
	})

	t.Run("multiple triggers accumulate in rule order", func(t *testing.T) {
		got := Enhance("food and travel")
		assert.Equal(t, "food and travel trip journey vacation tour cuisine dining restaurant meal", got)
	})

	t.Run("trigger inside a larger word", func(t *testing.T) {
		// substring match, not word match
		got := Enhance("activities nearby")
		assert.Contains(t, got, "experience adventure excursion attraction")
	})

	t.Run("no trigger returns query unchanged", func(t *testing.T) {
		assert.Equal(t, "eiffel tower tickets", Enhance("eiffel tower tickets"))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Equal(t, "", Enhance(""))
	})
}
