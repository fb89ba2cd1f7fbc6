package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fetcherFunc adapts a function to the Fetcher interface.
type fetcherFunc func(ctx context.Context, contentType string, limit int) ([]Entry, error)

func (f fetcherFunc) FetchEntries(ctx context.Context, contentType string, limit int) ([]Entry, error) {
	return f(ctx, contentType, limit)
}

func staticFetcher(entries []Entry) Fetcher {
	return fetcherFunc(func(context.Context, string, int) ([]Entry, error) {
		return entries, nil
	})
}

func TestEngineSearch(t *testing.T) {
	logger := zap.NewNop()
	entries := []Entry{
		{"title": "Paris Getaway", "description": "romantic trip"},
		{"title": "Tokyo Adventure", "description": "city tour"},
	}
	engine := NewEngine(staticFetcher(entries), 0, logger)
	ctx := context.Background()

	t.Run("only matching entry is returned", func(t *testing.T) {
		results, err := engine.Search(ctx, "tour", "paris", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Paris Getaway", results[0].Entry.Title())
		assert.Positive(t, results[0].Score)
	})

	t.Run("empty query returns first n unscored in order", func(t *testing.T) {
		results, err := engine.Search(ctx, "tour", "   ", 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Paris Getaway", results[0].Entry.Title())
		assert.Zero(t, results[0].Score)
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		broken := NewEngine(fetcherFunc(func(context.Context, string, int) ([]Entry, error) {
			return nil, errors.New("upstream down")
		}), 0, logger)

		_, err := broken.Search(ctx, "tour", "paris", 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream down")
	})

	t.Run("fetch limit defaults to 100", func(t *testing.T) {
		var gotLimit int
		probe := NewEngine(fetcherFunc(func(_ context.Context, _ string, limit int) ([]Entry, error) {
			gotLimit = limit
			return nil, nil
		}), 0, logger)

		_, err := probe.Search(ctx, "tour", "paris", 10)
		require.NoError(t, err)
		assert.Equal(t, DefaultFetchLimit, gotLimit)
	})
}

func TestEngineIntelligentSearch(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("enhanced terms reach entries the raw query misses", func(t *testing.T) {
		entries := []Entry{
			{"title": "Fine Dining Guide", "description": "the best restaurants"},
			{"title": "Museum Pass", "description": "art exhibitions"},
		}
		engine := NewEngine(staticFetcher(entries), 0, logger)

		results, err := engine.IntelligentSearch(ctx, "guide", "food", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Fine Dining Guide", results[0].Entry.Title())
	})

	t.Run("empty entry list returns empty without scoring", func(t *testing.T) {
		engine := NewEngine(staticFetcher(nil), 0, logger)

		results, err := engine.IntelligentSearch(ctx, "tour", "paris", 3)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("fetch failure degrades to plain search", func(t *testing.T) {
		calls := 0
		flaky := fetcherFunc(func(context.Context, string, int) ([]Entry, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("delivery api unavailable")
			}
			return []Entry{{"title": "Paris Getaway", "description": "romantic trip"}}, nil
		})
		engine := NewEngine(flaky, 0, logger)

		results, err := engine.IntelligentSearch(ctx, "tour", "paris", 3)
		require.NoError(t, err)
		assert.Equal(t, 2, calls, "fallback must re-fetch through the plain path")
		require.Len(t, results, 1)
		assert.Equal(t, "Paris Getaway", results[0].Entry.Title())
	})

	t.Run("persistent fetch failure surfaces the plain search error", func(t *testing.T) {
		engine := NewEngine(fetcherFunc(func(context.Context, string, int) ([]Entry, error) {
			return nil, errors.New("delivery api unavailable")
		}), 0, logger)

		_, err := engine.IntelligentSearch(ctx, "tour", "paris", 3)
		require.Error(t, err)
	})

	t.Run("results are capped at max results", func(t *testing.T) {
		entries := []Entry{
			{"title": "Paris One"},
			{"title": "Paris Two"},
			{"title": "Paris Three"},
			{"title": "Paris Four"},
		}
		engine := NewEngine(staticFetcher(entries), 0, logger)

		results, err := engine.IntelligentSearch(ctx, "tour", "paris", 3)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})
}
