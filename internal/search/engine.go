package search

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Fetcher supplies the candidate entries for a content type. Implementations
// live in the content store integration; the engine never caches across
// calls and scores each invocation on its own fetched snapshot.
type Fetcher interface {
	FetchEntries(ctx context.Context, contentType string, limit int) ([]Entry, error)
}

// DefaultFetchLimit bounds the candidate set pulled from the content store
// for a single search call.
const DefaultFetchLimit = 100

// Engine runs the two retrieval variants over a Fetcher.
type Engine struct {
	fetcher    Fetcher
	fetchLimit int
	logger     *zap.Logger
}

func NewEngine(fetcher Fetcher, fetchLimit int, logger *zap.Logger) *Engine {
	if fetchLimit <= 0 {
		fetchLimit = DefaultFetchLimit
	}
	return &Engine{
		fetcher:    fetcher,
		fetchLimit: fetchLimit,
		logger:     logger,
	}
}

// Search is the plain variant: no query enhancement, no fuzzy matching, no
// phrase bonus; per-term weights additionally scan every string field of the
// entry. Fetch failures propagate to the caller.
func (e *Engine) Search(ctx context.Context, contentType, query string, maxResults int) ([]Result, error) {
	entries, err := e.fetcher.FetchEntries(ctx, contentType, e.fetchLimit)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return Head(entries, maxResults), nil
	}

	results := Rank(entries, func(entry Entry) (int, float64) {
		return Score(entry, query, query, PlainWeights)
	}, maxResults)

	ctxzap.Debug(ctx, "plain search completed",
		zap.String("content_type", contentType),
		zap.Int("candidates", len(entries)),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// IntelligentSearch is the synonym-enhanced variant: the query is expanded
// with domain synonyms, terms earn a fuzzy bonus, and an exact occurrence of
// the original query earns a fixed phrase bonus. A fetch failure degrades to
// plain search with the same parameters instead of propagating; the original
// failure is logged.
func (e *Engine) IntelligentSearch(ctx context.Context, contentType, query string, maxResults int) ([]Result, error) {
	entries, err := e.fetcher.FetchEntries(ctx, contentType, e.fetchLimit)
	if err != nil {
		ctxzap.Warn(ctx, "enhanced search failed, degrading to plain search",
			zap.String("content_type", contentType),
			zap.String("query", query),
			zap.Error(err),
		)
		return e.Search(ctx, contentType, query, maxResults)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	if strings.TrimSpace(query) == "" {
		return Head(entries, maxResults), nil
	}

	enhanced := Enhance(query)
	results := Rank(entries, func(entry Entry) (int, float64) {
		return Score(entry, query, enhanced, IntelligentWeights)
	}, maxResults)

	ctxzap.Debug(ctx, "intelligent search completed",
		zap.String("content_type", contentType),
		zap.String("enhanced_query", enhanced),
		zap.Int("candidates", len(entries)),
		zap.Int("results", len(results)),
	)

	return results, nil
}
