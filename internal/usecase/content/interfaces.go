package content

import (
	"context"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
)

// ContentStore covers both sides of the external content store: delivery for
// listing and management for the bulk import pipeline.
type ContentStore interface {
	FetchEntries(ctx context.Context, contentType string, limit int) ([]search.Entry, error)
	CreateEntry(ctx context.Context, contentType string, fields map[string]any) (string, error)
}

// SearchEngine ranks entries for the public search endpoint.
type SearchEngine interface {
	Search(ctx context.Context, contentType, query string, maxResults int) ([]search.Result, error)
}
