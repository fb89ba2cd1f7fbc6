package chat

import (
	"context"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
)

// SearchEngine retrieves relevant content entries for a bot question.
type SearchEngine interface {
	IntelligentSearch(ctx context.Context, contentType, query string, maxResults int) ([]search.Result, error)
}

// LLMConnector produces the completion for an assembled prompt.
type LLMConnector interface {
	Complete(ctx context.Context, req *entity.LLMChatRequest) (string, error)
}
