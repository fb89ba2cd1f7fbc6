package entity

type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// SourceRef points at a content entry that backed an answer.
type SourceRef struct {
	Title     string  `json:"title"`
	Score     int     `json:"score"`
	Relevance float64 `json:"relevance"`
}

type ChatResponse struct {
	ConversationID string      `json:"conversation_id"`
	Answer         string      `json:"answer"`
	Sources        []SourceRef `json:"sources,omitempty"`
}
