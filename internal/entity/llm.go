package entity

// Wire types of the LLM completion service.

type LLMMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type LLMChatRequest struct {
	Model    string       `json:"model,omitempty"`
	System   string       `json:"system,omitempty"`
	Messages []LLMMessage `json:"messages"`
}

type LLMChatResponse struct {
	Result string `json:"result"`
}
