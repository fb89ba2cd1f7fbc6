package entity

type CreateBotRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContentType  string `json:"content_type"`
	SystemPrompt string `json:"system_prompt"`
	Model        string `json:"model"`
}

type UpdateBotRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	ContentType  *string `json:"content_type,omitempty"`
	SystemPrompt *string `json:"system_prompt,omitempty"`
	Model        *string `json:"model,omitempty"`
}

type BotDetail struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContentType  string `json:"content_type"`
	SystemPrompt string `json:"system_prompt"`
	Model        string `json:"model"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type ListBotsRequest struct {
	Skip  int
	Limit int
}

func (lb *ListBotsRequest) Normalize() {
	if lb.Limit <= 0 {
		lb.Limit = 10
	}

	lb.Limit = min(lb.Limit, 100)
}

type ListBotsResponse struct {
	Bots []*BotDetail `json:"bots"`
}

type DeleteBotResponse struct {
	Status string `json:"status"`
}
