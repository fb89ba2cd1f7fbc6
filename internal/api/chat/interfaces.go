package chat

import (
	"context"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
)

type ChatUsecase interface {
	Ask(ctx context.Context, botID string, req *entity.ChatRequest) (*entity.ChatResponse, error)
	Transcript(ctx context.Context, conversationID string) (string, error)
}
