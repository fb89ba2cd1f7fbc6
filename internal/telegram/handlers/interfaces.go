package handlers

import (
	"context"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
)

// ChatUsecase answers user questions through the configured bot
type ChatUsecase interface {
	Ask(ctx context.Context, botID string, req *entity.ChatRequest) (*entity.ChatResponse, error)
}
