package bot

import (
	"context"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
)

type BotUsecase interface {
	CreateBot(ctx context.Context, req *entity.CreateBotRequest) (*entity.Bot, error)
	GetBot(ctx context.Context, id string) (*entity.Bot, error)
	ListBots(ctx context.Context, req *entity.ListBotsRequest) ([]*entity.Bot, error)
	UpdateBot(ctx context.Context, id string, req *entity.UpdateBotRequest) (*entity.Bot, error)
	DeleteBot(ctx context.Context, id string) error
}
