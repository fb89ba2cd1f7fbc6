package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// BotUsecase implements bot management business logic
type BotUsecase struct {
	botRepo repository.BotRepository
	logger  *zap.Logger
}

// NewUsecase creates a new bot use case
func NewUsecase(botRepo repository.BotRepository, logger *zap.Logger) *BotUsecase {
	return &BotUsecase{
		botRepo: botRepo,
		logger:  logger,
	}
}

// CreateBot creates a new bot definition
func (uc *BotUsecase) CreateBot(ctx context.Context, req *entity.CreateBotRequest) (*entity.Bot, error) {
	if err := validateBotFields(req.Name, req.ContentType); err != nil {
		return nil, err
	}

	bot := entity.Bot{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		ContentType:  strings.TrimSpace(req.ContentType),
		SystemPrompt: req.SystemPrompt,
		Model:        req.Model,
	}

	created, err := uc.botRepo.Create(ctx, bot)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	ctxzap.Info(ctx, "bot created",
		zap.String("bot_id", created.ID),
		zap.String("name", created.Name),
		zap.String("content_type", created.ContentType),
	)

	return created, nil
}

// GetBot retrieves a bot by ID
func (uc *BotUsecase) GetBot(ctx context.Context, id string) (*entity.Bot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid bot ID format", entity.ErrInvalidParameter)
	}

	bot, err := uc.botRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bot: %w", err)
	}

	return bot, nil
}

// ListBots retrieves bots with pagination
func (uc *BotUsecase) ListBots(ctx context.Context, req *entity.ListBotsRequest) ([]*entity.Bot, error) {
	bots, err := uc.botRepo.List(ctx, req.Skip, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list bots: %w", err)
	}

	return bots, nil
}

// UpdateBot applies the non-nil fields of the request to an existing bot
func (uc *BotUsecase) UpdateBot(ctx context.Context, id string, req *entity.UpdateBotRequest) (*entity.Bot, error) {
	bot, err := uc.GetBot(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		bot.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		bot.Description = *req.Description
	}
	if req.ContentType != nil {
		bot.ContentType = strings.TrimSpace(*req.ContentType)
	}
	if req.SystemPrompt != nil {
		bot.SystemPrompt = *req.SystemPrompt
	}
	if req.Model != nil {
		bot.Model = *req.Model
	}

	if err := validateBotFields(bot.Name, bot.ContentType); err != nil {
		return nil, err
	}

	updated, err := uc.botRepo.Update(ctx, *bot)
	if err != nil {
		return nil, fmt.Errorf("update bot: %w", err)
	}

	ctxzap.Info(ctx, "bot updated", zap.String("bot_id", updated.ID))

	return updated, nil
}

// DeleteBot removes a bot definition
func (uc *BotUsecase) DeleteBot(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid bot ID format", entity.ErrInvalidParameter)
	}

	if err := uc.botRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete bot: %w", err)
	}

	ctxzap.Info(ctx, "bot deleted", zap.String("bot_id", id))

	return nil
}

func validateBotFields(name, contentType string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}
	if strings.TrimSpace(contentType) == "" {
		return fmt.Errorf("%w: content_type", entity.ErrMissingField)
	}
	return nil
}
