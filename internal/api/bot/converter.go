package bot

import (
	"time"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
)

// toBotDetail converts Bot entity to BotDetail DTO
func toBotDetail(b *entity.Bot) *entity.BotDetail {
	return &entity.BotDetail{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		ContentType:  b.ContentType,
		SystemPrompt: b.SystemPrompt,
		Model:        b.Model,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
