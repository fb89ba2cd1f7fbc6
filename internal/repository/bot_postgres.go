package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BotRepository defines the interface for bot persistence
type BotRepository interface {
	Create(ctx context.Context, bot entity.Bot) (*entity.Bot, error)
	Get(ctx context.Context, id string) (*entity.Bot, error)
	List(ctx context.Context, skip, limit int) ([]*entity.Bot, error)
	Update(ctx context.Context, bot entity.Bot) (*entity.Bot, error)
	Delete(ctx context.Context, id string) error
}

var _ BotRepository = &BotPostgres{}

// BotPostgres implements BotRepository using PostgreSQL
type BotPostgres struct {
	db *pgxpool.Pool
}

func NewBotPostgres(db *pgxpool.Pool) *BotPostgres {
	return &BotPostgres{db: db}
}

const botColumns = "id, name, description, content_type, system_prompt, model, created_at, updated_at"

func (r *BotPostgres) Create(ctx context.Context, bot entity.Bot) (*entity.Bot, error) {
	botID, err := uuid.Parse(bot.ID)
	if err != nil {
		return nil, fmt.Errorf("parse bot ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO bots (id, name, description, content_type, system_prompt, model)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+botColumns,
		pgtype.UUID{Bytes: botID, Valid: true},
		bot.Name,
		pgtype.Text{String: bot.Description, Valid: bot.Description != ""},
		bot.ContentType,
		bot.SystemPrompt,
		bot.Model,
	)

	created, err := scanBot(row)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return created, nil
}

func (r *BotPostgres) Get(ctx context.Context, id string) (*entity.Bot, error) {
	botID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse bot ID: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+botColumns+` FROM bots WHERE id = $1`,
		pgtype.UUID{Bytes: botID, Valid: true},
	)

	bot, err := scanBot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrBotNotFound
		}
		return nil, fmt.Errorf("get bot: %w", err)
	}

	return bot, nil
}

func (r *BotPostgres) List(ctx context.Context, skip, limit int) ([]*entity.Bot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+botColumns+` FROM bots ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		int32(limit), int32(skip),
	)
	if err != nil {
		return nil, fmt.Errorf("list bots: %w", err)
	}
	defer rows.Close()

	bots := make([]*entity.Bot, 0)
	for rows.Next() {
		bot, err := scanBot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bot: %w", err)
		}
		bots = append(bots, bot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bots: %w", err)
	}

	return bots, nil
}

func (r *BotPostgres) Update(ctx context.Context, bot entity.Bot) (*entity.Bot, error) {
	botID, err := uuid.Parse(bot.ID)
	if err != nil {
		return nil, fmt.Errorf("parse bot ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		UPDATE bots
		SET name = $2, description = $3, content_type = $4, system_prompt = $5, model = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+botColumns,
		pgtype.UUID{Bytes: botID, Valid: true},
		bot.Name,
		pgtype.Text{String: bot.Description, Valid: bot.Description != ""},
		bot.ContentType,
		bot.SystemPrompt,
		bot.Model,
	)

	updated, err := scanBot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrBotNotFound
		}
		return nil, fmt.Errorf("update bot: %w", err)
	}

	return updated, nil
}

func (r *BotPostgres) Delete(ctx context.Context, id string) error {
	botID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("parse bot ID: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM bots WHERE id = $1`,
		pgtype.UUID{Bytes: botID, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("delete bot: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBotNotFound
	}

	return nil
}

func scanBot(row pgx.Row) (*entity.Bot, error) {
	var (
		id          pgtype.UUID
		description pgtype.Text
		bot         entity.Bot
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(&id, &bot.Name, &description, &bot.ContentType, &bot.SystemPrompt, &bot.Model, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	bot.ID = uuid.UUID(id.Bytes).String()
	bot.Description = description.String
	bot.CreatedAt = createdAt.Time
	bot.UpdatedAt = updatedAt.Time

	return &bot, nil
}
