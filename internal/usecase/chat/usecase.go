package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ChatUsecase answers user questions on behalf of a bot: it retrieves
// relevant content entries, assembles the prompt and calls the completion
// service.
type ChatUsecase struct {
	botRepo repository.BotRepository
	engine  SearchEngine
	llm     LLMConnector
	history *HistoryStore
	logger  *zap.Logger
}

// NewUsecase creates a new chat use case
func NewUsecase(
	botRepo repository.BotRepository,
	engine SearchEngine,
	llm LLMConnector,
	history *HistoryStore,
	logger *zap.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		botRepo: botRepo,
		engine:  engine,
		llm:     llm,
		history: history,
		logger:  logger,
	}
}

// Ask answers a single user message. A fresh conversation ID is minted when
// the request does not carry one.
func (uc *ChatUsecase) Ask(ctx context.Context, botID string, req *entity.ChatRequest) (*entity.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message", entity.ErrMissingField)
	}

	bot, err := uc.botRepo.Get(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("get bot: %w", err)
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	ctx = ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(
		zap.String("bot_id", bot.ID),
		zap.String("conversation_id", conversationID),
	))

	// Retrieval failures inside intelligent search degrade to plain search;
	// an error here means even the fallback could not fetch candidates. The
	// bot still answers, just without content context.
	results, err := uc.engine.IntelligentSearch(ctx, bot.ContentType, req.Message, contextResults)
	if err != nil {
		ctxzap.Warn(ctx, "content retrieval failed, answering without context", zap.Error(err))
		results = nil
	}

	contextBlock := buildContextBlock(results)

	messages := historyToLLM(uc.history.Get(conversationID))
	messages = append(messages, entity.LLMMessage{
		Role:    string(entity.RoleUser),
		Content: req.Message,
	})

	answer, err := uc.llm.Complete(ctx, &entity.LLMChatRequest{
		Model:    bot.Model,
		System:   buildSystemPrompt(bot, contextBlock),
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("complete chat: %w", err)
	}

	now := time.Now()
	uc.history.Append(conversationID, entity.ChatMessage{Role: entity.RoleUser, Content: req.Message, SentAt: now})
	uc.history.Append(conversationID, entity.ChatMessage{Role: entity.RoleAssistant, Content: answer, SentAt: now})

	ctxzap.Info(ctx, "chat answered",
		zap.Int("context_entries", len(results)),
		zap.Int("answer_length", len(answer)),
	)

	sources := make([]entity.SourceRef, 0, len(results))
	for _, r := range results {
		sources = append(sources, entity.SourceRef{
			Title:     r.Entry.Title(),
			Score:     r.Score,
			Relevance: r.Relevance,
		})
	}

	return &entity.ChatResponse{
		ConversationID: conversationID,
		Answer:         answer,
		Sources:        sources,
	}, nil
}

// Transcript returns the rendered transcript of a live conversation.
func (uc *ChatUsecase) Transcript(ctx context.Context, conversationID string) (string, error) {
	if !uc.history.Exists(conversationID) {
		return "", entity.ErrConversationNotFound
	}

	return renderTranscript(uc.history.Get(conversationID)), nil
}

func historyToLLM(history []entity.ChatMessage) []entity.LLMMessage {
	messages := make([]entity.LLMMessage, 0, len(history)+1)
	for _, msg := range history {
		messages = append(messages, entity.LLMMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return messages
}
