package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	welcomeText = "Hi! Ask me anything and I will answer using the knowledge base."

	helpText = `Bot commands:

/start - Start a conversation
/help - Show this help

Just type a question to get an answer.`
)

// MessageHandler relays chat messages to the chat use case. Each Telegram
// chat maps to one conversation, so follow-up questions keep their history.
type MessageHandler struct {
	api    *tgbotapi.BotAPI
	chatUC ChatUsecase
	botID  string
	logger *zap.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(api *tgbotapi.BotAPI, chatUC ChatUsecase, botID string, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		api:    api,
		chatUC: chatUC,
		botID:  botID,
		logger: logger,
	}
}

// Handle processes a single incoming message
func (h *MessageHandler) Handle(ctx context.Context, message *tgbotapi.Message) {
	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	text := strings.TrimSpace(message.Text)
	if text == "" {
		h.send(ctx, message.Chat.ID, "Please send a text question.")
		return
	}

	chatID := message.Chat.ID

	ctxzap.Info(ctx, "relaying telegram question",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", message.From.ID),
	)

	// Show the typing indicator while the answer is being prepared
	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := h.api.Request(typing); err != nil {
		ctxzap.Debug(ctx, "failed to send typing action", zap.Error(err))
	}

	resp, err := h.chatUC.Ask(ctx, h.botID, &entity.ChatRequest{
		Message:        text,
		ConversationID: conversationID(chatID),
	})
	if err != nil {
		ctxzap.Error(ctx, "chat usecase failed",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		h.send(ctx, chatID, "Something went wrong. Please try again.")
		return
	}

	h.send(ctx, chatID, resp.Answer)
}

// handleCommand handles bot commands
func (h *MessageHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		h.send(ctx, message.Chat.ID, welcomeText)
	case "help":
		h.send(ctx, message.Chat.ID, helpText)
	default:
		h.send(ctx, message.Chat.ID, "Unknown command. Use /help")
	}
}

func (h *MessageHandler) send(ctx context.Context, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.api.Send(msg); err != nil {
		ctxzap.Error(ctx, "failed to send telegram message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}

// conversationID pins a Telegram chat to a stable conversation
func conversationID(chatID int64) string {
	return fmt.Sprintf("tg-%d", chatID)
}
