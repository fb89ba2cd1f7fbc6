package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is a stand-in completion service for local runs.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// Complete echoes the last user message and the amount of retrieved context,
// which is enough to exercise the chat flow end to end.
func (m *MockConnector) Complete(ctx context.Context, req *entity.LLMChatRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] requesting completion")

	lastUser := ""
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == string(entity.RoleUser) {
			lastUser = req.Messages[i].Content
			break
		}
	}

	contextLines := 0
	if req.System != "" {
		contextLines = strings.Count(req.System, "Title:")
	}

	return fmt.Sprintf("Mock answer to %q (grounded on %d content entries).", lastUser, contextLines), nil
}
