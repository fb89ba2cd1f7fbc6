package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/config"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/integration/common"
	pkghttp "github.com/Suruthi-CS/Tech-Surf-ChatBot/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, cfg.Retry.ToRetryOptions(), logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends the prompt to the completion service and returns the answer text.
func (c *Connector) Complete(ctx context.Context, req *entity.LLMChatRequest) (string, error) {
	ctxzap.Info(ctx, "requesting completion from LLM service",
		zap.Int("message_count", len(req.Messages)),
	)

	if req.Model == "" {
		req.Model = c.config.DefaultModel
	}

	var resp entity.LLMChatResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatEndpoint, req, &resp)
	if err != nil {
		return "", fmt.Errorf("llm completion failed: %w", err)
	}

	if resp.Result == "" {
		return "", entity.ErrEmptyCompletion
	}

	ctxzap.Info(ctx, "completion received", zap.Int("result_length", len(resp.Result)))

	return resp.Result, nil
}
