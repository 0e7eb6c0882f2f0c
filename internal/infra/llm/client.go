// Package llm talks to the configured chat model and turns its replies into
// schema-validated structured values.
package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
	"aechlegal/internal/infra/telemetry"
)

// Completer returns the raw text reply for a system and user message pair.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type modelFactory func(ctx context.Context, config domain.LLMConfig) (model.BaseChatModel, error)

// Client initializes its chat model on first use so commands that never call
// the LLM do not need credentials.
type Client struct {
	config   domain.LLMConfig
	logger   *zap.Logger
	newModel modelFactory

	mu    sync.Mutex
	model model.BaseChatModel
}

func NewClient(config domain.LLMConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config:   config,
		logger:   logger.Named("llm"),
		newModel: initializeModel,
	}
}

func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	const op = "llm.Complete"

	chat, err := c.chatModel(ctx)
	if err != nil {
		code := domain.CodeExternalService
		if errors.Is(err, domain.ErrUnsupportedModel) {
			return "", domain.E(code, op, err.Error(), err)
		}
		return "", domain.E(code, op, err.Error(), errors.Join(domain.ErrGeneration, err))
	}

	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}

	started := time.Now()
	response, err := chat.Generate(ctx, messages)
	if err != nil {
		return "", domain.E(domain.CodeExternalService, op, fmt.Sprintf("LLM generate: %v", err), errors.Join(domain.ErrGeneration, err))
	}
	if response == nil {
		return "", domain.E(domain.CodeMalformedUpstream, op, "LLM returned no message", domain.ErrMalformedOutput)
	}
	c.observe(response, time.Since(started))
	return response.Content, nil
}

func (c *Client) chatModel(ctx context.Context) (model.BaseChatModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.model != nil {
		return c.model, nil
	}
	chat, err := c.newModel(ctx, c.config)
	if err != nil {
		return nil, err
	}
	c.model = chat
	return chat, nil
}

func (c *Client) observe(response *schema.Message, elapsed time.Duration) {
	fields := []zap.Field{
		telemetry.EventField(telemetry.EventLLMGenerate),
		telemetry.ModelField(c.config.Model),
		telemetry.DurationField(elapsed),
	}
	if response.ResponseMeta != nil && response.ResponseMeta.Usage != nil {
		fields = append(fields, zap.Int("total_tokens", response.ResponseMeta.Usage.TotalTokens))
	}
	c.logger.Debug("llm generate", fields...)
}
