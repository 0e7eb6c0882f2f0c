package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"aechlegal/internal/domain"
)

// ParseModel splits "<provider>:<model>". A bare model name implies openai.
func ParseModel(spec string) (provider, name string) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		spec = domain.DefaultModel
	}
	provider, name, found := strings.Cut(spec, ":")
	if !found {
		return "openai", provider
	}
	return strings.ToLower(strings.TrimSpace(provider)), strings.TrimSpace(name)
}

// initializeModel creates the chat model based on configuration.
func initializeModel(ctx context.Context, config domain.LLMConfig) (model.BaseChatModel, error) {
	provider, name := ParseModel(config.Model)
	if name == "" {
		return nil, fmt.Errorf("model name is required in %q", config.Model)
	}

	switch provider {
	case "openai":
		envVar := strings.TrimSpace(config.APIKeyEnvVar)
		if envVar == "" {
			envVar = domain.DefaultAPIKeyEnvVar
		}
		apiKey := os.Getenv(envVar)
		if apiKey == "" {
			return nil, fmt.Errorf("API key not found in env var %s", envVar)
		}
		cfg := &openai.ChatModelConfig{
			Model:  name,
			APIKey: apiKey,
		}
		if config.BaseURL != "" {
			cfg.BaseURL = config.BaseURL
		}
		if config.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(config.TimeoutSeconds) * time.Second
		}
		return openai.NewChatModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedModel, provider)
	}
}
