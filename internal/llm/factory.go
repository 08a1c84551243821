package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// NewChatModel creates the Eino chat model for a provider. Cloudflare
// Workers AI is reached through its OpenAI-compatible endpoint.
func NewChatModel(ctx context.Context, cfg ProviderConfig) (model.BaseChatModel, error) {
	modelName := cfg.modelOrDefault()

	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: openai requires an API key", ErrMissingCredentials)
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:   modelName,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
		})

	case ProviderCloudflare:
		if cfg.APIKey == "" || cfg.resolvedBaseURL() == "" {
			return nil, fmt.Errorf("%w: cloudflare requires an API token and account id", ErrMissingCredentials)
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:   modelName,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.resolvedBaseURL(),
		})

	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: anthropic requires an API key", ErrMissingCredentials)
		}
		claudeCfg := &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     modelName,
			MaxTokens: CompressMaxTokens,
		}
		if cfg.BaseURL != "" {
			baseURL := cfg.BaseURL
			claudeCfg.BaseURL = &baseURL
		}
		return claude.NewChatModel(ctx, claudeCfg)

	case ProviderOllama:
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: cfg.resolvedBaseURL(),
			Model:   modelName,
		})

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
	}
}

// NewProviderBackend builds the Backend for a single provider.
func NewProviderBackend(ctx context.Context, cfg ProviderConfig, observer Observer) (Backend, error) {
	if cfg.Provider == ProviderMock {
		return NewMockBackend(), nil
	}
	chat, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewChatBackend(cfg.Provider, cfg.modelOrDefault(), chat, observer), nil
}

// NewBackend builds the configured primary provider followed by its
// fallbacks. A single provider is returned as-is; several are chained.
func NewBackend(ctx context.Context, cfg Config, observer Observer) (Backend, error) {
	primary, err := NewProviderBackend(ctx, cfg.Primary, observer)
	if err != nil {
		return nil, fmt.Errorf("building %s backend: %w", cfg.Primary.Provider, err)
	}
	if len(cfg.Fallbacks) == 0 {
		return primary, nil
	}

	chain := []NamedBackend{{Provider: cfg.Primary.Provider, Backend: primary}}
	for _, fb := range cfg.Fallbacks {
		b, err := NewProviderBackend(ctx, fb, observer)
		if err != nil {
			return nil, fmt.Errorf("building %s fallback: %w", fb.Provider, err)
		}
		chain = append(chain, NamedBackend{Provider: fb.Provider, Backend: b})
	}
	return NewFallbackBackend(chain...), nil
}
