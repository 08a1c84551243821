package llm

import (
	"fmt"
	"strings"
	"time"
)

// Provider identifies an AI completion provider.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderCloudflare Provider = "cloudflare"
	ProviderOllama     Provider = "ollama"
	ProviderMock       Provider = "mock"
)

// DefaultOllamaURL is where a local Ollama server listens by default.
const DefaultOllamaURL = "http://localhost:11434"

// cloudflareBaseURL is the OpenAI-compatible Workers AI endpoint template.
const cloudflareBaseURL = "https://api.cloudflare.com/client/v4/accounts/%s/ai/v1"

// TaskType identifies the kind of completion being requested.
type TaskType string

const TaskCompress TaskType = "compress"

// Compression favours consistent structure over creative phrasing.
const (
	CompressTemperature = 0.3
	CompressMaxTokens   = 1024
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
}

// ProviderConfig describes how to reach one provider.
type ProviderConfig struct {
	Provider  Provider
	Model     string
	APIKey    string
	BaseURL   string
	AccountID string
}

// Config holds all configuration for the AI subsystem.
type Config struct {
	Primary   ProviderConfig
	Fallbacks []ProviderConfig
	LogCalls  bool
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config using the mock provider, so the app works
// without any API key.
func DefaultConfig() Config {
	return Config{
		Primary:   ProviderConfig{Provider: ProviderMock, Model: DefaultModel(ProviderMock)},
		TimeoutMs: 30000,
		Tasks: map[TaskType]TaskConfig{
			TaskCompress: {Temperature: CompressTemperature, MaxTokens: CompressMaxTokens},
		},
	}
}

// RequestTimeout is the bound callers should put on a single backend call.
// The compression engine itself never enforces it.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutMs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Task returns the generation parameters for a task type, falling back to
// the compression defaults.
func (c Config) Task(task TaskType) TaskConfig {
	if tc, ok := c.Tasks[task]; ok {
		return tc
	}
	return TaskConfig{Temperature: CompressTemperature, MaxTokens: CompressMaxTokens}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case ProviderCloudflare:
		return "@cf/meta/llama-3.1-8b-instruct"
	case ProviderOllama:
		return "llama3.2"
	case ProviderMock:
		return "mock"
	default:
		return ""
	}
}

// ParseProvider checks that p names a supported provider.
func ParseProvider(p string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(p))) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderCloudflare:
		return ProviderCloudflare, nil
	case ProviderOllama:
		return ProviderOllama, nil
	case ProviderMock:
		return ProviderMock, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: openai, anthropic, cloudflare, ollama, mock)", ErrUnsupportedProvider, p)
	}
}

// resolvedBaseURL returns the endpoint a provider should talk to.
func (p ProviderConfig) resolvedBaseURL() string {
	if p.BaseURL != "" {
		return p.BaseURL
	}
	switch p.Provider {
	case ProviderOllama:
		return DefaultOllamaURL
	case ProviderCloudflare:
		if p.AccountID == "" {
			return ""
		}
		return fmt.Sprintf(cloudflareBaseURL, p.AccountID)
	default:
		return ""
	}
}

func (p ProviderConfig) modelOrDefault() string {
	if p.Model != "" {
		return p.Model
	}
	return DefaultModel(p.Provider)
}
