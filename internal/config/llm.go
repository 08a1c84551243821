package config

import (
	"os"
	"strings"

	"github.com/alexanderramin/braindump/internal/llm"
)

// providerEnv returns the conventional credentials for a provider from the
// process environment.
func providerEnv(p llm.Provider) (apiKey, accountID string) {
	switch p {
	case llm.ProviderOpenAI:
		return env("OPENAI_API_KEY"), ""
	case llm.ProviderAnthropic:
		return env("ANTHROPIC_API_KEY"), ""
	case llm.ProviderCloudflare:
		return env("CLOUDFLARE_API_TOKEN"), env("CLOUDFLARE_ACCOUNT_ID")
	default:
		return "", ""
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// detectProvider picks the first provider whose credentials are present,
// falling back to the mock provider.
func detectProvider() llm.Provider {
	for _, p := range []llm.Provider{llm.ProviderOpenAI, llm.ProviderAnthropic, llm.ProviderCloudflare} {
		key, account := providerEnv(p)
		if key == "" {
			continue
		}
		if p == llm.ProviderCloudflare && account == "" {
			continue
		}
		return p
	}
	return llm.ProviderMock
}

// LLMConfig resolves the AI backend chain. Explicit llm.* settings apply
// to the primary provider; fallbacks take credentials from the
// environment only.
func (c *Config) LLMConfig() llm.Config {
	out := llm.DefaultConfig()
	out.LogCalls = c.LLM.LogCalls
	out.TimeoutMs = int(c.LLM.RequestTimeout.Milliseconds())
	out.Tasks[llm.TaskCompress] = llm.TaskConfig{Temperature: c.LLM.Temperature, MaxTokens: c.LLM.MaxTokens}

	primary := llm.Provider(c.LLM.Provider)
	if primary == "" {
		primary = detectProvider()
	}
	key, account := providerEnv(primary)
	if c.LLM.APIKey != "" {
		key = c.LLM.APIKey
	}
	if c.LLM.AccountID != "" {
		account = c.LLM.AccountID
	}
	out.Primary = llm.ProviderConfig{
		Provider:  primary,
		Model:     c.LLM.Model,
		APIKey:    key,
		BaseURL:   c.LLM.BaseURL,
		AccountID: account,
	}

	for _, name := range c.LLM.Fallback {
		p := llm.Provider(strings.ToLower(strings.TrimSpace(name)))
		if p == primary {
			continue
		}
		key, account := providerEnv(p)
		out.Fallbacks = append(out.Fallbacks, llm.ProviderConfig{Provider: p, APIKey: key, AccountID: account})
	}
	return out
}
