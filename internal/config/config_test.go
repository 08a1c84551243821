package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/braindump/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears provider credentials so
// the developer's own environment cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "CLOUDFLARE_API_TOKEN", "CLOUDFLARE_ACCOUNT_ID",
		"BRAINDUMP_LLM_PROVIDER", "BRAINDUMP_LLM_API_KEY", "BRAINDUMP_LLM_FALLBACK",
		"BRAINDUMP_DB_PATH", "BRAINDUMP_SCHEDULE_START_TIME", "BRAINDUMP_LLM_REQUEST_TIMEOUT",
		"BRAINDUMP_LLM_TEMPERATURE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(Options{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".braindump", "braindump.db"), cfg.DB.Path)
	assert.Equal(t, "127.0.0.1:8787", cfg.Server.Addr)
	assert.Equal(t, 15, cfg.Schedule.BreakDuration)
	assert.Equal(t, 3, cfg.Schedule.MaxConsecutiveTasks)
	assert.Equal(t, "09:00", cfg.Schedule.StartTime)
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout)

	lc := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderMock, lc.Primary.Provider)
	assert.Empty(t, lc.Fallbacks)
	assert.Equal(t, 30000, lc.TimeoutMs)
	assert.Equal(t, llm.TaskConfig{Temperature: llm.CompressTemperature, MaxTokens: llm.CompressMaxTokens}, lc.Task(llm.TaskCompress))
}

func TestLoad_ConfigFileAndEnvOverride(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db:
  path: /tmp/from-file.db
schedule:
  start_time: "08:30"
  break_duration: 10
llm:
  provider: ollama
  model: mistral
  temperature: 0.1
  max_tokens: 512
`), 0o644))

	t.Setenv("BRAINDUMP_SCHEDULE_START_TIME", "07:45")

	cfg, err := Load(Options{ConfigFile: path, EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-file.db", cfg.DB.Path)
	assert.Equal(t, "07:45", cfg.Schedule.StartTime, "env beats file")
	assert.Equal(t, 10, cfg.Schedule.BreakDuration)

	lc := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderOllama, lc.Primary.Provider)
	assert.Equal(t, "mistral", lc.Primary.Model)
	assert.InDelta(t, 0.1, lc.Task(llm.TaskCompress).Temperature, 1e-9)
	assert.Equal(t, 512, lc.Task(llm.TaskCompress).MaxTokens)

	prefs := cfg.Preferences()
	assert.Equal(t, "07:45", prefs.StartTime())
	assert.Equal(t, 10, prefs.BreakMinutes())
}

func TestLoad_EnvFile(t *testing.T) {
	isolate(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("ANTHROPIC_API_KEY=sk-ant-test\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ANTHROPIC_API_KEY") })

	cfg, err := Load(Options{EnvFile: envFile})
	require.NoError(t, err)

	lc := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderAnthropic, lc.Primary.Provider)
	assert.Equal(t, "sk-ant-test", lc.Primary.APIKey)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown provider", map[string]string{"BRAINDUMP_LLM_PROVIDER": "gemini"}},
		{"bad start time", map[string]string{"BRAINDUMP_SCHEDULE_START_TIME": "9am"}},
		{"unknown fallback", map[string]string{"BRAINDUMP_LLM_FALLBACK": "openai,bard"}},
		{"temperature out of range", map[string]string{"BRAINDUMP_LLM_TEMPERATURE": "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(Options{EnvFile: noEnvFile(t)})
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	isolate(t)
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"), EnvFile: noEnvFile(t)})
	assert.Error(t, err)
}

func TestLLMConfig_DetectionOrderAndFallbacks(t *testing.T) {
	isolate(t)
	t.Setenv("CLOUDFLARE_API_TOKEN", "cf-token")
	t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acct")
	t.Setenv("ANTHROPIC_API_KEY", "ant")
	t.Setenv("BRAINDUMP_LLM_FALLBACK", "anthropic,cloudflare,mock")

	cfg, err := Load(Options{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	lc := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderAnthropic, lc.Primary.Provider)
	require.Len(t, lc.Fallbacks, 2, "the primary is not repeated as a fallback")
	assert.Equal(t, llm.ProviderCloudflare, lc.Fallbacks[0].Provider)
	assert.Equal(t, "cf-token", lc.Fallbacks[0].APIKey)
	assert.Equal(t, "acct", lc.Fallbacks[0].AccountID)
	assert.Equal(t, llm.ProviderMock, lc.Fallbacks[1].Provider)
}

func TestLLMConfig_CloudflareNeedsAccount(t *testing.T) {
	isolate(t)
	t.Setenv("CLOUDFLARE_API_TOKEN", "cf-token")

	cfg, err := Load(Options{EnvFile: noEnvFile(t)})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderMock, cfg.LLMConfig().Primary.Provider)
}
