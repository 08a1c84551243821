// Package config loads settings from an optional YAML file, a .env file and
// BRAINDUMP_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/llm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "BRAINDUMP"
	configName = "config"
	appDirName = ".braindump"
)

var validate = validator.New()

type Config struct {
	DB       DBConfig       `mapstructure:"db"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Server   ServerConfig   `mapstructure:"server"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

type DBConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type LLMConfig struct {
	Provider       string        `mapstructure:"provider" validate:"omitempty,oneof=openai anthropic cloudflare ollama mock"`
	Model          string        `mapstructure:"model"`
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url" validate:"omitempty,url"`
	AccountID      string        `mapstructure:"account_id"`
	Fallback       []string      `mapstructure:"fallback" validate:"dive,oneof=openai anthropic cloudflare ollama mock"`
	LogCalls       bool          `mapstructure:"log_calls"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
	Temperature    float64       `mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxTokens      int           `mapstructure:"max_tokens" validate:"gte=0"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr" validate:"required"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	JWTSecret      string   `mapstructure:"jwt_secret"`
}

type ScheduleConfig struct {
	BreakDuration       int    `mapstructure:"break_duration" validate:"gt=0"`
	MaxConsecutiveTasks int    `mapstructure:"max_consecutive_tasks" validate:"gt=0"`
	StartTime           string `mapstructure:"start_time" validate:"required,datetime=15:04"`
}

// Options control where Load looks.
type Options struct {
	// ConfigFile is an explicit config path. When empty, ~/.braindump is
	// searched and a missing file is not an error.
	ConfigFile string
	// EnvFile is loaded into the process environment when present.
	EnvFile string
}

// DefaultDir is where the database and config file live.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", filepath.Join(DefaultDir(), "braindump.db"))
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.account_id", "")
	v.SetDefault("llm.fallback", []string{})
	v.SetDefault("llm.log_calls", false)
	v.SetDefault("llm.request_timeout", 30*time.Second)
	v.SetDefault("llm.temperature", llm.CompressTemperature)
	v.SetDefault("llm.max_tokens", llm.CompressMaxTokens)
	v.SetDefault("server.addr", "127.0.0.1:8787")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.jwt_secret", "")
	v.SetDefault("schedule.break_duration", domain.DefaultBreakDuration)
	v.SetDefault("schedule.max_consecutive_tasks", domain.DefaultMaxConsecutiveTasks)
	v.SetDefault("schedule.start_time", domain.DefaultStartTime)
}

// Load reads and validates the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// A missing .env is fine.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName(configName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Preferences converts the schedule section into scheduling defaults.
func (c *Config) Preferences() domain.Preferences {
	start := c.Schedule.StartTime
	breakMin := c.Schedule.BreakDuration
	maxConsecutive := c.Schedule.MaxConsecutiveTasks
	return domain.Preferences{
		PreferredStartTime:  &start,
		BreakDuration:       &breakMin,
		MaxConsecutiveTasks: &maxConsecutive,
	}
}
