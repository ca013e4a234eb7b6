package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"
)

type Config struct {
	Platform           string
	DiscordBotToken    string
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	RedisURL           string
	MessagesFile       string
	Log                LogConfig
	Dispatch           DispatchConfig
	SummaryEnabled     bool
}

type LogConfig struct {
	Level  string
	Format string
}

type DispatchConfig struct {
	Timeout     time.Duration
	Concurrency int
}

// Load reads configuration from environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		Platform:           strings.ToLower(getEnv("PLATFORM", PlatformDiscord)),
		DiscordBotToken:    getEnv("DISCORD_BOT_TOKEN", ""),
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./standup.db"),
		Port:               getEnv("PORT", "3000"),
		RedisURL:           getEnv("REDIS_URL", ""),
		MessagesFile:       getEnv("MESSAGES_FILE", ""),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	var err error
	if cfg.Dispatch.Timeout, err = getDuration("DISPATCH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Dispatch.Concurrency, err = getInt("DISPATCH_CONCURRENCY", 8); err != nil {
		return nil, err
	}
	if cfg.SummaryEnabled, err = getBool("SUMMARY_ENABLED", false); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Platform {
	case PlatformDiscord:
		if c.DiscordBotToken == "" {
			return fmt.Errorf("DISCORD_BOT_TOKEN is required")
		}
	case PlatformSlack:
		if c.SlackBotToken == "" {
			return fmt.Errorf("SLACK_BOT_TOKEN is required")
		}
		if c.SlackSigningSecret == "" {
			return fmt.Errorf("SLACK_SIGNING_SECRET is required")
		}
	default:
		return fmt.Errorf("PLATFORM must be %q or %q, got %q", PlatformDiscord, PlatformSlack, c.Platform)
	}

	if c.Dispatch.Timeout <= 0 {
		return fmt.Errorf("DISPATCH_TIMEOUT must be positive")
	}
	if c.Dispatch.Concurrency < 1 {
		return fmt.Errorf("DISPATCH_CONCURRENCY must be at least 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
