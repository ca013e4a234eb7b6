package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PLATFORM", "DISCORD_BOT_TOKEN", "SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET",
	"DATABASE_PATH", "PORT", "REDIS_URL", "MESSAGES_FILE", "LOG_LEVEL", "LOG_FORMAT",
	"DISPATCH_TIMEOUT", "DISPATCH_CONCURRENCY", "SUMMARY_ENABLED",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "token")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, PlatformDiscord, cfg.Platform)
	assert.Equal(t, "./standup.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10*time.Second, cfg.Dispatch.Timeout)
	assert.Equal(t, 8, cfg.Dispatch.Concurrency)
	assert.False(t, cfg.SummaryEnabled)
}

func TestLoad_Slack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLATFORM", "Slack")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-1")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
	t.Setenv("DISPATCH_TIMEOUT", "3s")
	t.Setenv("DISPATCH_CONCURRENCY", "2")
	t.Setenv("SUMMARY_ENABLED", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, PlatformSlack, cfg.Platform)
	assert.Equal(t, 3*time.Second, cfg.Dispatch.Timeout)
	assert.Equal(t, 2, cfg.Dispatch.Concurrency)
	assert.True(t, cfg.SummaryEnabled)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "Should require discord token",
			env:     map[string]string{},
			wantErr: "DISCORD_BOT_TOKEN is required",
		},
		{
			name:    "Should require slack signing secret",
			env:     map[string]string{"PLATFORM": "slack", "SLACK_BOT_TOKEN": "xoxb"},
			wantErr: "SLACK_SIGNING_SECRET is required",
		},
		{
			name:    "Should reject unknown platform",
			env:     map[string]string{"PLATFORM": "irc"},
			wantErr: "PLATFORM must be",
		},
		{
			name:    "Should reject invalid timeout",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "t", "DISPATCH_TIMEOUT": "soon"},
			wantErr: "DISPATCH_TIMEOUT must be a duration",
		},
		{
			name:    "Should reject zero concurrency",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "t", "DISPATCH_CONCURRENCY": "0"},
			wantErr: "DISPATCH_CONCURRENCY must be at least 1",
		},
		{
			name:    "Should reject invalid bool",
			env:     map[string]string{"DISCORD_BOT_TOKEN": "t", "SUMMARY_ENABLED": "maybe"},
			wantErr: "SUMMARY_ENABLED must be a boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTemplates(t *testing.T) {
	t.Run("should return defaults without file", func(t *testing.T) {
		templates, err := LoadTemplates("")

		require.NoError(t, err)
		assert.Equal(t, message.Default(), templates)
	})

	t.Run("should override only the given texts", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.yaml")
		content := "reminder: \"Ei <@{member}>! Bora pra daily?\"\nsummary:\n  url: https://example.com/standup\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		templates, err := LoadTemplates(path)

		require.NoError(t, err)
		assert.Equal(t, "Ei <@{member}>! Bora pra daily?", templates.Reminder)
		assert.Equal(t, "https://example.com/standup", templates.Summary.URL)
		assert.Equal(t, message.Default().Summary.Title, templates.Summary.Title)
		assert.Equal(t, message.Default().Intro, templates.Intro)
	})

	t.Run("should fail for missing file", func(t *testing.T) {
		_, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("should fail for invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("reminder: [unterminated"), 0o600))

		_, err := LoadTemplates(path)
		assert.Error(t, err)
	})
}
