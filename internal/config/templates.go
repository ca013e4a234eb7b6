package config

import (
	"fmt"
	"os"

	"github.com/diegoclair/standup-bot/internal/domain/message"
	"gopkg.in/yaml.v3"
)

// LoadTemplates returns the default message templates overridden by the
// YAML file at path. An empty path yields the defaults.
func LoadTemplates(path string) (message.Templates, error) {
	templates := message.Default()
	if path == "" {
		return templates, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return templates, fmt.Errorf("failed to read messages file: %w", err)
	}

	if err := yaml.Unmarshal(data, &templates); err != nil {
		return templates, fmt.Errorf("failed to parse messages file: %w", err)
	}

	return templates, nil
}
