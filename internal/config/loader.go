package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPowerCrisis loads Power Crisis configuration.
// Search order: customPath -> ~/.powercrisis/configs/powercrisis.yaml ->
// ./configs/powercrisis.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadPowerCrisis(customPath string) (PowerCrisisConfig, error) {
	cfg := DefaultPowerCrisisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("powercrisis.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if c, ok := parseOver(data); ok {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "powercrisis.yaml")); err == nil {
		if c, ok := parseOver(data); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if c, ok := parseOver(defaultPowerCrisisYAML); ok {
		return c, nil
	}
	return DefaultPowerCrisisConfig(), nil // Fallback to hardcoded if embed fails
}

// parseOver decodes data on top of the hardcoded defaults.
func parseOver(data []byte) (PowerCrisisConfig, bool) {
	cfg := DefaultPowerCrisisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".powercrisis", "configs", filename)
}
