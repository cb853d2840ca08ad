package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the config directories.
const configFile = "pacman.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (PacmanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PacmanConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// parse overlays YAML data on top of the defaults.
func parse(data []byte) (PacmanConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PacmanConfig{}, err
	}
	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() PacmanConfig {
	var cfg PacmanConfig
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
