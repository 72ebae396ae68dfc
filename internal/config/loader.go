package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const fileName = "catchit.yaml"

// Origin names where a loaded config came from, for logging.
type Origin string

const (
	OriginEmbedded  Origin = "embedded"
	OriginHardcoded Origin = "hardcoded"
)

// Load loads catchit configuration. Files only need to name the settings they
// change; everything else keeps its default.
// Search order: customPath -> ~/.catchit/configs/catchit.yaml -> ./configs/catchit.yaml -> embedded default
func Load(customPath string) (Config, Origin, error) {
	// Try custom path first
	if customPath != "" {
		path := ExpandHome(customPath)
		cfg, err := loadFile(path)
		if err != nil {
			return Default(), "", err
		}
		return cfg, Origin(path), nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files there are skipped.
	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, Origin(path), nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), OriginHardcoded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, OriginEmbedded, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catchit", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
