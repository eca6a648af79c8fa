package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/registry"
)

// Load loads the configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default
func Load(customPath string) (T2048Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/t2048.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}

// Validate checks that the board and log settings are usable.
func (c T2048Config) Validate() error {
	if !registry.Exists(c.Board.Variant) {
		return fmt.Errorf("config: unknown variant %q", c.Board.Variant)
	}
	if c.Board.Size != 0 && c.Board.Size < t2048.MinSize {
		return fmt.Errorf("config: board size %d is below %d", c.Board.Size, t2048.MinSize)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage path is empty")
	}
	return nil
}

// BoardSize resolves the board dimension: an explicit size wins over the variant's.
func (c T2048Config) BoardSize() (int, error) {
	if c.Board.Size > 0 {
		return c.Board.Size, nil
	}
	v, err := registry.Lookup(c.Board.Variant)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return v.Size, nil
}

// Runtime resolves the settings a new board is built from.
func (c T2048Config) Runtime() (core.RuntimeConfig, error) {
	size, err := c.BoardSize()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	return core.RuntimeConfig{Size: size, Seed: c.Board.Seed}, nil
}
