package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Variant: "2048",
		},
		Storage: StorageConfig{
			Path: "~/.t2048/games.db",
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
	}
}
