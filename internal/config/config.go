// Package config provides YAML-based configuration loading for the tile2048 CLI.
package config

// T2048Config contains all configuration for the engine and its collaborators.
type T2048Config struct {
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig selects the board a new game starts with.
type BoardConfig struct {
	Variant string `yaml:"variant"` // Registry ID, e.g. "2048" or "2048_big"
	Size    int    `yaml:"size"`    // Overrides the variant size when > 0
	Seed    int64  `yaml:"seed"`    // RNG seed, 0 = time based
}

// StorageConfig locates the saved-games database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}
