// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Quiz QuizConfig `toml:"quiz"`
}

// QuizConfig maps quiz-related settings.
type QuizConfig struct {
	Mode           *string  `toml:"mode"`
	Questions      *int     `toml:"questions"`
	Threshold      *float64 `toml:"threshold"`
	MaxRetryPasses *int     `toml:"max-retry-passes"`
	FocusWeak      *bool    `toml:"focus-weak"`
	WeakTop        *int     `toml:"weak-top"`
	WeakFactor     *float64 `toml:"weak-factor"`
	WeakWindow     *int     `toml:"weak-window"`
	History        *bool    `toml:"history"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
