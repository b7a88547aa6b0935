package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment overrides.
type Env struct {
	ConfigPath string `env:"ELEMQUIZ_CONFIG"`
	DBPath     string `env:"ELEMQUIZ_DB"`
	NoHistory  bool   `env:"ELEMQUIZ_NO_HISTORY"`
	Seed       int64  `env:"ELEMQUIZ_SEED"`
}

// LoadEnv parses ELEMQUIZ_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse env: %w", err)
	}
	return e, nil
}

// ResolveConfigPath returns the config path from the environment or the XDG default.
func (e Env) ResolveConfigPath() string {
	if e.ConfigPath != "" {
		return e.ConfigPath
	}
	return DefaultConfigPath()
}

// ResolveDBPath returns the database path from the environment or the XDG default.
func (e Env) ResolveDBPath() string {
	if e.DBPath != "" {
		return e.DBPath
	}
	return DefaultDBPath()
}
