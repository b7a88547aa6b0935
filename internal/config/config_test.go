package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected missing config to be ignored, got %v", err)
	}
	if cfg.Quiz.Questions != nil || cfg.Quiz.Mode != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[quiz]
mode = "symbol-name"
questions = 15
threshold = 0.9
max-retry-passes = 3
focus-weak = true
history = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	q := cfg.Quiz
	if q.Mode == nil || *q.Mode != "symbol-name" {
		t.Fatalf("unexpected mode: %v", q.Mode)
	}
	if q.Questions == nil || *q.Questions != 15 {
		t.Fatalf("unexpected questions: %v", q.Questions)
	}
	if q.Threshold == nil || *q.Threshold != 0.9 {
		t.Fatalf("unexpected threshold: %v", q.Threshold)
	}
	if q.MaxRetryPasses == nil || *q.MaxRetryPasses != 3 {
		t.Fatalf("unexpected max retry passes: %v", q.MaxRetryPasses)
	}
	if q.FocusWeak == nil || !*q.FocusWeak {
		t.Fatalf("unexpected focus-weak: %v", q.FocusWeak)
	}
	if q.History == nil || *q.History {
		t.Fatalf("unexpected history: %v", q.History)
	}
	if q.WeakTop != nil {
		t.Fatalf("expected unset weak-top to stay nil")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[quiz]\nquestons = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "elemquiz", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "elemquiz", "elemquiz.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("ELEMQUIZ_CONFIG", "/etc/elemquiz.toml")
	t.Setenv("ELEMQUIZ_NO_HISTORY", "true")
	t.Setenv("ELEMQUIZ_SEED", "42")
	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if e.ResolveConfigPath() != "/etc/elemquiz.toml" {
		t.Fatalf("unexpected config path %q", e.ResolveConfigPath())
	}
	if e.ResolveDBPath() != DefaultDBPath() {
		t.Fatalf("expected default db path, got %q", e.ResolveDBPath())
	}
	if !e.NoHistory || e.Seed != 42 {
		t.Fatalf("unexpected env: %+v", e)
	}

	t.Setenv("ELEMQUIZ_SEED", "many")
	if _, err := LoadEnv(); err == nil {
		t.Fatalf("expected invalid seed to fail")
	}
}
