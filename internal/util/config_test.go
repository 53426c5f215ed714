package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_level = "debug"

[db]
driver = "sqlite3"
dsn = ":memory:"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.DB.Driver != "sqlite3" {
		t.Errorf("expected driver sqlite3, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN != ":memory:" {
		t.Errorf("expected dsn :memory:, got %q", cfg.DB.DSN)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration("does-not-exist.toml"); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
