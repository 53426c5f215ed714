package util

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type Configuration struct {
	Version   string
	BuildDate string
	Commit    string

	LogLevel string   `toml:"log_level"`
	DB       DBConfig `toml:"db"`
}

// DBConfig selects the driver for the database host natives; empty means the
// db_* natives are not registered.
type DBConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// LoadConfiguration reads a runner configuration file in TOML form.
func LoadConfiguration(path string) (Configuration, error) {
	var cfg Configuration
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("failed to load configuration %s: %w", path, err)
	}
	return cfg, nil
}
