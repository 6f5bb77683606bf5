package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool settings. Everything has a working default so the
// binaries run with no config file at all.
type Config struct {
	// CatalogPath is the JSON interchange file the generator writes and the
	// registry loads.
	CatalogPath string `yaml:"catalog_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func Defaults() Config {
	return Config{
		CatalogPath: "agents.json",
		LogLevel:    "info",
	}
}

// Load reads the config file and applies environment overrides.
// A missing file is not an error: defaults plus env apply.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = Defaults().CatalogPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Defaults().LogLevel
	}
}

// Env overrides win over both defaults and file values so deployments can
// relocate the catalog without editing config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AGENTCTL_CATALOG_PATH"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("AGENTCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
