package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// LocalConfigPath is the config file looked up in the working directory.
const LocalConfigPath = "./wikrawler.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The YAML file is CONFIG_PATH when set, otherwise the first existing of
// ./wikrawler.yaml and the XDG config file. Without a file, configuration
// comes from ENV and defaults only.
func Load() (*Config, error) {
	var cfg Config

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// configPath returns the file to read, or "" when none exists.
func configPath() (string, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
		return path, nil
	}
	for _, path := range []string{LocalConfigPath, filepath.Join(ConfigDir(), DefaultConfigName)} {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}
