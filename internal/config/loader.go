package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds the studio configuration. Environment variables override the
// YAML file, which overrides the env-default tags. The file named by
// CONFIG_PATH must exist; the ./config.yaml fallback is optional, so a
// container can run from environment alone.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("studio config: invalid: %w", err)
	}
	return &cfg, nil
}

func read(cfg *Config) error {
	path, explicit := os.LookupEnv(pathEnv)
	if !explicit || path == "" {
		path, explicit = defaultPath, false
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("studio config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("studio config: %s=%s: %w", pathEnv, path, err)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("studio config: stat %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("studio config: read env: %w", err)
		}
	}
	return nil
}
