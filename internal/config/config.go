// Package config loads shopctl configuration with the precedence
// flags > environment > config file > defaults. The file lives at
// ~/.shopctl/config.yaml; environment variables use the SHOPCTL_
// prefix and may also come from a local .env file.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/storekit/shopctl/internal/errors"
)

// Config holds shopctl client configuration.
type Config struct {
	// APIURL is the base URL of the remote commerce API.
	APIURL string `yaml:"api_url" env:"SHOPCTL_API_URL"`

	// Format is the default output format (text, json, yaml).
	Format string `yaml:"format" env:"SHOPCTL_FORMAT"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"SHOPCTL_LOG_LEVEL"`

	// LogFormat is the log output format (text, json).
	LogFormat string `yaml:"log_format" env:"SHOPCTL_LOG_FORMAT"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		Format:    "text",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Path returns the config file location under the given shopctl home.
func Path(dir string) string {
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from the config file under dir, then
// overlays environment variables. A missing file is not an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeConfigInvalid, "config file is not valid YAML", err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read config file", err)
	}

	// A .env next to the working directory is convenient for development.
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeConfigInvalid, "failed to parse environment", err)
	}

	return cfg, nil
}

// Save writes the configuration file under dir, creating it if needed.
func (c Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create shopctl directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to encode config", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write config file", err)
	}

	return nil
}
