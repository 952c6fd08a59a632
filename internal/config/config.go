package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration, read from a YAML file. The timezone is
// the assumed reference offset for the API's offset-less due_date wire
// format; it must match what the server uses.
type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	Timezone   string `yaml:"timezone"`
	CachePath  string `yaml:"cache_path"`
}

// Default returns the configuration used when no file exists. The upstream
// deployment runs on East Africa Time.
func Default() Config {
	return Config{
		APIBaseURL: "http://127.0.0.1:5000/api",
		Timezone:   "Africa/Nairobi",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "duetrack", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("config: api_base_url must not be empty")
	}
	return cfg, nil
}

// Location resolves the configured reference timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
