// Package config loads and validates the optional YAML configuration
// file. Flags and environment variables override values loaded here;
// the merged configuration is validated once before a run starts.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigInvalid  = errors.New("invalid configuration")
)

// MaxConfigSize limits config input to prevent memory exhaustion (1MB).
const MaxConfigSize = 1 << 20

// Config holds all settings for site generation.
type Config struct {
	CSSSource   string `yaml:"css_source"`       // CSS file path or built-in style name
	SourcesDir  string `yaml:"md_sources"`       // markdown source directory
	OutputDir   string `yaml:"rendered_outputs"` // output directory
	BaseURL     string `yaml:"base_url"`         // index link prefix
	Workers     int    `yaml:"workers"`          // parallel workers (0 = auto)
	TitlePolicy string `yaml:"title_policy"`     // "filename" or "skip"
	LogLevel    string `yaml:"log_level"`        // "debug", "info", "warn", "error"
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		BaseURL:     "./",
		TitlePolicy: "filename",
		LogLevel:    "info",
	}
}

// Load reads and parses a YAML config file on top of the defaults.
// Unknown fields are rejected to catch typos early.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxConfigSize)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// Validate checks the merged configuration before a run.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.CSSSource, validation.Required),
		validation.Field(&c.SourcesDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Workers, validation.Min(0)),
		validation.Field(&c.TitlePolicy, validation.In("filename", "skip")),
		validation.Field(&c.LogLevel, validation.In("", "debug", "info", "warn", "error")),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// SlogLevel maps the configured log level onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
