package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/alnah/go-blogen/internal/config"
)

// Environment variable names recognized by the CLI. Each fills its
// setting only when neither flag nor config file provided one.
const (
	envConfig    = "BLOGEN_CONFIG"
	envCSSSource = "BLOGEN_CSS_SOURCE"
	envMDSources = "BLOGEN_MD_SOURCES"
	envOutputs   = "BLOGEN_RENDERED_OUTPUTS"
	envBaseURL   = "BLOGEN_BASE_URL"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// loadDotenv loads a .env file when present. A missing file is fine;
// godotenv never overrides variables that are already set.
func loadDotenv() {
	_ = godotenv.Load()
}

// applyEnv fills unset path settings from environment variables.
// Called after the config file is loaded and before flags are applied,
// so the precedence is flags > environment > config file > defaults.
func applyEnv(cfg *config.Config, getenv func(string) string) {
	if v := getenv(envCSSSource); v != "" {
		cfg.CSSSource = v
	}
	if v := getenv(envMDSources); v != "" {
		cfg.SourcesDir = v
	}
	if v := getenv(envOutputs); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
}
