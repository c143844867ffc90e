package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"intergalactic/internal/logging"
)

const (
	// EnvPrefix is prepended to every environment override, e.g.
	// INTERGALACTIC_LOG_LEVEL.
	EnvPrefix = "INTERGALACTIC_"

	DefaultPrompt   = "> "
	DefaultFallback = "I have no idea what you are talking about"
)

// Config holds runtime options for a session.
//
// Values are resolved in order: defaults, then the optional YAML file, then
// environment variables.
type Config struct {
	Prompt   string         `yaml:"prompt" env:"PROMPT"`
	Fallback string         `yaml:"fallback" env:"FALLBACK"`
	Log      logging.Config `yaml:"log"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Prompt:   DefaultPrompt,
		Fallback: DefaultFallback,
		Log:      logging.Config{Level: "warn"},
	}
}

// LoadConfig resolves the configuration. path may be empty.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateConfig rejects configurations that would make output ambiguous.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Fallback) == "" {
		return fmt.Errorf("config missing fallback")
	}
	if strings.ContainsAny(cfg.Fallback, "\r\n") {
		return fmt.Errorf("fallback must be a single line")
	}
	if cfg.Log.Level != "" {
		if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
			return fmt.Errorf("unknown log level %q", cfg.Log.Level)
		}
	}
	return nil
}

func loadYAML(path string, out *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}
