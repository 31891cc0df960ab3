// Package config loads the apidocs configuration file.
//
// The file is YAML. Before decoding, variables from .env and .env.local are
// loaded (without overriding the process environment) and ${VAR} references
// in the file are expanded.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// DefaultPath is the configuration file used when --config is not given.
const DefaultPath = "apidocs.yaml"

// Config represents the application configuration.
type Config struct {
	Input   string        `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
	Watch   WatchConfig   `yaml:"watch,omitempty"`
}

// OutputConfig controls where pages are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Index     string `yaml:"index"`
	Clean     bool   `yaml:"clean"` // Remove stale pages before writing
}

// RenderConfig controls page rendering and formatting.
type RenderConfig struct {
	SourceURL  string `yaml:"source_url"` // {module} is replaced by the module name
	PrintWidth int    `yaml:"print_width"`
	ProseWrap  string `yaml:"prose_wrap"` // preserve, always or never
}

// MetricsConfig controls Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- operator-supplied config path
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NotFoundError("configuration file not found").
				WithCause(err).
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "read configuration file").
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		if classified, ok := errors.AsClassified(err); ok {
			return nil, classified.WithContext("path", configPath)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes configuration from YAML, applies defaults and validates it.
// Environment expansion is the caller's concern.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			Build()
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
