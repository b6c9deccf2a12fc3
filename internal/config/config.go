// Package config loads wrapgen settings from a YAML file, a .env file and
// WRAPGEN_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"wrapgen/internal/analyze"
	"wrapgen/internal/plan"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = ".wrapgen.yaml"

// Environment variables overriding file settings.
const (
	EnvDirective = "WRAPGEN_DIRECTIVE"
	EnvTagKey    = "WRAPGEN_TAG_KEY"
	EnvTagValue  = "WRAPGEN_TAG_VALUE"
	EnvMutable   = "WRAPGEN_MUTABLE"
	EnvWorkers   = "WRAPGEN_WORKERS"
	EnvManifest  = "WRAPGEN_MANIFEST"
)

// Config holds all wrapgen settings.
type Config struct {
	// Directive marks a Go type for wrapping ("//<Directive>").
	Directive string `yaml:"directive"`
	// TagKey and TagValue form the inner-value marker, e.g. `wrap:"inner"`.
	TagKey   string `yaml:"tagKey"`
	TagValue string `yaml:"tagValue"`
	// Mutable requests mutable-access generation.
	Mutable *bool `yaml:"mutable,omitempty"`
	// Workers bounds concurrent planning.
	Workers int `yaml:"workers"`
	// Manifest is an optional YAML declaration manifest.
	Manifest string `yaml:"manifest,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads the config file at path. A missing file at the default path
// is not an error. Environment overrides are applied afterwards, with
// variables from a .env file in the working directory filling in unset ones.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Missing .env files are fine; existing variables are never overwritten.
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills in default values for unset settings.
func applyDefaults(cfg *Config) {
	if cfg.Directive == "" {
		cfg.Directive = analyze.DefaultDirective
	}

	if cfg.TagKey == "" {
		cfg.TagKey = analyze.DefaultTagKey
	}

	if cfg.TagValue == "" {
		cfg.TagValue = analyze.DefaultTagValue
	}

	if cfg.Mutable == nil {
		mutable := true
		cfg.Mutable = &mutable
	}

	if cfg.Workers <= 0 {
		cfg.Workers = plan.DefaultOptions().Workers
	}
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvDirective); ok {
		cfg.Directive = v
	}

	if v, ok := os.LookupEnv(EnvTagKey); ok {
		cfg.TagKey = v
	}

	if v, ok := os.LookupEnv(EnvTagValue); ok {
		cfg.TagValue = v
	}

	if v, ok := os.LookupEnv(EnvManifest); ok {
		cfg.Manifest = v
	}

	if v, ok := os.LookupEnv(EnvMutable); ok {
		mutable, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvMutable, v, err)
		}
		cfg.Mutable = &mutable
	}

	if v, ok := os.LookupEnv(EnvWorkers); ok {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvWorkers, v, err)
		}
		cfg.Workers = workers
	}

	return nil
}

// Loader returns a package loader using the configured annotations.
func (c *Config) Loader() *analyze.Loader {
	l := analyze.NewLoader()
	l.Directive = c.Directive
	l.TagKey = c.TagKey
	l.TagValue = c.TagValue

	return l
}

// PlanOptions returns the planning options for this configuration.
func (c *Config) PlanOptions() plan.Options {
	opts := plan.DefaultOptions()
	opts.Workers = c.Workers
	opts.Mutable = c.Mutable == nil || *c.Mutable
	opts.MarkerHint = fmt.Sprintf("%s:%q", c.TagKey, c.TagValue)

	return opts
}
