// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix    = "WGRAPH_"
	configEnvVar = "WGRAPH_CONFIG"
)

// ErrConfigNotFound indicates an explicitly requested config file is missing.
var ErrConfigNotFound = errors.New("config: file not found")

// Loader loads configuration with priority, lowest first:
// defaults, YAML file, environment, overrides.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	explicit    string
	envPrefix   string
	overrides   map[string]any
	used        string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// NewLoader creates a Loader that searches ./wgraph.yaml and
// ./config/wgraph.yaml unless told otherwise.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"wgraph.yaml", "config/wgraph.yaml"},
		envPrefix:   EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithConfigPaths replaces the search list. Missing files are skipped.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithConfigFile names a file that must exist.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.explicit = path
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides applies dotted keys on top of everything else (CLI flags).
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) {
		l.overrides = values
	}
}

// Load merges every source, unmarshals and validates.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}
	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("config: load overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Source returns the config file that was loaded, or "" if none was.
func (l *Loader) Source() string { return l.used }

func defaults() map[string]any {
	return map[string]any{
		"log.level":             "info",
		"log.format":            "auto",
		"log.output":            "stderr",
		"log.file.path":         "",
		"log.file.max_size_mb":  10,
		"log.file.max_backups":  3,
		"log.file.max_age_days": 7,
		"log.file.compress":     true,
		"graph.path":            "",
		"graph.capacity":        16,
		"output.color":          "auto",
	}
}

// loadConfigFile loads the explicit file (required), else $WGRAPH_CONFIG
// (required), else the first existing search path. No file at all is fine.
func (l *Loader) loadConfigFile() error {
	required := l.explicit
	if required == "" {
		required = os.Getenv(configEnvVar)
	}
	if required != "" {
		if _, err := os.Stat(required); err != nil {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, required)
		}
		return l.loadFile(required)
	}

	for _, path := range l.configPaths {
		if _, err := os.Stat(path); err == nil {
			return l.loadFile(path)
		}
	}

	return nil
}

func (l *Loader) loadFile(path string) error {
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	l.used = path

	return nil
}

// loadEnv maps WGRAPH_LOG_LEVEL style names through envKeyMappings and
// otherwise treats "__" as the key separator (WGRAPH_LOG__FILE__PATH).
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			return "", nil // consumed by loadConfigFile
		}
		if mapped, ok := envKeyMappings[key]; ok {
			return mapped, value
		}

		return strings.ReplaceAll(key, "__", "."), value
	}), nil)
}

var envKeyMappings = map[string]string{
	"log_level":          "log.level",
	"log_format":         "log.format",
	"log_output":         "log.output",
	"log_file_path":      "log.file.path",
	"log_file_compress":  "log.file.compress",
	"graph_path":         "graph.path",
	"graph_capacity":     "graph.capacity",
	"output_color":       "output.color",
	"log_file_max_size":  "log.file.max_size_mb",
	"log_file_max_age":   "log.file.max_age_days",
	"log_file_max_count": "log.file.max_backups",
}
