// SPDX-License-Identifier: MIT
// Package config holds the wgraph runtime configuration and its validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxGraphCapacity bounds graph.capacity. The graph reserves capacity²
// matrix cells up front (4096² int64 cells is 128 MiB); larger graphs
// still grow past it on demand.
const MaxGraphCapacity = 4096

// Config is the root configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Graph  GraphConfig  `koanf:"graph"`
	Output OutputConfig `koanf:"output"`
}

// LogConfig controls the slog logger.
type LogConfig struct {
	Level  string        `koanf:"level"`  // debug, info, warn, error
	Format string        `koanf:"format"` // auto, json, text
	Output string        `koanf:"output"` // stderr, stdout, file
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig controls lumberjack rotation when Output is "file".
type LogFileConfig struct {
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// GraphConfig locates the graph document and sizes the in-memory graph.
type GraphConfig struct {
	Path     string `koanf:"path"`     // YAML graph document; empty means start empty
	Capacity int    `koanf:"capacity"` // initial vertex capacity
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color string `koanf:"color"` // auto, always, never
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"auto": true, "json": true, "text": true}
	validOutputs = map[string]bool{"stderr": true, "stdout": true, "file": true}
	validColors  = map[string]bool{"auto": true, "always": true, "never": true}
)

// Validate normalizes case and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	c.Log.Output = strings.ToLower(c.Log.Output)
	c.Output.Color = strings.ToLower(c.Output.Color)

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: auto, json, text, got %s", c.Log.Format))
	}
	if !validOutputs[c.Log.Output] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stderr, stdout, file, got %s", c.Log.Output))
	}
	if c.Log.Output == "file" && c.Log.File.Path == "" {
		errs = append(errs, "log.file.path is required when log.output is file")
	}
	if c.Log.File.MaxSizeMB < 0 || c.Log.File.MaxBackups < 0 || c.Log.File.MaxAgeDays < 0 {
		errs = append(errs, "log.file limits must be non-negative")
	}
	if c.Graph.Capacity <= 0 || c.Graph.Capacity > MaxGraphCapacity {
		errs = append(errs, fmt.Sprintf("graph.capacity must be in 1..%d, got %d", MaxGraphCapacity, c.Graph.Capacity))
	}
	if !validColors[c.Output.Color] {
		errs = append(errs, fmt.Sprintf("output.color must be one of: auto, always, never, got %s", c.Output.Color))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}
