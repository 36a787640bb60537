// Package config loads the tool settings shared by the CLI and the REPL
// from TOML or YAML files, chosen by file extension.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings.
type Config struct {
	// Prompt is printed before every REPL input line.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// HistoryLimit caps the REPL history; zero or negative means unbounded.
	HistoryLimit int `toml:"history_limit" yaml:"history_limit"`
	// Color enables styled terminal output.
	Color bool `toml:"color" yaml:"color"`
	// ShowTokens echoes the scanned tokens before each parse.
	ShowTokens bool `toml:"show_tokens" yaml:"show_tokens"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Prompt:       ">>> ",
		HistoryLimit: 1000,
		Color:        true,
	}
}

// Load reads a config file, overlaying its values onto the defaults. The
// format is chosen by extension: .toml, or .yaml/.yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	config := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return config, nil
}
