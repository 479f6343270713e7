// Package config handles configuration loading and validation for dial.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/guyguy2/dial/internal/browser"
	"github.com/guyguy2/dial/pkg/tmpl"
)

// Config holds the application configuration.
type Config struct {
	// DefaultBrowser is used when no browser is requested explicitly.
	DefaultBrowser string `yaml:"default_browser"`
	// HistoryLimit is the retention cap for the call history log.
	HistoryLimit int `yaml:"history_limit"`
	// CallURL is the dial endpoint template. It receives {{ .Number }},
	// the canonical number with its + already percent-encoded.
	CallURL string `yaml:"call_url"`
	// OpenPath is the path to the macOS open binary.
	OpenPath string `yaml:"open_path"`

	DataDir string `yaml:"-"` // set by caller, not from config file
}

// CallURLData defines available fields for call URL templates.
type CallURLData struct {
	Number string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultBrowser: string(browser.Default),
		HistoryLimit:   50,
		CallURL:        "https://voice.google.com/u/0/calls?a=nc,{{ .Number }}",
		OpenPath:       "open",
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.HistoryLimit == 0 {
		c.HistoryLimit = defaults.HistoryLimit
	}
	if c.CallURL == "" {
		c.CallURL = defaults.CallURL
	}
	if c.OpenPath == "" {
		c.OpenPath = defaults.OpenPath
	}
	if c.DefaultBrowser == "" {
		c.DefaultBrowser = defaults.DefaultBrowser
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if !browser.Known(c.DefaultBrowser) {
		errs = errs.Append("default_browser", fmt.Errorf("unknown browser %q", c.DefaultBrowser))
	}

	if c.HistoryLimit < 1 {
		errs = errs.Append("history_limit", fmt.Errorf("must be at least 1"))
	}

	if _, err := tmpl.Render(c.CallURL, CallURLData{Number: "%2B18558701311"}); err != nil {
		errs = errs.Append("call_url", err)
	}

	if c.OpenPath == "" {
		errs = errs.Append("open_path", fmt.Errorf("cannot be empty"))
	}

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("data directory cannot be empty"))
	}

	return errs.ToError()
}

// ContactsFile returns the path to the flat contacts file.
func (c *Config) ContactsFile() string {
	return filepath.Join(c.DataDir, "contacts")
}

// HistoryFile returns the path to the flat call history file.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "call_history")
}
