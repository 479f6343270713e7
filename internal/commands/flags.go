package commands

import (
	"os"
	"path/filepath"

	"github.com/guyguy2/dial/internal/core/config"
	"github.com/guyguy2/dial/internal/core/contact"
	"github.com/guyguy2/dial/internal/core/history"
	"github.com/guyguy2/dial/internal/dial"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	Verbose    bool
	DryRun     bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service places calls; the stores back the listing commands
	Service  *dial.Service
	Contacts contact.Store
	History  history.Store
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dial", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dial")
}
