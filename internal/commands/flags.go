package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/redlinehq/redline/internal/core/config"
	"github.com/redlinehq/redline/internal/llm"
)

// Flags carries global flag values and the collaborators wired up in the
// Before hook, shared with every command through a pointer.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Model      string

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config

	// Generator is the text-generation client built in the Before hook.
	Generator llm.Generator
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "redline", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state
// directory. On macOS: ~/Library/Logs/redline/redline.log. On Linux:
// $XDG_STATE_HOME/redline/redline.log (defaults to ~/.local/state).
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "redline", "redline.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "redline", "redline.log")
	}

	return filepath.Join(home, ".local", "state", "redline", "redline.log")
}
