package fs

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default configuration directory for gitcmd
// tools. Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/gitcmd.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitcmd")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gitcmd")
}

// DefaultEnvFile returns the path of the optional env file read at
// startup by the gitdiff command.
func DefaultEnvFile() string {
	return filepath.Join(DefaultConfigDir(), "env")
}
