// Package fs provides file-based loading of theme definitions and writing
// of generated artifacts.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultThemeDir returns the directory searched for theme files given by
// bare name. Uses XDG_CONFIG_HOME if set, otherwise ~/.config/themevars,
// or the working directory if home is unavailable.
func DefaultThemeDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "themevars")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config", "themevars")
}
