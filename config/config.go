// Package config locates segbar's configuration directory.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the segbar configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "segbar")
}

// ModuleDir returns the directory holding Lua module scripts.
func ModuleDir() string {
	return filepath.Join(Dir(), "modules")
}

// ModuleScripts returns the *.lua files in ModuleDir, sorted by name.
// A missing directory yields no scripts and no error.
func ModuleScripts() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(ModuleDir(), "*.lua"))
	if err != nil {
		return nil, err
	}
	return matches, nil
}
