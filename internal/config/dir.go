// Package config resolves where daydayup keeps its settings and loads them.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the configuration directory.
const appName = "daydayup"

// Dir returns the daydayup configuration directory.
//
// Resolution:
//   - $DAYDAYUP_CONFIG_HOME when set
//   - $XDG_CONFIG_HOME/daydayup when set, on any platform
//   - %AppData%/daydayup on Windows
//   - ~/.config/daydayup on macOS and Linux
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv("DAYDAYUP_CONFIG_HOME"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// File returns the path of config.yaml inside dir, or "" when dir is empty.
func File(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
