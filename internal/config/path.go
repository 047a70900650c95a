package config

import (
	"os"
	"path/filepath"
	"runtime"
)

func Dir() string {
	if override := os.Getenv("TABLETIFY_CONFIG_DIR"); override != "" {
		return override
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".tabletify"
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "tabletify")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "tabletify")
	default:
		return filepath.Join(home, ".config", "tabletify")
	}
}

func SettingsPath() string {
	return filepath.Join(Dir(), "settings.toml")
}

func RecentPath() string {
	return filepath.Join(Dir(), "recent.json")
}
