package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hienpham123/tabletify/internal/errdef"
)

type GridSettings struct {
	Overscan      int  `toml:"overscan"`
	MaxWindowRows int  `toml:"max_window_rows"`
	PageSize      int  `toml:"page_size"`
	RowNumbers    bool `toml:"row_numbers"`
	Zebra         bool `toml:"zebra"`
}

type ClipboardSettings struct {
	SystemEnabled bool `toml:"system_enabled"`
}

type UISettings struct {
	Accent        string `toml:"accent"`
	WatchInterval string `toml:"watch_interval"`
}

type Settings struct {
	Grid      GridSettings      `toml:"grid"`
	Clipboard ClipboardSettings `toml:"clipboard"`
	UI        UISettings        `toml:"ui"`
}

func DefaultSettings() Settings {
	return Settings{
		Grid: GridSettings{
			Overscan:      5,
			MaxWindowRows: 300,
			PageSize:      0,
			RowNumbers:    true,
			Zebra:         true,
		},
		Clipboard: ClipboardSettings{SystemEnabled: true},
		UI:        UISettings{WatchInterval: "2s"},
	}
}

// LoadSettings reads settings.toml from the config dir. A missing file is
// not an error; defaults apply and unknown keys are ignored.
func LoadSettings() (Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, errdef.Wrap(errdef.CodeConfig, err, "read settings")
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), errdef.Wrap(errdef.CodeConfig, err, "parse settings")
	}
	return settings, nil
}

// SaveSettings writes settings.toml atomically: temp file then rename.
func SaveSettings(settings Settings) error {
	path := SettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create config dir")
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return errdef.Wrap(errdef.CodeConfig, err, "encode settings")
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write settings tmp")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "replace settings file")
	}
	return nil
}
