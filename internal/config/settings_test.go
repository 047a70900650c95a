package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TABLETIFY_CONFIG_DIR", t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TABLETIFY_CONFIG_DIR", dir)

	content := heredoc.Doc(`
		[grid]
		overscan = 10
		page_size = 50

		[clipboard]
		system_enabled = false
	`)
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.Grid.Overscan != 10 || settings.Grid.PageSize != 50 {
		t.Fatalf("expected overrides applied, got %+v", settings.Grid)
	}
	if settings.Clipboard.SystemEnabled {
		t.Fatalf("expected clipboard disabled")
	}
	// Untouched keys keep their defaults.
	if settings.Grid.MaxWindowRows != DefaultSettings().Grid.MaxWindowRows {
		t.Fatalf("expected untouched key to keep default, got %d", settings.Grid.MaxWindowRows)
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	t.Setenv("TABLETIFY_CONFIG_DIR", t.TempDir())

	settings := DefaultSettings()
	settings.Grid.PageSize = 25
	settings.UI.Accent = "#15AABF"
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != settings {
		t.Fatalf("expected round trip, got %+v", loaded)
	}
}

func TestLoadSettingsBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TABLETIFY_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("[grid\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	settings, err := LoadSettings()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults on parse error")
	}
}
