package settings

import (
	"testing"

	"github.com/hienpham123/tabletify/internal/config"
)

func TestParsePairs(t *testing.T) {
	t.Parallel()

	got := ParsePairs([]string{"grid.page_size=50", "ui.accent = #fff ", "broken", "=novalue"})
	if len(got) != 2 {
		t.Fatalf("expected 2 parsed pairs, got %v", got)
	}
	if got["grid.page_size"] != "50" {
		t.Fatalf("expected page size pair, got %v", got)
	}
	if got["ui.accent"] != "#fff" {
		t.Fatalf("expected trimmed accent pair, got %v", got)
	}
}

func TestApplyAllRoutesToHandlers(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultSettings()
	applier := New(GridHandler(&cfg), ClipboardHandler(&cfg), UIHandler(&cfg))

	left, err := applier.ApplyAll(map[string]string{
		"grid.overscan":            "9",
		"grid.zebra":               "false",
		"clipboard.system_enabled": "false",
		"ui.watch_interval":        "30s",
		"mystery.key":              "x",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Grid.Overscan != 9 || cfg.Grid.Zebra {
		t.Fatalf("expected grid overrides applied, got %+v", cfg.Grid)
	}
	if cfg.Clipboard.SystemEnabled {
		t.Fatalf("expected clipboard override applied")
	}
	if cfg.UI.WatchInterval != "30s" {
		t.Fatalf("expected watch interval applied, got %q", cfg.UI.WatchInterval)
	}
	if len(left) != 1 {
		t.Fatalf("expected one unmatched key, got %v", left)
	}
	if _, ok := left["mystery.key"]; !ok {
		t.Fatalf("expected mystery.key left over, got %v", left)
	}
}

func TestApplyAllRejectsBadValues(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultSettings()
	applier := New(GridHandler(&cfg), UIHandler(&cfg))

	if _, err := applier.ApplyAll(map[string]string{"grid.overscan": "lots"}); err == nil {
		t.Fatalf("expected error for non-integer overscan")
	}
	if _, err := applier.ApplyAll(map[string]string{"ui.watch_interval": "sometimes"}); err == nil {
		t.Fatalf("expected error for bad duration")
	}
	if _, err := applier.ApplyAll(map[string]string{"grid.nope": "1"}); err == nil {
		t.Fatalf("expected error for unknown grid key")
	}
}
