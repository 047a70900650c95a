package settings

import (
	"strconv"
	"strings"

	"github.com/hienpham123/tabletify/internal/config"
	"github.com/hienpham123/tabletify/internal/duration"
	"github.com/hienpham123/tabletify/internal/errdef"
)

// GridHandler applies grid.* overrides onto the loaded settings.
func GridHandler(cfg *config.Settings) Handler {
	return Handler{
		Match: PrefixMatcher("grid."),
		Apply: func(key, val string) error {
			switch strings.TrimPrefix(key, "grid.") {
			case "overscan":
				return setInt(&cfg.Grid.Overscan, key, val)
			case "max_window_rows":
				return setInt(&cfg.Grid.MaxWindowRows, key, val)
			case "page_size":
				return setInt(&cfg.Grid.PageSize, key, val)
			case "row_numbers":
				return setBool(&cfg.Grid.RowNumbers, key, val)
			case "zebra":
				return setBool(&cfg.Grid.Zebra, key, val)
			default:
				return errdef.New(errdef.CodeConfig, "unknown setting %q", key)
			}
		},
	}
}

// ClipboardHandler applies clipboard.* overrides.
func ClipboardHandler(cfg *config.Settings) Handler {
	return Handler{
		Match: PrefixMatcher("clipboard."),
		Apply: func(key, val string) error {
			switch strings.TrimPrefix(key, "clipboard.") {
			case "system_enabled":
				return setBool(&cfg.Clipboard.SystemEnabled, key, val)
			default:
				return errdef.New(errdef.CodeConfig, "unknown setting %q", key)
			}
		},
	}
}

// UIHandler applies ui.* overrides. The watch interval is validated as a
// duration string here so a bad value fails at startup, not mid-session.
func UIHandler(cfg *config.Settings) Handler {
	return Handler{
		Match: PrefixMatcher("ui."),
		Apply: func(key, val string) error {
			switch strings.TrimPrefix(key, "ui.") {
			case "accent":
				cfg.UI.Accent = strings.TrimSpace(val)
				return nil
			case "watch_interval":
				if _, ok := duration.Parse(val); !ok {
					return errdef.New(errdef.CodeConfig, "invalid duration %q for %s", val, key)
				}
				cfg.UI.WatchInterval = strings.TrimSpace(val)
				return nil
			default:
				return errdef.New(errdef.CodeConfig, "unknown setting %q", key)
			}
		},
	}
}

func setInt(dst *int, key, val string) error {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return errdef.New(errdef.CodeConfig, "invalid integer %q for %s", val, key)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key, val string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return errdef.New(errdef.CodeConfig, "invalid boolean %q for %s", val, key)
	}
	*dst = b
	return nil
}
