package ui

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var ansiSequenceRegex = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")

// styleSGR extracts the raw SGR prefix and suffix a lipgloss style would
// emit, so the style can be re-applied mid-string without re-rendering.
// Used for the copied-cells overlay, which has to survive the resets the
// base cell styles already put into the line.
func styleSGR(style lipgloss.Style) (string, string) {
	profile := lipgloss.DefaultRenderer().ColorProfile()
	st := profile.String()

	if fg := toTermenvColor(profile, style.GetForeground()); fg != nil {
		st = st.Foreground(fg)
	}
	if bg := toTermenvColor(profile, style.GetBackground()); bg != nil {
		st = st.Background(bg)
	}
	if style.GetBold() {
		st = st.Bold()
	}
	if style.GetItalic() {
		st = st.Italic()
	}
	if style.GetUnderline() {
		st = st.Underline()
	}
	if style.GetFaint() {
		st = st.Faint()
	}
	if style.GetStrikethrough() {
		st = st.CrossOut()
	}
	if style.GetReverse() {
		st = st.Reverse()
	}

	const sentinel = "X"
	styled := st.Styled(sentinel)
	if styled == sentinel {
		return "", ""
	}
	idx := strings.Index(styled, sentinel)
	if idx == -1 {
		return "", ""
	}
	return styled[:idx], styled[idx+len(sentinel):]
}

func toTermenvColor(profile termenv.Profile, c lipgloss.TerminalColor) termenv.Color {
	if c == nil {
		return nil
	}
	switch v := c.(type) {
	case lipgloss.NoColor:
		return nil
	case lipgloss.Color:
		return profile.Color(string(v))
	case lipgloss.ANSIColor:
		return profile.Color(strconv.FormatUint(uint64(v), 10))
	default:
		return nil
	}
}

// applyOverlayToLine splices the overlay prefix back in after every SGR
// sequence in the line, so the overlay persists across the inner styles'
// resets, and closes with the suffix.
func applyOverlayToLine(line, prefix, suffix string) string {
	if prefix == "" {
		return line
	}
	if line == "" {
		return prefix + suffix
	}
	indices := ansiSequenceRegex.FindAllStringIndex(line, -1)
	if len(indices) == 0 {
		return prefix + line + suffix
	}

	var builder strings.Builder
	builder.Grow(len(line) + len(prefix)*(len(indices)+1) + len(suffix))
	builder.WriteString(prefix)
	last := 0
	for _, idx := range indices {
		if idx[0] > last {
			builder.WriteString(line[last:idx[0]])
		}
		seq := line[idx[0]:idx[1]]
		builder.WriteString(seq)
		if isSGR(seq) {
			builder.WriteString(prefix)
		}
		last = idx[1]
	}
	if last < len(line) {
		builder.WriteString(line[last:])
	}
	builder.WriteString(suffix)
	return builder.String()
}

func isSGR(seq string) bool {
	if len(seq) == 0 || seq[len(seq)-1] != 'm' {
		return false
	}
	return strings.HasPrefix(seq, "\x1b[")
}
