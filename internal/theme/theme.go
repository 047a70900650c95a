package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Header         lipgloss.Style
	HeaderSorted   lipgloss.Style
	Cell           lipgloss.Style
	CellZebra      lipgloss.Style
	CellSelected   lipgloss.Style
	CellFocused    lipgloss.Style
	CellCopied     lipgloss.Style
	RowNumber      lipgloss.Style
	GroupSeparator lipgloss.Style
	Spacer         lipgloss.Style

	StatusBar     lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarn    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style

	Editor      lipgloss.Style
	PromptLabel lipgloss.Style
	Footer      lipgloss.Style
	FooterKey   lipgloss.Style
	Overlay     lipgloss.Style
	OverlayTitle lipgloss.Style
}

func DefaultTheme() Theme {
	accent := lipgloss.Color("#7D56F4")

	return Theme{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E1FF")).
			Background(lipgloss.Color("#2C2640")).
			Bold(true),
		HeaderSorted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FDFBFF")).
			Background(accent).
			Bold(true),
		Cell:      lipgloss.NewStyle().Foreground(lipgloss.Color("#DCD7FF")),
		CellZebra: lipgloss.NewStyle().Foreground(lipgloss.Color("#DCD7FF")).Background(lipgloss.Color("#1D1930")),
		CellSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FDFBFF")).
			Background(lipgloss.Color("#433C59")),
		CellFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1020")).
			Background(lipgloss.Color("#FBC859")).
			Bold(true),
		CellCopied: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6EF17E")).
			Italic(true),
		RowNumber:      lipgloss.NewStyle().Foreground(lipgloss.Color("#5E5A72")),
		GroupSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("#867CC1")).Bold(true),
		Spacer:         lipgloss.NewStyle().Foreground(lipgloss.Color("#403B59")).Italic(true),

		StatusBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("#A6A1BB")).Padding(0, 1),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D1CFF6")),
		StatusWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB61E")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6E6E")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#6EF17E")),

		Editor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FDFBFF")).
			Background(lipgloss.Color("#2C1E3A")),
		PromptLabel: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("#5E5A72")),
		FooterKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8B39")).Bold(true),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		OverlayTitle: lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}

// ApplyAccent recolors the accent-bearing styles, driven by the ui.accent
// setting.
func ApplyAccent(t *Theme, color string) {
	if color == "" {
		return
	}
	accent := lipgloss.Color(color)
	t.HeaderSorted = t.HeaderSorted.Background(accent)
	t.PromptLabel = t.PromptLabel.Foreground(accent)
	t.Overlay = t.Overlay.BorderForeground(accent)
	t.OverlayTitle = t.OverlayTitle.Foreground(accent)
}
