package termtable

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/domonda/go-datatable/appstate"
)

// Styles of the terminal table for one theme.
type Styles struct {
	Title        lipgloss.Style
	Info         lipgloss.Style
	Help         lipgloss.Style
	Notification lipgloss.Style
	Error        lipgloss.Style
	Table        table.Styles
}

type palette struct {
	text, muted, surface, accent, accentText, danger lipgloss.Color
}

var palettes = map[appstate.Theme]palette{
	appstate.ThemeLight: {
		text:       lipgloss.Color("#1f2328"),
		muted:      lipgloss.Color("#656d76"),
		surface:    lipgloss.Color("#eaeef2"),
		accent:     lipgloss.Color("#0969da"),
		accentText: lipgloss.Color("#ffffff"),
		danger:     lipgloss.Color("#cf222e"),
	},
	appstate.ThemeDark: {
		text:       lipgloss.Color("#e6edf3"),
		muted:      lipgloss.Color("#8d96a0"),
		surface:    lipgloss.Color("#30363d"),
		accent:     lipgloss.Color("#2f81f7"),
		accentText: lipgloss.Color("#0d1117"),
		danger:     lipgloss.Color("#f85149"),
	},
}

// ThemeStyles returns the styles for theme,
// the light styles for invalid themes.
func ThemeStyles(theme appstate.Theme) Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[appstate.DefaultTheme]
	}

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		Bold(true).
		Foreground(p.text).
		Background(p.surface)
	tableStyles.Cell = tableStyles.Cell.
		Foreground(p.text)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(p.accentText).
		Background(p.accent)

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Info:         lipgloss.NewStyle().Foreground(p.muted),
		Help:         lipgloss.NewStyle().Foreground(p.muted),
		Notification: lipgloss.NewStyle().Foreground(p.text),
		Error:        lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		Table:        tableStyles,
	}
}
