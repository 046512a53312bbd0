package tui

import (
	"github.com/charmbracelet/lipgloss"

	"themeshift/internal/picker"
	"themeshift/internal/theme"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style
	Muted     lipgloss.Style

	// tui
	TUITitle    lipgloss.Style
	TUISubtitle lipgloss.Style
	TUIHelp     lipgloss.Style
	Container   lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Selected    lipgloss.Style
}

// builds all styles from the manager's current theme; colors the theme
// does not define are left unset
func NewStyles(m *theme.Manager) *Styles {
	fg := func(s lipgloss.Style, keyPath string) lipgloss.Style {
		if c, ok := picker.Color(m, keyPath).Resolve(); ok {
			return s.Foreground(c.Lipgloss())
		}
		return s
	}
	bg := func(s lipgloss.Style, keyPath string) lipgloss.Style {
		if c, ok := picker.Color(m, keyPath).Resolve(); ok {
			return s.Background(c.Lipgloss())
		}
		return s
	}
	border := func(s lipgloss.Style, keyPath string) lipgloss.Style {
		if c, ok := picker.Color(m, keyPath).Resolve(); ok {
			return s.BorderForeground(c.Lipgloss())
		}
		return s
	}

	padding := 1
	if v, ok := picker.Float(m, "metrics.padding").Resolve(); ok && v >= 0 {
		padding = int(v)
	}

	return &Styles{
		// cli
		Success:   fg(lipgloss.NewStyle().Bold(true), "semantic.success"),
		Error:     fg(lipgloss.NewStyle().Bold(true), "semantic.error"),
		Warning:   fg(lipgloss.NewStyle(), "semantic.warning"),
		Info:      fg(lipgloss.NewStyle(), "semantic.primary"),
		Title:     fg(lipgloss.NewStyle().Bold(true).PaddingTop(1).PaddingBottom(1), "semantic.secondary"),
		Subtitle:  fg(lipgloss.NewStyle().Italic(true), "ui.subtitle"),
		Header:    bg(fg(lipgloss.NewStyle().Bold(true).PaddingLeft(1).PaddingRight(1), "ui.header_fg"), "ui.header_bg"),
		Cell:      lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1),
		Separator: fg(lipgloss.NewStyle(), "ui.separator"),
		Muted:     fg(lipgloss.NewStyle(), "text.muted"),

		// tui
		TUITitle:    bg(fg(lipgloss.NewStyle().Bold(true).Padding(0, 1), "text.primary"), "ui.header_bg"),
		TUISubtitle: fg(lipgloss.NewStyle(), "text.secondary"),
		TUIHelp:     fg(lipgloss.NewStyle(), "ui.help"),
		Container:   border(lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, padding), "ui.border"),
		Label:       fg(lipgloss.NewStyle().Bold(true), "semantic.primary"),
		Value:       fg(lipgloss.NewStyle(), "text.primary"),
		Selected:    bg(fg(lipgloss.NewStyle().Bold(true), "ui.selected_fg"), "ui.selected_bg"),
	}
}
