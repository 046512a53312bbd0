package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTheme key.Binding
	PrevTheme key.Binding

	NextIndex key.Binding
	PrevIndex key.Binding

	CycleState key.Binding
	Reload     key.Binding

	Quit key.Binding
	Help key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTheme: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous theme"),
		),
		NextIndex: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next variant"),
		),
		PrevIndex: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous variant"),
		),
		CycleState: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "cycle button state"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTheme, k.NextIndex, k.CycleState, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTheme, k.PrevTheme, k.Reload},
		{k.NextIndex, k.PrevIndex, k.CycleState},
		{k.Quit, k.Help},
	}
}
