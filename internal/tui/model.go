package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"themeshift/internal/picker"
	"themeshift/internal/theme"
)

const (
	defaultVariants = 4

	// how long an animated status bar change stays faded
	transitionDelay = 150 * time.Millisecond
)

// accent colors cycled by the theme index
var accentTokens = []string{"#FF5555", "#50FA7B", "#BD93F9", "#F1FA8C"}

type Config struct {
	Manager  *theme.Manager
	Themes   []string
	Current  string
	ThemeDir string
	Reloads  <-chan theme.Reload
	Variants int
}

// ThemeChangedMsg is delivered after every manager notification.
type ThemeChangedMsg struct {
	Name  string
	Index int
}

type reloadMsg struct {
	reload theme.Reload
}

type transitionDoneMsg struct{}

type Model struct {
	manager  *theme.Manager
	themeDir string
	reloads  <-chan theme.Reload

	themes      []string
	themeCursor int
	variants    int

	styles  *Styles
	title   *Label
	accent  *Label
	button  *Button
	status  *StatusBar
	logo    *ImageView
	palette table.Model

	// bumped by the manager observer, drained in Update
	changes *int
	fading  bool
	message string

	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

func NewModel(cfg Config) Model {
	mgr := cfg.Manager
	if cfg.Variants <= 0 {
		cfg.Variants = defaultVariants
	}

	m := Model{
		manager:  mgr,
		themeDir: cfg.ThemeDir,
		reloads:  cfg.Reloads,
		themes:   cfg.Themes,
		variants: cfg.Variants,
		changes:  new(int),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    100,
		height:   30,
	}

	for i, name := range cfg.Themes {
		if name == cfg.Current {
			m.themeCursor = i
		}
	}

	m.title = NewLabel(mgr, "themeshift").
		SetForeground(picker.Color(mgr, "text.primary")).
		SetBackground(picker.Color(mgr, "ui.header_bg")).
		SetPadding(picker.Float(mgr, "metrics.padding")).
		SetBold(true)

	m.accent = NewLabel(mgr, "accent").
		SetForeground(picker.Colors(mgr, accentTokens...)).
		SetBold(true)

	m.button = NewButton(mgr, "Apply").
		SetForeground(picker.Color(mgr, "ui.header_fg"), picker.StateNormal).
		SetBackground(picker.Color(mgr, "semantic.primary"), picker.StateNormal).
		SetBackground(picker.Color(mgr, "semantic.secondary"), picker.StateHighlighted).
		SetForeground(picker.Color(mgr, "ui.selected_fg"), picker.StateSelected).
		SetBackground(picker.Color(mgr, "ui.selected_bg"), picker.StateSelected).
		SetBackground(picker.Color(mgr, "text.muted"), picker.StateDisabled)

	m.status = NewStatusBar(mgr, "", picker.StatusBarStyleFromKeyPath(mgr, "statusbar"))
	m.logo = NewImageView(mgr, 24, picker.Image(mgr, "images.logo"))

	m.palette = table.New(
		table.WithColumns([]table.Column{
			{Title: "Key", Width: 22},
			{Title: "Value", Width: 12},
			{Title: "", Width: 4},
		}),
		table.WithHeight(12),
	)

	changes := m.changes
	mgr.Subscribe(func() { *changes++ })

	if mgr.CurrentTheme() == nil {
		m.selectTheme(m.themeCursor)
		*m.changes = 0
		m.status.TakeTransition()
	}

	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForReload()
}

func (m Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	reloads := m.reloads
	return func() tea.Msg {
		r, ok := <-reloads
		if !ok {
			return nil
		}
		return reloadMsg{reload: r}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case reloadMsg:
		if msg.reload.Name == m.CurrentTheme() {
			m.manager.SetThemeDocument(msg.reload.Document, msg.reload.Path)
			m.message = fmt.Sprintf("reloaded %s from %s", msg.reload.Name, msg.reload.Path)
		}
		cmds = append(cmds, m.waitForReload())

	case ThemeChangedMsg:
		m.refresh()

	case transitionDoneMsg:
		m.fading = false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.NextTheme):
			m.selectTheme(m.themeCursor + 1)

		case key.Matches(msg, m.keys.PrevTheme):
			m.selectTheme(m.themeCursor - 1)

		case key.Matches(msg, m.keys.Reload):
			m.selectTheme(m.themeCursor)

		case key.Matches(msg, m.keys.NextIndex):
			m.manager.SetThemeIndex((m.manager.CurrentThemeIndex() + 1) % m.variants)

		case key.Matches(msg, m.keys.PrevIndex):
			m.manager.SetThemeIndex((m.manager.CurrentThemeIndex() + m.variants - 1) % m.variants)

		case key.Matches(msg, m.keys.CycleState):
			m.button.SetState(nextState(m.button.State()))
		}
	}

	if *m.changes > 0 {
		*m.changes = 0
		changed := ThemeChangedMsg{Name: m.CurrentTheme(), Index: m.manager.CurrentThemeIndex()}
		cmds = append(cmds, func() tea.Msg { return changed })
	}

	if m.status.TakeTransition() {
		m.fading = true
		cmds = append(cmds, tea.Tick(transitionDelay, func(time.Time) tea.Msg {
			return transitionDoneMsg{}
		}))
	}

	return m, tea.Batch(cmds...)
}

// selectTheme applies the theme at cursor i, wrapping around. A theme that
// fails to load leaves the previous one active.
func (m *Model) selectTheme(i int) {
	if len(m.themes) == 0 {
		return
	}
	i = ((i % len(m.themes)) + len(m.themes)) % len(m.themes)
	name := m.themes[i]

	p, ok := theme.FindTheme(m.manager.Bundle(), m.themeDir, name)
	if !ok {
		m.message = fmt.Sprintf("theme %s not found", name)
		return
	}

	before := *m.changes
	m.manager.SetTheme(name, p)
	if *m.changes == before {
		m.message = fmt.Sprintf("theme %s could not be loaded", name)
		return
	}

	m.themeCursor = i
	m.message = ""
}

func nextState(s picker.State) picker.State {
	switch s {
	case picker.StateNormal:
		return picker.StateHighlighted
	case picker.StateHighlighted:
		return picker.StateSelected
	case picker.StateSelected:
		return picker.StateDisabled
	default:
		return picker.StateNormal
	}
}

// rebuilds everything that is not a self-updating widget
func (m *Model) refresh() {
	m.styles = NewStyles(m.manager)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.Inherit(m.styles.Header).BorderBottom(true)
	ts.Selected = m.styles.Selected
	m.palette.SetStyles(ts)
	m.palette.SetRows(paletteRows(m.manager.CurrentTheme()))

	m.status.Text = fmt.Sprintf("%s · variant %d/%d · %s",
		m.CurrentTheme(), m.manager.CurrentThemeIndex()+1, m.variants, m.status.Style())
}

// lists every colour token in doc with a swatch
func paletteRows(doc theme.Document) []table.Row {
	var rows []table.Row
	for _, kp := range doc.Keys() {
		v, _ := doc.ValueForKeyPath(kp)
		s, ok := v.(string)
		if !ok {
			continue
		}
		c, err := theme.ParseColor(s)
		if err != nil {
			continue
		}
		swatch := lipgloss.NewStyle().Background(c.Lipgloss()).Render("    ")
		rows = append(rows, table.Row{kp, c.Hex(), swatch})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	return rows
}

// CurrentTheme is the name of the applied theme, empty before the first one.
func (m Model) CurrentTheme() string {
	if len(m.themes) == 0 || m.manager.CurrentTheme() == nil {
		return ""
	}
	return m.themes[m.themeCursor]
}

func (m Model) CurrentIndex() int {
	return m.manager.CurrentThemeIndex()
}

func (m Model) Message() string {
	return m.message
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	leftWidth := m.width / 3
	if leftWidth < 24 {
		leftWidth = 24
	}
	rightWidth := m.width - leftWidth - 6
	if rightWidth < 30 {
		rightWidth = 30
	}

	left := m.styles.Container.Width(leftWidth).Render(m.renderThemeList(leftWidth))
	right := m.styles.Container.Width(rightWidth).Render(m.renderPreview())
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var b strings.Builder
	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(m.styles.TUISubtitle.Render("Preview and switch themes"))
	b.WriteString("\n\n")
	b.WriteString(main)
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(m.styles.Warning.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(m.status.View(m.width, m.fading))
	b.WriteString("\n")
	b.WriteString(m.styles.TUIHelp.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) renderThemeList(width int) string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render("Themes"))
	b.WriteString("\n\n")

	for i, name := range m.themes {
		prefix := "  "
		style := m.styles.TUISubtitle
		if i == m.themeCursor && m.manager.CurrentTheme() != nil {
			prefix = "▶ "
			style = m.styles.Selected
		}
		b.WriteString(style.Width(width - 4).Render(prefix + name))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderPreview() string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render("Preview"))
	b.WriteString("  ")
	b.WriteString(m.accent.View())
	b.WriteString("  ")
	b.WriteString(m.button.View())
	b.WriteString(m.styles.Muted.Render(" " + m.button.State().String()))
	b.WriteString("\n\n")

	for _, line := range []struct {
		style lipgloss.Style
		text  string
	}{
		{m.styles.Success, "✓ success"},
		{m.styles.Warning, "! warning"},
		{m.styles.Error, "✗ error"},
		{m.styles.Info, "i info"},
	} {
		b.WriteString(line.style.Render(line.text))
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	if logo := m.logo.View(); logo != "" {
		b.WriteString(logo)
		b.WriteString("\n\n")
	}

	b.WriteString(m.palette.View())

	return b.String()
}
