package tui

import (
	"github.com/charmbracelet/lipgloss"

	"themeshift/internal/picker"
	"themeshift/internal/theme"
)

// themed keeps a widget in sync with a manager: refresh runs once when the
// widget is bound and again on every theme change until Close.
type themed struct {
	manager *theme.Manager
	sub     theme.Subscription
}

func (t *themed) bind(m *theme.Manager, refresh func()) {
	t.manager = m
	t.sub = m.Subscribe(refresh)
	refresh()
}

// Close stops the widget from following theme changes.
func (t *themed) Close() {
	t.sub.Unsubscribe()
}

// resolves p into dst, leaving dst alone when p is nil or resolves absent
func resolveInto[T any](p picker.Resolvable[T], dst *T) bool {
	if p == nil {
		return false
	}
	v, ok := p.Resolve()
	if ok {
		*dst = v
	}
	return ok
}

// Label is a line of text whose colors and padding follow the theme.
type Label struct {
	themed

	Text string

	foreground picker.Resolvable[theme.Color]
	background picker.Resolvable[theme.Color]
	padding    picker.Resolvable[float64]

	fg, bg   *theme.Color
	padCells float64
	bold     bool
}

func NewLabel(m *theme.Manager, text string) *Label {
	l := &Label{Text: text}
	l.bind(m, l.apply)
	return l
}

func (l *Label) SetForeground(p picker.Resolvable[theme.Color]) *Label {
	l.foreground = p
	l.apply()
	return l
}

func (l *Label) SetBackground(p picker.Resolvable[theme.Color]) *Label {
	l.background = p
	l.apply()
	return l
}

func (l *Label) SetPadding(p picker.Resolvable[float64]) *Label {
	l.padding = p
	l.apply()
	return l
}

func (l *Label) SetBold(bold bool) *Label {
	l.bold = bold
	return l
}

func (l *Label) apply() {
	var c theme.Color
	if resolveInto(l.foreground, &c) {
		l.fg = &c
	}
	var b theme.Color
	if resolveInto(l.background, &b) {
		l.bg = &b
	}
	resolveInto(l.padding, &l.padCells)
}

// Foreground is the last resolved text color.
func (l *Label) Foreground() (theme.Color, bool) {
	if l.fg == nil {
		return theme.Color{}, false
	}
	return *l.fg, true
}

func (l *Label) Style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(l.bold)
	if l.fg != nil {
		s = s.Foreground(l.fg.Lipgloss())
	}
	if l.bg != nil {
		s = s.Background(l.bg.Lipgloss())
	}
	if l.padCells > 0 {
		s = s.Padding(0, int(l.padCells))
	}
	return s
}

func (l *Label) View() string {
	return l.Style().Render(l.Text)
}

// Button renders a title whose colors depend on its control state. States
// without their own picker fall back to the normal state's color.
type Button struct {
	themed

	Title string
	state picker.State

	foreground *picker.StatePicker[theme.Color]
	background *picker.StatePicker[theme.Color]

	fg map[picker.State]theme.Color
	bg map[picker.State]theme.Color
}

func NewButton(m *theme.Manager, title string) *Button {
	b := &Button{
		Title:      title,
		foreground: picker.EmptyStatePicker[theme.Color](),
		background: picker.EmptyStatePicker[theme.Color](),
		fg:         make(map[picker.State]theme.Color),
		bg:         make(map[picker.State]theme.Color),
	}
	b.bind(m, b.apply)
	return b
}

func (b *Button) SetForeground(p picker.Resolvable[theme.Color], state picker.State) *Button {
	b.foreground.SetPicker(p, state)
	b.apply()
	return b
}

func (b *Button) SetBackground(p picker.Resolvable[theme.Color], state picker.State) *Button {
	b.background.SetPicker(p, state)
	b.apply()
	return b
}

func (b *Button) SetState(s picker.State) {
	b.state = s
}

func (b *Button) State() picker.State {
	return b.state
}

func (b *Button) apply() {
	applyStates(b.foreground, b.fg)
	applyStates(b.background, b.bg)
}

func applyStates(sp *picker.StatePicker[theme.Color], cache map[picker.State]theme.Color) {
	for _, state := range sp.States() {
		p, _ := sp.Picker(state)
		var c theme.Color
		if resolveInto(p, &c) {
			cache[state] = c
		}
	}
}

func (b *Button) color(cache map[picker.State]theme.Color) (theme.Color, bool) {
	if c, ok := cache[b.state]; ok {
		return c, true
	}
	c, ok := cache[picker.StateNormal]
	return c, ok
}

func (b *Button) Style() lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2).Bold(b.state&picker.StateHighlighted != 0)
	if c, ok := b.color(b.fg); ok {
		s = s.Foreground(c.Lipgloss())
	}
	if c, ok := b.color(b.bg); ok {
		s = s.Background(c.Lipgloss())
	}
	if b.state&picker.StateDisabled != 0 {
		s = s.Faint(true)
	}
	return s
}

func (b *Button) View() string {
	return b.Style().Render(b.Title)
}

// StatusBar is a full width line whose contrast follows a status bar style.
// Animated style changes are reported once through TakeTransition.
type StatusBar struct {
	themed

	Text string

	styles *picker.StatusBarStylePicker
	style  picker.StatusBarStyle

	transition bool
}

func NewStatusBar(m *theme.Manager, text string, styles *picker.StatusBarStylePicker) *StatusBar {
	s := &StatusBar{Text: text, styles: styles}
	s.bind(m, s.apply)
	s.transition = false
	return s
}

func (s *StatusBar) SetStyles(p *picker.StatusBarStylePicker) {
	s.styles = p
	s.apply()
}

func (s *StatusBar) apply() {
	if s.styles == nil {
		return
	}
	style, ok := s.styles.Resolve()
	if !ok || style == s.style {
		return
	}
	s.style = style
	if s.styles.Animated {
		s.transition = true
	}
}

func (s *StatusBar) Style() picker.StatusBarStyle {
	return s.style
}

// TakeTransition reports and clears a pending animated style change.
func (s *StatusBar) TakeTransition() bool {
	t := s.transition
	s.transition = false
	return t
}

func (s *StatusBar) View(width int, fading bool) string {
	st := lipgloss.NewStyle().Width(width).Padding(0, 1)
	switch s.style {
	case picker.StatusBarStyleLightContent:
		st = st.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#1C1C1C"))
	default:
		st = st.Foreground(lipgloss.Color("#1C1C1C")).Background(lipgloss.Color("#E4E4E4"))
	}
	if fading {
		st = st.Faint(true)
	}
	return st.Render(s.Text)
}
