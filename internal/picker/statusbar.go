package picker

import (
	"themeshift/internal/theme"
)

// StatusBarStyle says whether status bar content is drawn dark or light.
type StatusBarStyle int

const (
	StatusBarStyleDefault StatusBarStyle = iota
	StatusBarStyleLightContent
)

// tokens accepted in theme documents
const (
	TokenStatusBarStyleDefault      = "UIStatusBarStyleDefault"
	TokenStatusBarStyleLightContent = "UIStatusBarStyleLightContent"
)

func (s StatusBarStyle) String() string {
	if s == StatusBarStyleLightContent {
		return TokenStatusBarStyleLightContent
	}
	return TokenStatusBarStyleDefault
}

// ParseStatusBarStyle maps a token to a style; unknown tokens are default.
func ParseStatusBarStyle(token string) StatusBarStyle {
	switch token {
	case TokenStatusBarStyleLightContent:
		return StatusBarStyleLightContent
	default:
		return StatusBarStyleDefault
	}
}

// StatusBarStylePicker resolves a StatusBarStyle. A literal style list, when
// it has an entry for the current index, always wins over the token.
type StatusBarStylePicker struct {
	manager *theme.Manager
	styles  []StatusBarStyle
	token   *Picker[string]

	// Animated asks consumers to animate the style transition.
	Animated bool
}

// StatusBarStyleFromKeyPath maps the token stored at keyPath.
func StatusBarStyleFromKeyPath(m *theme.Manager, keyPath string) *StatusBarStylePicker {
	return &StatusBarStylePicker{
		manager:  m,
		token:    String(m, keyPath),
		Animated: true,
	}
}

// StatusBarStyles selects one literal style per theme index.
func StatusBarStyles(m *theme.Manager, styles ...StatusBarStyle) *StatusBarStylePicker {
	return &StatusBarStylePicker{
		manager:  m,
		styles:   styles,
		Animated: true,
	}
}

// StatusBarStyleTokens maps one token per theme index.
func StatusBarStyleTokens(m *theme.Manager, tokens ...string) *StatusBarStylePicker {
	return &StatusBarStylePicker{
		manager:  m,
		token:    Strings(m, tokens...),
		Animated: true,
	}
}

// WithAnimated returns a copy with the animation flag set to animated.
func (p *StatusBarStylePicker) WithAnimated(animated bool) *StatusBarStylePicker {
	dup := p.Duplicate()
	dup.Animated = animated
	return dup
}

// WithKeyPathFallback returns a copy that maps the token at keyPath when the
// literal style list has no entry for the current theme index.
func (p *StatusBarStylePicker) WithKeyPathFallback(keyPath string) *StatusBarStylePicker {
	if p == nil {
		return nil
	}
	dup := p.Duplicate()
	dup.token = String(p.manager, keyPath)
	return dup
}

// Resolve always yields a style, falling back to the default; ok reports
// whether it came from the theme rather than the fallback.
func (p *StatusBarStylePicker) Resolve() (StatusBarStyle, bool) {
	if p == nil || p.manager == nil {
		return StatusBarStyleDefault, false
	}

	if p.styles != nil {
		i := p.manager.CurrentThemeIndex()
		if i >= 0 && i < len(p.styles) {
			return p.styles[i], true
		}
	}

	if p.token != nil {
		if token, ok := p.token.Resolve(); ok {
			return ParseStatusBarStyle(token), true
		}
	}

	return StatusBarStyleDefault, false
}

func (p *StatusBarStylePicker) Duplicate() *StatusBarStylePicker {
	if p == nil {
		return nil
	}
	dup := *p
	dup.token = p.token.Duplicate()
	return &dup
}
