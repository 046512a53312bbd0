package picker

import (
	"image/color"

	"themeshift/internal/theme"
)

// Color resolves the colour token stored at keyPath.
func Color(m *theme.Manager, keyPath string) *Picker[theme.Color] {
	return FromKeyPath(m, keyPath, (*theme.Manager).ColorForKeyPath)
}

// Colors resolves one colour token per theme index.
func Colors(m *theme.Manager, tokens ...string) *Picker[theme.Color] {
	return FromTokens(m, tokens, (*theme.Manager).ColorFromList)
}

// RawColor is Color exposing the low level color.NRGBA handle.
func RawColor(m *theme.Manager, keyPath string) *Picker[color.NRGBA] {
	return FromKeyPath(m, keyPath, rawColorForKeyPath)
}

// RawColors is Colors exposing the low level color.NRGBA handle.
func RawColors(m *theme.Manager, tokens ...string) *Picker[color.NRGBA] {
	return FromTokens(m, tokens, rawColorFromList)
}

func rawColorForKeyPath(m *theme.Manager, keyPath string) (color.NRGBA, bool) {
	c, ok := m.ColorForKeyPath(keyPath)
	if !ok {
		return color.NRGBA{}, false
	}
	return c.NRGBA(), true
}

func rawColorFromList(m *theme.Manager, tokens []string) (color.NRGBA, bool) {
	c, ok := m.ColorFromList(tokens)
	if !ok {
		return color.NRGBA{}, false
	}
	return c.NRGBA(), true
}
