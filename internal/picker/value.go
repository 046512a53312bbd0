package picker

import (
	"themeshift/internal/theme"
)

// Float resolves a metric such as a corner radius or padding.
func Float(m *theme.Manager, keyPath string) *Picker[float64] {
	return FromKeyPath(m, keyPath, (*theme.Manager).NumberForKeyPath)
}

func Floats(m *theme.Manager, values ...float64) *Picker[float64] {
	return FromList(m, values)
}

func String(m *theme.Manager, keyPath string) *Picker[string] {
	return FromKeyPath(m, keyPath, (*theme.Manager).StringForKeyPath)
}

func Strings(m *theme.Manager, values ...string) *Picker[string] {
	return FromList(m, values)
}

// Dictionary resolves a nested mapping of the current document.
func Dictionary(m *theme.Manager, keyPath string) *Picker[theme.Document] {
	return FromKeyPath(m, keyPath, (*theme.Manager).DictionaryForKeyPath)
}

// Dictionaries selects one literal mapping per theme index.
func Dictionaries(m *theme.Manager, docs ...theme.Document) *Picker[theme.Document] {
	return FromList(m, docs)
}
