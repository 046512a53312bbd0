// Package picker binds style values lazily to a theme.Manager.
//
// A picker records how a value is found (a key path into the current
// document, or one literal per theme index) and only looks it up when
// Resolve is called, so pickers can be built before any theme is loaded and
// always reflect the theme that is current at resolution time.
//
//	m := theme.NewManager()
//	border := picker.Color(m, "ui.border")
//	m.Subscribe(func() {
//		if c, ok := border.Resolve(); ok {
//			box = box.BorderForeground(c.Lipgloss())
//		}
//	})
//	m.SetThemeFromBundle("nord")
package picker

import (
	"themeshift/internal/theme"
)

// Source identifies how a picker finds its value.
type Source int

const (
	// key path into the current document
	SourceKeyPath Source = iota
	// literal values, one per theme index
	SourceList
	// string tokens, one per theme index, converted after selection
	SourceTokens
)

func (s Source) String() string {
	switch s {
	case SourceKeyPath:
		return "key path"
	case SourceList:
		return "list"
	case SourceTokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// Resolvable is anything that yields a style value on demand.
type Resolvable[T any] interface {
	Resolve() (T, bool)
}

// Picker lazily resolves a value of type T from a theme.Manager. It is
// immutable once built; Resolve never caches.
type Picker[T any] struct {
	manager *theme.Manager
	source  Source

	keyPath string
	values  []T
	tokens  []string

	byKeyPath func(*theme.Manager, string) (T, bool)
	byTokens  func(*theme.Manager, []string) (T, bool)
}

// FromKeyPath builds a picker resolving keyPath with lookup.
func FromKeyPath[T any](m *theme.Manager, keyPath string, lookup func(*theme.Manager, string) (T, bool)) *Picker[T] {
	return &Picker[T]{
		manager:   m,
		source:    SourceKeyPath,
		keyPath:   keyPath,
		byKeyPath: lookup,
	}
}

// FromList builds a picker selecting values[CurrentThemeIndex].
func FromList[T any](m *theme.Manager, values []T) *Picker[T] {
	return &Picker[T]{
		manager: m,
		source:  SourceList,
		values:  values,
	}
}

// FromTokens builds a picker converting the token for the current index
// with convert.
func FromTokens[T any](m *theme.Manager, tokens []string, convert func(*theme.Manager, []string) (T, bool)) *Picker[T] {
	return &Picker[T]{
		manager:  m,
		source:   SourceTokens,
		tokens:   tokens,
		byTokens: convert,
	}
}

// Resolve looks the value up in the manager's current state.
func (p *Picker[T]) Resolve() (T, bool) {
	var zero T
	if p == nil || p.manager == nil {
		return zero, false
	}

	switch p.source {
	case SourceKeyPath:
		return p.byKeyPath(p.manager, p.keyPath)
	case SourceList:
		return theme.ElementFor(p.manager, p.values)
	case SourceTokens:
		return p.byTokens(p.manager, p.tokens)
	default:
		return zero, false
	}
}

// Duplicate returns an independent picker resolving exactly like p.
func (p *Picker[T]) Duplicate() *Picker[T] {
	if p == nil {
		return nil
	}
	dup := *p
	return &dup
}

func (p *Picker[T]) Source() Source {
	return p.source
}

// KeyPath returns the key path of a SourceKeyPath picker.
func (p *Picker[T]) KeyPath() string {
	return p.keyPath
}

func (p *Picker[T]) Manager() *theme.Manager {
	return p.manager
}
