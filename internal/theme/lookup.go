package theme

import (
	"fmt"
	"image"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

func (m *Manager) valueForKeyPath(keyPath string) (any, error) {
	if m.currentTheme == nil {
		return nil, ErrMissingTheme
	}
	v, ok := m.currentTheme.ValueForKeyPath(keyPath)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, keyPath)
	}
	return v, nil
}

// warns about a failed key path lookup
func (m *Manager) missKeyPath(op, keyPath string, err error) {
	m.logger.Warn("theme lookup failed",
		zap.String("op", op),
		zap.String("keyPath", keyPath),
		zap.Error(err),
	)
}

// ValueForKeyPath returns the raw value at keyPath in the current document.
func (m *Manager) ValueForKeyPath(keyPath string) (any, bool) {
	v, err := m.valueForKeyPath(keyPath)
	if err != nil {
		m.missKeyPath("ValueForKeyPath", keyPath, err)
		return nil, false
	}
	return v, true
}

func (m *Manager) stringForKeyPath(keyPath string) (string, error) {
	v, err := m.valueForKeyPath(keyPath)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not a string", ErrKeyNotFound, keyPath, v)
	}
	return s, nil
}

func (m *Manager) StringForKeyPath(keyPath string) (string, bool) {
	s, err := m.stringForKeyPath(keyPath)
	if err != nil {
		m.missKeyPath("StringForKeyPath", keyPath, err)
		return "", false
	}
	return s, true
}

// NumberForKeyPath accepts any numeric value the decoders produce.
func (m *Manager) NumberForKeyPath(keyPath string) (float64, bool) {
	v, err := m.valueForKeyPath(keyPath)
	if err == nil {
		err = checkNumeric(keyPath, v)
	}
	if err != nil {
		m.missKeyPath("NumberForKeyPath", keyPath, err)
		return 0, false
	}

	n, err := cast.ToFloat64E(v)
	if err != nil {
		m.missKeyPath("NumberForKeyPath", keyPath, fmt.Errorf("%w: %v", ErrKeyNotFound, err))
		return 0, false
	}
	return n, true
}

// strings and bools would be coerced by cast, but are not numbers here
func checkNumeric(keyPath string, v any) error {
	switch v.(type) {
	case string, bool, Document, []any, nil:
		return fmt.Errorf("%w: %s is %T, not a number", ErrKeyNotFound, keyPath, v)
	}
	return nil
}

func (m *Manager) DictionaryForKeyPath(keyPath string) (Document, bool) {
	v, err := m.valueForKeyPath(keyPath)
	if err != nil {
		m.missKeyPath("DictionaryForKeyPath", keyPath, err)
		return nil, false
	}
	d, ok := v.(Document)
	if !ok {
		m.missKeyPath("DictionaryForKeyPath", keyPath,
			fmt.Errorf("%w: %s is %T, not a dictionary", ErrKeyNotFound, keyPath, v))
		return nil, false
	}
	return d, true
}

// ColorForKeyPath parses the colour token stored at keyPath.
func (m *Manager) ColorForKeyPath(keyPath string) (Color, bool) {
	rgba, err := m.stringForKeyPath(keyPath)
	if err != nil {
		m.missKeyPath("ColorForKeyPath", keyPath, err)
		return Color{}, false
	}

	c, err := ParseColor(rgba)
	if err != nil {
		m.logger.Warn("theme color not convertible",
			zap.String("op", "ColorForKeyPath"),
			zap.String("keyPath", keyPath),
			zap.String("rgba", rgba),
			zap.Error(err),
		)
		return Color{}, false
	}
	return c, true
}

// ImageForKeyPath loads the image named at keyPath. With a sandbox theme
// path the image is read from that directory, otherwise from the bundle.
func (m *Manager) ImageForKeyPath(keyPath string) (image.Image, bool) {
	name, err := m.stringForKeyPath(keyPath)
	if err != nil {
		m.missKeyPath("ImageForKeyPath", keyPath, err)
		return nil, false
	}

	path := MainBundle()
	if m.currentThemePath != nil {
		path = *m.currentThemePath
	}

	img, file, err := loadImage(m.bundle, path, name)
	if err != nil {
		m.logger.Warn("theme image not found",
			zap.String("op", "ImageForKeyPath"),
			zap.String("keyPath", keyPath),
			zap.String("file", file),
			zap.Stringer("path", path),
			zap.Error(err),
		)
		return nil, false
	}
	return img, true
}
