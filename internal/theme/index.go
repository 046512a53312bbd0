package theme

import (
	"fmt"
	"image"

	"go.uber.org/zap"
)

func elementFor[T any](m *Manager, list []T) (T, error) {
	var zero T
	i := m.currentThemeIndex
	if i < 0 || i >= len(list) {
		return zero, fmt.Errorf("%w: index %d, list length %d", ErrIndexOutOfRange, i, len(list))
	}
	return list[i], nil
}

// ElementFor returns the entry of list belonging to the current theme index,
// with one entry per theme in switching order.
func ElementFor[T any](m *Manager, list []T) (T, bool) {
	v, err := elementFor(m, list)
	if err != nil {
		m.missIndex("ElementFor", list, err)
		return v, false
	}
	return v, true
}

func (m *Manager) missIndex(op string, list any, err error) {
	m.logger.Warn("theme element not found",
		zap.String("op", op),
		zap.Any("list", list),
		zap.Int("index", m.currentThemeIndex),
		zap.Error(err),
	)
}

// ColorFromList parses the colour token for the current index.
func (m *Manager) ColorFromList(list []string) (Color, bool) {
	rgba, err := elementFor(m, list)
	if err != nil {
		m.missIndex("ColorFromList", list, err)
		return Color{}, false
	}

	c, err := ParseColor(rgba)
	if err != nil {
		m.logger.Warn("theme color not convertible",
			zap.String("op", "ColorFromList"),
			zap.String("rgba", rgba),
			zap.Strings("list", list),
			zap.Int("index", m.currentThemeIndex),
			zap.Error(err),
		)
		return Color{}, false
	}
	return c, true
}

// ImageFromList loads the bundled image named for the current index.
func (m *Manager) ImageFromList(list []string) (image.Image, bool) {
	name, err := elementFor(m, list)
	if err != nil {
		m.missIndex("ImageFromList", list, err)
		return nil, false
	}

	img, file, err := loadImage(m.bundle, MainBundle(), name)
	if err != nil {
		m.logger.Warn("theme image not found",
			zap.String("op", "ImageFromList"),
			zap.String("name", name),
			zap.String("file", file),
			zap.Strings("list", list),
			zap.Int("index", m.currentThemeIndex),
			zap.Error(err),
		)
		return nil, false
	}
	return img, true
}
