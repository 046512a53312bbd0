package picker

import (
	"image"

	"themeshift/internal/theme"
)

// Image loads the image named at keyPath.
func Image(m *theme.Manager, keyPath string) *Picker[image.Image] {
	return FromKeyPath(m, keyPath, (*theme.Manager).ImageForKeyPath)
}

// ImageNames loads one bundled image per theme index.
func ImageNames(m *theme.Manager, names ...string) *Picker[image.Image] {
	return FromTokens(m, names, (*theme.Manager).ImageFromList)
}

// Images selects one preloaded image per theme index.
func Images(m *theme.Manager, images ...image.Image) *Picker[image.Image] {
	return FromList(m, images)
}
