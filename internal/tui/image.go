package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"

	"themeshift/internal/picker"
	"themeshift/internal/theme"
)

// ImageView renders a themed image with half-block cells, two pixel rows
// per terminal line.
type ImageView struct {
	themed

	source picker.Resolvable[image.Image]
	width  int
	img    image.Image
}

func NewImageView(m *theme.Manager, width int, source picker.Resolvable[image.Image]) *ImageView {
	v := &ImageView{source: source, width: width}
	v.bind(m, v.apply)
	return v
}

func (v *ImageView) apply() {
	var img image.Image
	if resolveInto(v.source, &img) && img != nil {
		v.img = imaging.Resize(img, v.width, 0, imaging.Box)
	}
}

// Bounds is the size of the scaled image, zero when nothing resolved yet.
func (v *ImageView) Bounds() image.Rectangle {
	if v.img == nil {
		return image.Rectangle{}
	}
	return v.img.Bounds()
}

func (v *ImageView) View() string {
	if v.img == nil {
		return ""
	}

	b := v.img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			cell := lipgloss.NewStyle().Foreground(theme.FromColor(v.img.At(x, y)).Lipgloss())
			if y+1 < b.Max.Y {
				cell = cell.Background(theme.FromColor(v.img.At(x, y+1)).Lipgloss())
			}
			sb.WriteString(cell.Render("▀"))
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
