package theme

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a parsed theme colour with straight (non premultiplied) alpha.
type Color struct {
	colorful.Color
	Alpha float64
}

// ParseColor parses an RGBA hex token: #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
// The leading '#' is optional.
func ParseColor(token string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(token), "#")

	alpha := 1.0
	switch len(hex) {
	case 3, 6:
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(hex[3:], 2), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: invalid color %q", ErrParseFailure, token)
		}
		alpha = float64(a) / 255
		hex = hex[:3]
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: invalid color %q", ErrParseFailure, token)
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("%w: invalid color %q", ErrParseFailure, token)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: invalid color %q", ErrParseFailure, token)
	}

	return Color{Color: c, Alpha: alpha}, nil
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(token string) Color {
	c, err := ParseColor(token)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any image colour, unpremultiplying its alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		Color: colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255},
		Alpha: float64(n.A) / 255,
	}
}

// Hex renders the colour as #rrggbb, or #rrggbbaa when translucent.
func (c Color) Hex() string {
	if c.Alpha >= 1 {
		return c.Color.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Color.Hex(), c.alpha8())
}

// Lipgloss converts the colour for terminal rendering. Terminals have no
// alpha channel so only the opaque part is kept.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Color.Hex())
}

// NRGBA returns the low level colour handle.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Color.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.alpha8()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) alpha8() uint8 {
	return uint8(math.Round(clamp01(c.Alpha) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
