// Package color provides the packed 32-bit ARGB color value used throughout
// palettekit. Equality, hashing, and lookup all operate on the packed integer;
// two colors that pack to the same bits are the same color regardless of how
// they were constructed.
package color

import (
	"fmt"
	stdcolor "image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ARGB is a color packed into a single 32-bit value.
// Layout is 0xAARRGGBB, matching the common raster ordering.
type ARGB uint32

// Empty is the zero color: fully transparent black.
// It is the value carried by whole-collection change notifications.
const Empty ARGB = 0

// Channel shift offsets within the packed value.
const (
	shiftAlpha = 24
	shiftRed   = 16
	shiftGreen = 8
	shiftBlue  = 0
)

// New packs the four channels into an ARGB value.
func New(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<shiftAlpha |
		uint32(r)<<shiftRed |
		uint32(g)<<shiftGreen |
		uint32(b)<<shiftBlue)
}

// FromRGB packs an opaque color (alpha 0xFF).
func FromRGB(r, g, b uint8) ARGB {
	return New(0xFF, r, g, b)
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> shiftAlpha) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> shiftRed) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> shiftGreen) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c >> shiftBlue) }

// RGB returns the packed value with the alpha channel cleared.
func (c ARGB) RGB() ARGB { return c & 0x00FFFFFF }

// EqualRGB reports whether two colors match on the three non-alpha channels.
func (c ARGB) EqualRGB(other ARGB) bool {
	return c.RGB() == other.RGB()
}

// FromColor converts any image/color.Color to a packed ARGB value.
func FromColor(sc stdcolor.Color) ARGB {
	n := stdcolor.NRGBAModel.Convert(sc).(stdcolor.NRGBA)
	return New(n.A, n.R, n.G, n.B)
}

// Color returns the value as an image/color.Color.
func (c ARGB) Color() stdcolor.Color {
	return stdcolor.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// Colorful returns the value as a go-colorful color for color-space math.
// The alpha channel is not represented.
func (c ARGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

// Brightness returns the HSL lightness of the color in [0, 1].
func (c ARGB) Brightness() float64 {
	_, _, l := c.Colorful().Hsl()
	return l
}

// Hue returns the HSV hue of the color in degrees [0, 360).
func (c ARGB) Hue() float64 {
	h, _, _ := c.Colorful().Hsv()
	return h
}

// ParseHex parses a hex color string.
// Supports "#AARRGGBB", "#RRGGBB" and "#RGB" (with or without the leading #).
// Six and three digit forms are opaque.
func ParseHex(s string) (ARGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		// Short form: RGB -> RRGGBB
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
		fallthrough
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Empty, fmt.Errorf("invalid hex color: %s", s)
		}
		return ARGB(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Empty, fmt.Errorf("invalid hex color: %s", s)
		}
		return ARGB(v), nil
	default:
		return Empty, fmt.Errorf("invalid hex color length: %s", s)
	}
}

// Hex returns the color as a hex string: "#RRGGBB" when opaque,
// "#AARRGGBB" otherwise.
func (c ARGB) Hex() string {
	if c.Alpha() == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.Red(), c.Green(), c.Blue())
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.Alpha(), c.Red(), c.Green(), c.Blue())
}

// String returns the hex representation.
func (c ARGB) String() string {
	return c.Hex()
}
