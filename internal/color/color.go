// Package color holds the 8-bit RGB color model used throughout colormix,
// its HSL counterpart, and their CSS representations.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Black is the fallback color substituted for any aggregate that could not
// be computed.
var Black = RGB{0, 0, 0}

// RGB is a color with three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// HSL is a color in the hue/saturation/lightness model.
type HSL struct {
	// [0-360)
	H float64
	// [0-100]
	S, L float64
}

// FromColorful rounds a go-colorful color to 8-bit channels, clamping
// anything outside the sRGB gamut.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Colorful converts c to go-colorful's float representation.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func (c RGB) HSL() HSL {
	h, s, l := c.Colorful().Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// CSS formats c as a CSS rgb() function.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

func (c HSL) RGB() RGB {
	return FromColorful(colorful.Hsl(c.H, c.S/100, c.L/100))
}

// CSS formats c as a CSS hsl() function with whole-number components.
func (c HSL) CSS() string {
	h := int(math.Round(c.H)) % 360
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, int(math.Round(c.S)), int(math.Round(c.L)))
}

// ParseHex reads a color in #RRGGBB or #RGB form.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "parsing color %q", s)
	}
	return FromColorful(c), nil
}
