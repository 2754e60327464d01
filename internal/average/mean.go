// Package average reduces a set of colors to a single representative color.
//
// Three reductions are provided: [Mean] averages RGB channels, [Mix] folds
// the colors together with a fixed blend weight, and [CircularMean] averages
// in HSL space, treating hue as an angle.
//
// Every reduction returns an error rather than a color when it cannot
// produce a meaningful result; callers decide what to substitute.
package average

import (
	"math"

	"github.com/amonks/colormix/internal/color"
	"github.com/pkg/errors"
)

// Mean averages each RGB channel independently, truncating toward zero.
func Mean(input []color.RGB) (color.RGB, error) {
	if len(input) == 0 {
		return color.RGB{}, ErrEmptyInput
	}

	var r, g, b uint64
	for _, c := range input {
		r += uint64(c.R)
		g += uint64(c.G)
		b += uint64(c.B)
	}
	n := uint64(len(input))
	r, g, b = r/n, g/n, b/n

	// Unreachable: the mean of 8-bit values is an 8-bit value.
	for _, v := range []uint64{r, g, b} {
		if v > math.MaxUint8 {
			return color.RGB{}, errors.Wrapf(ErrAverageOutOfRange, "channel %d", v)
		}
	}

	return color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
