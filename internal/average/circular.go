package average

import (
	"math"

	"github.com/amonks/colormix/internal/color"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// UndefinedHue is the hue given to a [CircularMean] whose hue vectors cancel
// out, as with two complementary colors.
const UndefinedHue = 0.0

// minResultant is the shortest mean hue vector that still has a direction.
const minResultant = 1e-9

// CircularMean averages saturation and lightness arithmetically and hue as
// an angle: each hue becomes a unit vector, the vectors are averaged, and the
// mean hue is the direction of the result. When the mean vector is too short
// to have a direction, the hue is [UndefinedHue].
func CircularMean(input []color.RGB) (color.RGB, error) {
	if len(input) == 0 {
		return color.RGB{}, ErrEmptyInput
	}

	var (
		hues = make([]float64, len(input))
		sats = make([]float64, len(input))
		lums = make([]float64, len(input))
	)
	for i, c := range input {
		hsl := c.HSL()
		hues[i] = hsl.H * math.Pi / 180
		sats[i] = hsl.S
		lums[i] = hsl.L
	}

	s, l := stat.Mean(sats, nil), stat.Mean(lums, nil)
	for _, v := range []float64{s, l} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return color.RGB{}, errors.Wrapf(ErrUnexpected, "mean component %f", v)
		}
		// Unreachable: the mean of percentages is a percentage.
		if v < 0 || v > 100 {
			return color.RGB{}, errors.Wrapf(ErrAverageOutOfRange, "mean component %f", v)
		}
	}

	h, err := meanHue(hues)
	if err != nil {
		return color.RGB{}, err
	}

	return color.HSL{H: h, S: s, L: l}.RGB(), nil
}

// meanHue returns the circular mean of angles given in radians, in degrees
// normalized into [0, 360).
func meanHue(angles []float64) (float64, error) {
	var x, y float64
	for _, a := range angles {
		x += math.Cos(a)
		y += math.Sin(a)
	}
	n := float64(len(angles))
	if math.Hypot(x/n, y/n) < minResultant {
		return UndefinedHue, nil
	}

	h := math.Atan2(y, x) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	if math.IsNaN(h) {
		return 0, errors.Wrap(ErrAngleOutOfRange, "mean hue is NaN")
	}
	if h < 0 || h >= 360 {
		return 0, errors.Wrapf(ErrAngleOutOfRange, "mean hue %f", h)
	}
	return h, nil
}
