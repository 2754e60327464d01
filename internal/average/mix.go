package average

import (
	"math"

	"github.com/amonks/colormix/internal/color"
	"github.com/pkg/errors"
)

// MixRatio is the weight given to the running result at each step of [Mix]
// over n colors: 1/n, truncated to a whole percentage.
func MixRatio(n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	return math.Floor(100/float64(n)) / 100
}

// Mix folds over input, blending the running result with each following
// color. The running result is weighted by [MixRatio] and the new color by
// the remainder, the way a stylesheet preprocessor's mix() weighs its first
// argument. The result is rounded to 8 bits after every step.
func Mix(input []color.RGB) (color.RGB, error) {
	if len(input) == 0 {
		return color.RGB{}, ErrEmptyInput
	}

	ratio := MixRatio(len(input))
	if math.IsNaN(ratio) {
		return color.RGB{}, errors.Wrapf(ErrUnexpected, "mix ratio for %d colors", len(input))
	}
	// Unreachable for any positive n.
	if ratio < 0 || ratio > 1 {
		return color.RGB{}, errors.Wrapf(ErrRatioOutOfRange, "ratio %f", ratio)
	}

	acc := input[0]
	for _, c := range input[1:] {
		acc = color.FromColorful(c.Colorful().BlendRgb(acc.Colorful(), ratio))
	}
	return acc, nil
}
