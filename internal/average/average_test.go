package average_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/amonks/colormix/internal/average"
	"github.com/amonks/colormix/internal/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type aggregate func([]color.RGB) (color.RGB, error)

var aggregates = map[string]aggregate{
	"mean":          average.Mean,
	"mix":           average.Mix,
	"circular mean": average.CircularMean,
}

var samples = []color.RGB{
	{0, 0, 0},
	{255, 255, 255},
	{255, 0, 0},
	{12, 200, 99},
	{90, 0, 200},
	{128, 128, 128},
	{250, 250, 249},
}

func TestEmptyInput(t *testing.T) {
	for name, f := range aggregates {
		t.Run(name, func(t *testing.T) {
			_, err := f(nil)
			assert.True(t, errors.Is(err, average.ErrEmptyInput), "got %v", err)

			_, err = f([]color.RGB{})
			assert.True(t, errors.Is(err, average.ErrEmptyInput), "got %v", err)
		})
	}
}

func TestSingleElement(t *testing.T) {
	for name, f := range aggregates {
		for _, c := range samples {
			t.Run(fmt.Sprintf("%s of %s", name, c), func(t *testing.T) {
				got, err := f([]color.RGB{c})
				assert.NoError(t, err)
				assert.Equal(t, c, got)
			})
		}
	}
}

func TestSingleElementHue(t *testing.T) {
	for _, c := range samples {
		got, err := average.CircularMean([]color.RGB{c})
		assert.NoError(t, err)
		assert.InDelta(t, c.HSL().H, got.HSL().H, 0.5, "hue of %s", c)
	}
}

func TestIdenticalPair(t *testing.T) {
	for name, f := range aggregates {
		for _, c := range samples {
			t.Run(fmt.Sprintf("%s of %s", name, c), func(t *testing.T) {
				got, err := f([]color.RGB{c, c})
				assert.NoError(t, err)
				assert.Equal(t, c, got)
			})
		}
	}
}

func TestMean(t *testing.T) {
	got, err := average.Mean([]color.RGB{{10, 20, 30}, {11, 21, 31}})
	assert.NoError(t, err)
	assert.Equal(t, color.RGB{10, 20, 30}, got)

	got, err = average.Mean([]color.RGB{{255, 255, 255}, {255, 255, 255}, {0, 0, 0}})
	assert.NoError(t, err)
	assert.Equal(t, color.RGB{170, 170, 170}, got)
}

func TestMixRatio(t *testing.T) {
	for n, want := range map[int]float64{
		1: 1,
		2: 0.5,
		3: 0.33,
		4: 0.25,
		7: 0.14,
	} {
		assert.Equal(t, want, average.MixRatio(n), "ratio for %d", n)
	}
	assert.True(t, math.IsNaN(average.MixRatio(0)))
}

func TestMix(t *testing.T) {
	got, err := average.Mix([]color.RGB{{0, 0, 0}, {255, 255, 255}})
	assert.NoError(t, err)
	assert.Equal(t, color.RGB{128, 128, 128}, got)

	got, err = average.Mix([]color.RGB{{0, 0, 0}, {255, 255, 255}, {255, 255, 255}})
	assert.NoError(t, err)
	assert.Equal(t, color.RGB{227, 227, 227}, got)
}

func TestCircularMean(t *testing.T) {
	red, blue := color.RGB{255, 0, 0}, color.RGB{0, 0, 255}

	got, err := average.CircularMean([]color.RGB{red, blue})
	assert.NoError(t, err)
	assert.Equal(t, color.RGB{255, 0, 255}, got, "hue wraps through 0 instead of passing 120")
}

func TestCircularMeanUndefinedHue(t *testing.T) {
	red, cyan := color.RGB{255, 0, 0}, color.RGB{0, 255, 255}
	assert.InDelta(t, 180, cyan.HSL().H, 1e-9)

	got, err := average.CircularMean([]color.RGB{red, cyan})
	assert.NoError(t, err)
	assert.InDelta(t, average.UndefinedHue, got.HSL().H, 1e-9)
	assert.Equal(t, red, got)
}

func TestCircularMeanBalancedHues(t *testing.T) {
	red, green, blue := color.RGB{255, 0, 0}, color.RGB{0, 255, 0}, color.RGB{0, 0, 255}

	got, err := average.CircularMean([]color.RGB{red, green, blue})
	assert.NoError(t, err)
	assert.Equal(t, red, got)
}

func TestCircularMeanNearZero(t *testing.T) {
	// Hues just either side of 0 must average to red, not to cyan.
	a, b := color.HSL{H: 350, S: 100, L: 50}.RGB(), color.HSL{H: 10, S: 100, L: 50}.RGB()

	got, err := average.CircularMean([]color.RGB{a, b})
	assert.NoError(t, err)
	h := got.HSL().H
	assert.True(t, h < 1 || h > 359, "hue %f", h)
}
