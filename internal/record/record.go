// Package record builds sample sets of random colors, reduces each set with
// every aggregate in package average, and renders the results as CSS and
// HTML.
package record

import (
	"github.com/amonks/colormix/internal/average"
	"github.com/amonks/colormix/internal/color"
	"go.uber.org/zap"
)

// A Record is one sample set and its three aggregates. Records are built
// once and never modified.
type Record struct {
	ID           string
	Input        []color.RGB
	Mean         color.RGB
	Mix          color.RGB
	CircularMean color.RGB
}

// An Aggregate names one of the reductions carried by a Record. Its Class is
// the CSS class used for the aggregate's swatch.
type Aggregate struct {
	Name  string
	Class string
	fn    func([]color.RGB) (color.RGB, error)
	get   func(Record) color.RGB
	set   func(*Record, color.RGB)
}

// Aggregates lists the reductions in the order they are rendered.
var Aggregates = []Aggregate{
	{
		Name:  "rgb mean",
		Class: "rgb-avg",
		fn:    average.Mean,
		get:   func(r Record) color.RGB { return r.Mean },
		set:   func(r *Record, c color.RGB) { r.Mean = c },
	},
	{
		Name:  "blend mix",
		Class: "less-mix",
		fn:    average.Mix,
		get:   func(r Record) color.RGB { return r.Mix },
		set:   func(r *Record, c color.RGB) { r.Mix = c },
	},
	{
		Name:  "circular hsl mean",
		Class: "hsl-geo",
		fn:    average.CircularMean,
		get:   func(r Record) color.RGB { return r.CircularMean },
		set:   func(r *Record, c color.RGB) { r.CircularMean = c },
	},
}

// Of returns the aggregate's color in r.
func (a Aggregate) Of(r Record) color.RGB {
	return a.get(r)
}

// Build computes every aggregate of input. An aggregate that fails is logged
// as a warning and replaced with fallback, so Build always returns a
// complete Record.
func Build(log *zap.Logger, id string, input []color.RGB, fallback color.RGB) Record {
	r := Record{ID: id, Input: input}
	for _, a := range Aggregates {
		c, err := a.fn(input)
		if err != nil {
			log.Warn("aggregate failed; using fallback",
				zap.String("record", id),
				zap.String("aggregate", a.Name),
				zap.Stringers("input", input),
				zap.Stringer("fallback", fallback),
				zap.Error(err))
			c = fallback
		}
		a.set(&r, c)
	}
	return r
}
