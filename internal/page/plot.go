package page

import (
	"bytes"
	"image/color"

	"github.com/amonks/colormix/internal/record"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var seriesColors = []color.Color{
	color.RGBA{R: 0x26, G: 0x8B, B: 0xD2, A: 255},
	color.RGBA{R: 0xCB, G: 0x4B, B: 0x16, A: 255},
	color.RGBA{R: 0x85, G: 0x99, B: 0x00, A: 255},
}

// huePoints places one point per record: set size on X, nudged apart per
// series so overlapping aggregates stay visible, and the aggregate's hue on
// Y.
func huePoints(records []record.Record, a record.Aggregate, nudge float64) plotter.XYs {
	pts := make(plotter.XYs, len(records))
	for i, r := range records {
		pts[i].X = float64(len(r.Input)) + nudge
		pts[i].Y = a.Of(r).HSL().H
	}
	return pts
}

// huePlot renders the hue of every aggregate against set size as a PNG.
func huePlot(records []record.Record) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Aggregate hue"
	p.X.Label.Text = "Set size"
	p.Y.Label.Text = "Hue (degrees)"
	p.Y.Min, p.Y.Max = 0, 360
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, a := range record.Aggregates {
		s, err := plotter.NewScatter(huePoints(records, a, 0.15*float64(i-1)))
		if err != nil {
			return nil, errors.Wrapf(err, "plotting %s", a.Name)
		}
		s.GlyphStyle.Color = seriesColors[i%len(seriesColors)]
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(s)
		p.Legend.Add(a.Name, s)
	}

	c := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(25*vg.Centimeter, 12*vg.Centimeter),
		vgimg.UseBackgroundColor(color.White),
	)}
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "encoding plot")
	}
	return buf.Bytes(), nil
}
