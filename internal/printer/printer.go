// Package printer previews records in a terminal as rows of colored blocks.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/amonks/colormix/internal/color"
	"github.com/amonks/colormix/internal/record"
	"github.com/muesli/termenv"
)

const (
	swatch = "  "
	gutter = "  "
)

// Printer writes one row per record: the record id, its input swatches, and
// its aggregate swatches.
type Printer struct {
	out     io.Writer
	profile termenv.Profile
}

func New(out io.Writer, profile termenv.Profile) *Printer {
	return &Printer{out: out, profile: profile}
}

func (p *Printer) Print(records []record.Record) error {
	var keyLength, maxInputs int
	for _, r := range records {
		keyLength = max(keyLength, len(r.ID))
		maxInputs = max(maxInputs, len(r.Input))
	}

	for _, r := range records {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", keyLength-len(r.ID)))
		b.WriteString(color.RenderHash(r.ID))
		b.WriteString(gutter)
		for _, c := range r.Input {
			b.WriteString(p.block(c))
		}
		b.WriteString(strings.Repeat(swatch, maxInputs-len(r.Input)))
		b.WriteString(" → ")
		for _, a := range record.Aggregates {
			b.WriteString(p.block(a.Of(r)))
			b.WriteString(" ")
		}
		if _, err := fmt.Fprintln(p.out, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) block(c color.RGB) string {
	if p.profile == termenv.Ascii {
		return "[" + c.Hex() + "]"
	}
	return p.profile.String(swatch).Background(p.profile.Color(c.Hex())).String()
}
