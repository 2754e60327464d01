package record

import (
	"fmt"
	"strings"

	"github.com/amonks/colormix/internal/color"
)

// CSS renders one rule per input swatch and one per aggregate. Every selector
// carries the record's own class.
func (r Record) CSS() string {
	var b strings.Builder
	for i, c := range r.Input {
		writeRule(&b, r.class(), fmt.Sprintf("input-%d", i), c)
	}
	for _, a := range Aggregates {
		writeRule(&b, r.class(), a.Class, a.Of(r))
	}
	return b.String()
}

func writeRule(b *strings.Builder, record, role string, c color.RGB) {
	fmt.Fprintf(b, ".%s.%s {\n", record, role)
	fmt.Fprintf(b, "    background-color: %s;\n", c.CSS())
	b.WriteString("}\n")
}

// HTML renders a container for the record holding one placeholder per input
// swatch and one per aggregate, classed to match [Record.CSS].
func (r Record) HTML() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"record %s\">\n", r.class())
	fmt.Fprintf(&b, "  <h2 class=\"label %s\">%s</h2>\n", r.class(), r.ID)
	fmt.Fprintf(&b, "  <div class=\"inputs %s\">\n", r.class())
	for i, c := range r.Input {
		writeSwatch(&b, r.class(), fmt.Sprintf("input input-%d", i), c.Hex())
	}
	b.WriteString("  </div>\n")
	fmt.Fprintf(&b, "  <div class=\"aggregates %s\">\n", r.class())
	for _, a := range Aggregates {
		writeSwatch(&b, r.class(), "aggregate "+a.Class, a.Name+" "+a.Of(r).Hex())
	}
	b.WriteString("  </div>\n")
	b.WriteString("</div>\n")
	return b.String()
}

func writeSwatch(b *strings.Builder, record, roles, caption string) {
	fmt.Fprintf(b, "    <div class=\"swatch %s %s\"><span class=\"caption %s\">%s</span></div>\n",
		roles, record, record, caption)
}

func (r Record) class() string {
	return "record-" + r.ID
}

// CSS concatenates the rules of every record.
func CSS(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.CSS())
	}
	return b.String()
}

// HTML concatenates the markup of every record.
func HTML(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.HTML())
	}
	return b.String()
}
