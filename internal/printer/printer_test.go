package printer

import (
	"strings"
	"testing"

	"github.com/amonks/colormix/internal/color"
	"github.com/amonks/colormix/internal/record"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

var records = []record.Record{
	{
		ID:           "2-0",
		Input:        []color.RGB{{255, 0, 0}, {0, 0, 255}},
		Mean:         color.RGB{127, 0, 127},
		Mix:          color.RGB{128, 0, 128},
		CircularMean: color.RGB{255, 0, 255},
	},
	{
		ID:           "10-0",
		Input:        []color.RGB{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		Mean:         color.RGB{4, 5, 6},
		Mix:          color.RGB{4, 5, 6},
		CircularMean: color.RGB{4, 5, 6},
	},
}

func TestPrintAscii(t *testing.T) {
	var b strings.Builder
	assert.NoError(t, New(&b, termenv.Ascii).Print(records))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], " 2-0  ["), "ids are right-aligned: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "10-0  ["), "ids are right-aligned: %q", lines[1])
	assert.Contains(t, lines[0], "2-0")
	assert.Contains(t, lines[0], "[#FF0000][#0000FF]")
	assert.Contains(t, lines[0], "→ [#7F007F] [#800080] [#FF00FF]")
	assert.Contains(t, lines[1], "10-0")
	assert.Contains(t, lines[1], "[#040506] [#040506] [#040506]")
}

func TestPrintTrueColor(t *testing.T) {
	var b strings.Builder
	assert.NoError(t, New(&b, termenv.TrueColor).Print(records[:1]))

	out := b.String()
	assert.Contains(t, out, "2-0")
	assert.Contains(t, out, "48;2;255;0;0")
	assert.Contains(t, out, "48;2;255;0;255")
}
