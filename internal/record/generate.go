package record

import (
	"fmt"
	"math/rand/v2"

	"github.com/amonks/colormix/internal/color"
	"go.uber.org/zap"
)

// Options controls which sample sets [Generate] produces.
type Options struct {
	// Set sizes run from MinSize to MaxSize, inclusive.
	MinSize, MaxSize int
	// Rounds is the number of records generated for each set size.
	Rounds int
	// Seed seeds the color source. Equal seeds produce equal records.
	Seed uint64
	// Fallback replaces any aggregate that cannot be computed.
	Fallback color.RGB
}

// ID names the record for a given set size and round.
func ID(size, round int) string {
	return fmt.Sprintf("%d-%d", size, round)
}

// Generate produces one record for every (size, round) pair, ordered by size
// and then by round.
func Generate(log *zap.Logger, opts Options) []Record {
	src := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	var records []Record
	for size := opts.MinSize; size <= opts.MaxSize; size++ {
		for round := 0; round < opts.Rounds; round++ {
			input := make([]color.RGB, size)
			for i := range input {
				input[i] = randomColor(src)
			}
			id := ID(size, round)
			log.Debug("generated sample set", zap.String("record", id), zap.Stringers("input", input))
			records = append(records, Build(log, id, input, opts.Fallback))
		}
	}
	return records
}

func randomColor(src *rand.Rand) color.RGB {
	v := src.Uint32()
	return color.RGB{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}
}
