// Package seq checks that rendered text contains a sequence of lines in
// order. It is meant for tests.
package seq

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertLines fails t unless the lines of str contain seq in order.
func AssertLines(t *testing.T, str string, seq ...string) {
	t.Helper()
	assert.NoError(t, ContainsSequence(strings.Split(str, "\n"), seq...))
}

// ContainsSequence reports whether lines contains every line of seq, in
// order, with any other lines in between. A line of seq that appears out of
// order, or more times than it appears in seq, is an error.
func ContainsSequence(lines []string, seq ...string) error {
	remaining := map[string]int{}
	for _, l := range seq {
		remaining[l]++
	}

	lineIndex := 0
	for seqIndex, expect := range seq {
		found := false
		for ; lineIndex < len(lines); lineIndex++ {
			line := lines[lineIndex]
			if line == expect {
				remaining[line]--
				lineIndex++
				found = true
				break
			}
			if remaining[line] > 0 {
				return report(seq, lines, "line %q appears before item %d (%q)", line, seqIndex+1, expect)
			}
		}
		if !found {
			return report(seq, lines, "item %d (%q) not found", seqIndex+1, expect)
		}
	}

	for ; lineIndex < len(lines); lineIndex++ {
		if _, ok := remaining[lines[lineIndex]]; ok {
			return report(seq, lines, "line %q appears after the sequence ended", lines[lineIndex])
		}
	}
	return nil
}

func report(seq, lines []string, format string, args ...any) error {
	return fmt.Errorf("%s\n\nSequence:\n%s\n\nActual:\n%s",
		fmt.Sprintf(format, args...),
		strings.Join(seq, "\n"),
		strings.Join(lines, "\n"),
	)
}
