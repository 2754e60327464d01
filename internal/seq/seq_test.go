package seq_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/amonks/colormix/internal/seq"
	"github.com/stretchr/testify/assert"
)

func TestContainsSequence(t *testing.T) {
	for _, tc := range []struct {
		in, match []string
		out       bool
	}{
		{
			in:    []string{"a", "b", "c", "d"},
			match: []string{"b", "c"},
			out:   true,
		},
		{
			in:    []string{"a", "b", "c", "d"},
			match: []string{"a", "d"},
			out:   true,
		},
		{
			in:    []string{"a", "b", "c", "d"},
			match: []string{"c", "b"},
			out:   false,
		},
		{
			in:    []string{"a", "b", "c", "d"},
			match: []string{"-", "|"},
			out:   false,
		},
		{
			in:    []string{"a", "-", "a", "-", "a", "a"},
			match: []string{"-", "-"},
			out:   true,
		},
		{
			in:    []string{"a", "-", "a", "-", "a", "a"},
			match: []string{"a", "a"},
			out:   false,
		},
	} {
		modifier := " "
		if !tc.out {
			modifier = " not "
		}
		name := fmt.Sprintf("[%s]%sin [%s]", strings.Join(tc.match, ","), modifier, strings.Join(tc.in, ","))
		t.Run(name, func(t *testing.T) {
			err := seq.ContainsSequence(tc.in, tc.match...)
			if tc.out {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAssertLines(t *testing.T) {
	seq.AssertLines(t, ".a {\n    x: 1;\n}\n.b {\n    x: 2;\n}\n", ".a {", "    x: 1;", ".b {", "    x: 2;")
}
