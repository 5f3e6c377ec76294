package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already clean",
			input:    "ping",
			expected: "ping",
		},
		{
			name:     "leading spaces",
			input:    "   ping",
			expected: "ping",
		},
		{
			name:     "trailing spaces",
			input:    "ping   ",
			expected: "ping",
		},
		{
			name:     "leading and trailing",
			input:    "  ping  ",
			expected: "ping",
		},
		{
			name:     "interior run collapsed",
			input:    "setLed  l1    s0",
			expected: "setLed l1 s0",
		},
		{
			name:     "everything at once",
			input:    "   setLed  l1     s0   ",
			expected: "setLed l1 s0",
		},
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
		{
			name:     "all spaces",
			input:    "      ",
			expected: "",
		},
		{
			name:     "single space",
			input:    " ",
			expected: "",
		},
		{
			name:     "single character",
			input:    "x",
			expected: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.input)
			n := Normalize(buf, len(buf))
			assert.Equal(t, tt.expected, string(buf[:n]))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  ping  ",
		"setLed  l1  s0",
		"   ",
		"",
		"a b c d e f",
	}

	for _, input := range inputs {
		buf := []byte(input)
		n := Normalize(buf, len(buf))
		once := string(buf[:n])

		n = Normalize(buf, n)
		twice := string(buf[:n])

		assert.Equal(t, once, twice, "normalizing %q twice changed the result", input)
	}
}

func TestNormalize_NoLeadingTrailingOrRuns(t *testing.T) {
	inputs := []string{
		" a  b ",
		"cmd   x    y     z",
		"     lone     ",
	}

	for _, input := range inputs {
		buf := []byte(input)
		n := Normalize(buf, len(buf))
		out := string(buf[:n])

		assert.NotContains(t, out, "  ")
		if len(out) > 0 {
			assert.NotEqual(t, byte(' '), out[0])
			assert.NotEqual(t, byte(' '), out[len(out)-1])
		}
	}
}

func TestNormalize_LengthClamped(t *testing.T) {
	buf := []byte("abc")
	// A stale length beyond the buffer must not panic.
	n := Normalize(buf, 10)
	assert.Equal(t, "abc", string(buf[:n]))
}
