package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "bare subscriber number", raw: "01712345678", expected: "+8801712345678"},
		{name: "already normalized", raw: "+8801712345678", expected: "+8801712345678"},
		{name: "spaces and dashes stripped", raw: "017-123 45678", expected: "+8801712345678"},
		{name: "surrounding whitespace", raw: "  01712345678  ", expected: "+8801712345678"},
		{name: "foreign country code untouched", raw: "+14155552671", expected: "+14155552671"},
		{name: "empty input", raw: "", expected: ""},
		{name: "punctuation only", raw: "--  --", expected: ""},
		{name: "parentheses stripped", raw: "(017) 1234-5678", expected: "+8801712345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"01712345678", "+8801712345678", "+14155552671"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
