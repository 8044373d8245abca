package lookup

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
		{"LowerCases", "COCA COLA", "coca cola"},
		{"StripsPunctuation", "coca-cola (zero)", "cocacola zero"},
		{"CollapsesWhitespace", "coca   cola \t zero", "coca cola zero"},
		{"TrimsEnds", "  coca cola  ", "coca cola"},
		{"DropsFillerTokens", "sprite ml new r special edition", "sprite"},
		{"KeepsFillerInsideTokens", "sprite 330ml renew", "sprite 330ml renew"},
		{"KeepsDigits", "fanta 500 x24", "fanta 500 x24"},
		{"Empty", "", ""},
		{"OnlyPunctuation", "!@#$%", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}
