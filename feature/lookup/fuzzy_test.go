package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"Identical", "coca cola", "coca cola", 100},
		{"BothEmpty", "", "", 100},
		{"OneEmpty", "coca", "", 0},
		{"SingleSubstitution", "abcdefghij", "abcdefghix", 90},
		{"SingleInsertion", "abcdefghi", "abcdefghij", 90},
		{"CompletelyDifferent", "aaaa", "bbbb", 0},
		{"TruncatesTowardZero", "abc", "abd", 66},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Ratio(tt.a, tt.b))
		})
	}
}

func TestRatioIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"mirinda strawberry", "mirinda strawbery"},
		{"short", "a much longer description"},
		{"", "x"},
	}
	for _, p := range pairs {
		assert.Equal(t, Ratio(p[0], p[1]), Ratio(p[1], p[0]), "pair %q", p)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"", "abc", 3},
		{"abc", "abc", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, levenshtein([]rune(tt.a), []rune(tt.b)), "%q vs %q", tt.a, tt.b)
	}
}
