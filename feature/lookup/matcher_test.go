package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable(entries ...Entry) Table {
	return BuildTable(entries)
}

func TestResolveExact(t *testing.T) {
	table := testTable(
		Entry{ItemDescription: "COCA COLA 330ML", ItemCode: "100001"},
		Entry{ItemDescription: "FANTA ORANGE 330ML", ItemCode: "100002"},
	)

	result := Resolve("COCA COLA 330ML", table)
	assert.Equal(t, "100001", result.Code)
	assert.Equal(t, TierExact, result.Tier)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Found())
	assert.Equal(t, "exact", result.Label())
}

func TestResolveExactWinsOverNormalized(t *testing.T) {
	// Both keys normalize identically; the exact key must win without a scan.
	table := testTable(
		Entry{ItemDescription: "coca cola 330", ItemCode: "200001"},
		Entry{ItemDescription: "COCA COLA 330ml", ItemCode: "200002"},
	)

	result := Resolve("coca cola 330", table)
	assert.Equal(t, "200001", result.Code)
	assert.Equal(t, TierExact, result.Tier)
}

func TestResolveNormalized(t *testing.T) {
	table := testTable(
		Entry{ItemDescription: "COCA-COLA 330ML (NEW)", ItemCode: "100001"},
	)

	tests := []struct {
		name        string
		description string
	}{
		{"CaseFolded", "coca-cola 330ml (new)"},
		{"PunctuationStripped", "COCACOLA 330ML NEW"},
		{"FillerTokensDropped", "cocacola 330ml special edition"},
		{"ExtraWhitespace", "  COCA-COLA   330ML  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(tt.description, table)
			assert.Equal(t, "100001", result.Code)
			assert.Equal(t, TierNormalized, result.Tier)
			assert.Equal(t, 100, result.Score)
		})
	}
}

func TestResolveNormalizedTieBreak(t *testing.T) {
	// Two distinct keys with the same normalization; the lexicographically
	// smallest key must win deterministically.
	table := testTable(
		Entry{ItemDescription: "SPRITE! 500", ItemCode: "300002"},
		Entry{ItemDescription: "SPRITE 500", ItemCode: "300001"},
	)

	result := Resolve("sprite 500", table)
	assert.Equal(t, TierNormalized, result.Tier)
	assert.Equal(t, "300001", result.Code)
}

func TestResolveFuzzy(t *testing.T) {
	table := testTable(
		Entry{ItemDescription: "MIRINDA STRAWBERRY 330", ItemCode: "400001"},
	)

	// One substituted character inside a 22-rune key scores 95.
	result := Resolve("MIRINDA STRAWBERRE 330", table)
	assert.Equal(t, "400001", result.Code)
	assert.Equal(t, TierFuzzy, result.Tier)
	assert.Equal(t, 95, result.Score)
	assert.Equal(t, "fuzzy:95", result.Label())
}

func TestResolveFuzzyThresholdIsStrict(t *testing.T) {
	// Key of 25 runes with exactly 2 edits: (25-2)*100/25 = 92, which must
	// NOT be accepted.
	table := testTable(
		Entry{ItemDescription: "abcdefghijklmnopqrstuvwxy", ItemCode: "500001"},
	)

	result := Resolve("abcdefghijklmnopqrstuvzzy", table)
	assert.Equal(t, TierNotFound, result.Tier)
	assert.False(t, result.Found())
	assert.Equal(t, "not_found", result.Label())
	assert.Empty(t, result.Code)
}

func TestResolveFuzzyTieBreak(t *testing.T) {
	// Both keys are one edit away from the query; the lexicographically
	// smallest key must win.
	table := testTable(
		Entry{ItemDescription: "pepsi max lemon zero pack b", ItemCode: "600002"},
		Entry{ItemDescription: "pepsi max lemon zero pack a", ItemCode: "600001"},
	)

	result := Resolve("pepsi max lemon zero pack x", table)
	assert.Equal(t, TierFuzzy, result.Tier)
	assert.Equal(t, "600001", result.Code)
}

func TestResolveEmptyTable(t *testing.T) {
	result := Resolve("anything", Table{})
	assert.Equal(t, TierNotFound, result.Tier)
	assert.Empty(t, result.Code)
}

func TestResolveNoPlausibleMatch(t *testing.T) {
	table := testTable(
		Entry{ItemDescription: "COCA COLA 330ML", ItemCode: "100001"},
	)

	result := Resolve("INDUSTRIAL BEARING GREASE", table)
	assert.Equal(t, TierNotFound, result.Tier)
}

func TestBuildTableDropsIncompleteEntries(t *testing.T) {
	table := testTable(
		Entry{ItemDescription: "", ItemCode: "100001"},
		Entry{ItemDescription: "FANTA", ItemCode: ""},
		Entry{ItemDescription: "SPRITE", ItemCode: "100003"},
	)

	assert.Equal(t, 1, table.Len())
	code, ok := table.Code("SPRITE")
	assert.True(t, ok)
	assert.Equal(t, "100003", code)
}

func TestBuildTableLastWriteWins(t *testing.T) {
	table := testTable(
		Entry{ItemDescription: "SPRITE", ItemCode: "100001"},
		Entry{ItemDescription: "SPRITE", ItemCode: "100002"},
	)

	code, _ := table.Code("SPRITE")
	assert.Equal(t, "100002", code)
}
