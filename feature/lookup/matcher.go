package lookup

import "fmt"

// FuzzyThreshold is the minimum fuzzy score a candidate must exceed to be
// accepted. Scores equal to the threshold are rejected.
const FuzzyThreshold = 92

// Match tiers, from strongest to weakest.
const (
	TierExact      = "exact"
	TierNormalized = "normalized"
	TierFuzzy      = "fuzzy"
	TierNotFound   = "not_found"
)

// MatchResult is the outcome of resolving one description.
type MatchResult struct {
	// Code is the resolved product code, empty when not found.
	Code string `json:"code"`
	// Tier names the cascade tier that produced the match.
	Tier string `json:"tier"`
	// Score is the fuzzy similarity score, 100 for exact and normalized hits.
	Score int `json:"score"`
}

// Found reports whether the description resolved to a code.
func (m MatchResult) Found() bool {
	return m.Tier != TierNotFound
}

// Label renders the tier for display, with the score attached on fuzzy hits.
func (m MatchResult) Label() string {
	if m.Tier == TierFuzzy {
		return fmt.Sprintf("%s:%d", TierFuzzy, m.Score)
	}
	return m.Tier
}

// Resolve maps a description to a product code via the three-tier cascade:
// exact key hit, normalized-exact scan, then fuzzy scan. Ties at the best
// fuzzy score go to the lexicographically smallest table key, so resolution
// is deterministic regardless of map iteration order. An empty table resolves
// everything to not_found.
func Resolve(description string, table Table) MatchResult {
	if code, ok := table.codes[description]; ok {
		return MatchResult{Code: code, Tier: TierExact, Score: 100}
	}

	norm := Normalize(description)

	bestKey := ""
	for key, keyNorm := range table.norms {
		if keyNorm != norm {
			continue
		}
		if bestKey == "" || key < bestKey {
			bestKey = key
		}
	}
	if bestKey != "" {
		return MatchResult{Code: table.codes[bestKey], Tier: TierNormalized, Score: 100}
	}

	bestScore := -1
	bestKey = ""
	for key, keyNorm := range table.norms {
		score := Ratio(norm, keyNorm)
		if score > bestScore || (score == bestScore && key < bestKey) {
			bestScore = score
			bestKey = key
		}
	}
	if bestScore > FuzzyThreshold {
		return MatchResult{Code: table.codes[bestKey], Tier: TierFuzzy, Score: bestScore}
	}

	return MatchResult{Tier: TierNotFound}
}
