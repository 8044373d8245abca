package quantity

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator splits the segments of a raw quantity token.
const Separator = "."

// Quantity is the decoded cartons/packs/pieces triple.
type Quantity struct {
	Cartons int `json:"cartons"`
	Packs   int `json:"packs"`
	Pieces  int `json:"pieces"`
}

// Zero is the decode result for empty or malformed tokens.
var Zero = Quantity{}

// Decode interprets a raw quantity token.
//
// A token without separators is a plain carton count. A token with exactly
// two separators is cartons.packs.pieces. Any other shape, or any segment
// that is not an integer, yields Zero; the codec degrades silently instead
// of returning an error.
func Decode(raw string) Quantity {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Zero
	}

	segments := strings.Split(raw, Separator)
	switch len(segments) {
	case 1:
		cartons, err := strconv.Atoi(segments[0])
		if err != nil || cartons < 0 {
			return Zero
		}
		return Quantity{Cartons: cartons}
	case 3:
		values := make([]int, 3)
		for i, seg := range segments {
			v, err := strconv.Atoi(seg)
			if err != nil || v < 0 {
				return Zero
			}
			values[i] = v
		}
		return Quantity{Cartons: values[0], Packs: values[1], Pieces: values[2]}
	default:
		return Zero
	}
}

// IsZero reports whether q is the zero quantity.
func (q Quantity) IsZero() bool {
	return q == Zero
}

// String renders the triple in human-readable form, e.g. "2 cartons, 12 packs, 10 pieces".
func (q Quantity) String() string {
	return fmt.Sprintf("%d cartons, %d packs, %d pieces", q.Cartons, q.Packs, q.Pieces)
}
