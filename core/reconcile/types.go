package reconcile

import (
	"fmt"

	"invoice-reconciler/core/quantity"
)

// Row is the minimal view of a product record the engine joins on.
// Rows with an empty Code cannot participate in the join and are skipped.
type Row struct {
	// Code is the business code used as the join key.
	Code string `json:"code"`

	// Description is the free-text item description, carried for display.
	Description string `json:"description"`

	// QuantityRaw is the raw quantity token as it appeared in the document.
	QuantityRaw string `json:"quantity_raw"`
}

// Kind tags the cause of a difference entry.
type Kind string

const (
	// OnlyInLeft marks a code present only in the left document.
	OnlyInLeft Kind = "only_in_left"
	// OnlyInRight marks a code present only in the right document.
	OnlyInRight Kind = "only_in_right"
	// QuantityMismatch marks a shared code whose raw quantity tokens differ.
	QuantityMismatch Kind = "quantity_mismatch"
	// DuplicateCode marks a repeated code within a single document.
	DuplicateCode Kind = "duplicate_code"
)

// Side names the document a single-sided entry refers to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Difference is one entry of a difference report.
type Difference struct {
	// Kind is the cause of this entry.
	Kind Kind `json:"kind"`

	// Code is the business code the entry refers to.
	Code string `json:"code"`

	// Description is the item description from whichever side carries it.
	Description string `json:"description"`

	// Side is set for only_in_* and duplicate_code entries.
	Side Side `json:"side,omitempty"`

	// LeftQuantityRaw and RightQuantityRaw carry both raw tokens for
	// quantity_mismatch entries.
	LeftQuantityRaw  string `json:"left_quantity_raw,omitempty"`
	RightQuantityRaw string `json:"right_quantity_raw,omitempty"`

	// LeftQuantity and RightQuantity are the independently decoded triples
	// for quantity_mismatch entries.
	LeftQuantity  *quantity.Quantity `json:"left_quantity,omitempty"`
	RightQuantity *quantity.Quantity `json:"right_quantity,omitempty"`
}

// Statement renders the entry as a single human-readable sentence.
func (d Difference) Statement() string {
	switch d.Kind {
	case OnlyInLeft:
		return fmt.Sprintf("code %s (%s) appears only in the left document", d.Code, d.Description)
	case OnlyInRight:
		return fmt.Sprintf("code %s (%s) appears only in the right document", d.Code, d.Description)
	case QuantityMismatch:
		return fmt.Sprintf("code %s (%s) quantity differs: left %q (%s) vs right %q (%s)",
			d.Code, d.Description,
			d.LeftQuantityRaw, d.LeftQuantity,
			d.RightQuantityRaw, d.RightQuantity)
	case DuplicateCode:
		return fmt.Sprintf("code %s (%s) is duplicated in the %s document", d.Code, d.Description, d.Side)
	default:
		return fmt.Sprintf("code %s (%s): unknown difference", d.Code, d.Description)
	}
}

// Report is the ordered outcome of comparing two documents.
type Report struct {
	// Differences are the entries in join order.
	Differences []Difference `json:"differences"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a report.
type Summary struct {
	// LeftRows and RightRows count the joinable input rows per side.
	LeftRows  int `json:"left_rows"`
	RightRows int `json:"right_rows"`

	// SharedCodes counts codes present on both sides.
	SharedCodes int `json:"shared_codes"`

	// OnlyInLeft and OnlyInRight count one-sided codes.
	OnlyInLeft  int `json:"only_in_left"`
	OnlyInRight int `json:"only_in_right"`

	// QuantityMismatches counts shared codes with differing raw quantities.
	QuantityMismatches int `json:"quantity_mismatches"`

	// DuplicateCodes counts repeated-code diagnostics across both sides.
	DuplicateCodes int `json:"duplicate_codes"`
}

// Identical reports whether the two documents agree on every joinable row.
func (r Report) Identical() bool {
	return len(r.Differences) == 0
}

// Statements renders every entry as a human-readable sentence, in order.
func (r Report) Statements() []string {
	out := make([]string, 0, len(r.Differences))
	for _, d := range r.Differences {
		out = append(out, d.Statement())
	}
	return out
}
