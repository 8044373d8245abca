package models

import "invoice-reconciler/core/reconcile"

// ProductRecord is one extracted row of an invoice or product-list document.
// A record is immutable after extraction except for the Annotate step, which
// only ever fills MatchedCode and MatchTier.
type ProductRecord struct {
	// Sequence is the document-local ordinal as printed. Not unique across
	// documents and kept as a string since some documents pad it.
	Sequence string `json:"sequence"`

	// Code is the business code, the join key for reconciliation. Records
	// with an empty code cannot be reconciled.
	Code string `json:"code"`

	// Description is the free-text item name, used for display and as the
	// lookup-match input.
	Description string `json:"description"`

	// UnitPackaging describes the sales unit ("BOX/12"). Opaque to logic.
	UnitPackaging string `json:"unit_packaging"`

	// QuantityRaw is the quantity token exactly as printed.
	QuantityRaw string `json:"quantity_raw"`

	// Value is the optional monetary value cell. Not used for comparison.
	Value string `json:"value,omitempty"`

	// MatchedCode is the canonical lookup code resolved by the matcher,
	// empty until annotation and empty when unresolved.
	MatchedCode string `json:"matched_code,omitempty"`

	// MatchTier records which strategy produced MatchedCode:
	// "exact", "normalized", "fuzzy:<score>" or "not_found".
	MatchTier string `json:"match_tier,omitempty"`
}

// Rows converts records to the reconcile engine's join view.
func Rows(records []ProductRecord) []reconcile.Row {
	rows := make([]reconcile.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, reconcile.Row{
			Code:        r.Code,
			Description: r.Description,
			QuantityRaw: r.QuantityRaw,
		})
	}
	return rows
}
