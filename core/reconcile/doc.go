// Package reconcile aligns two sets of extracted product rows and reports
// their differences.
//
// The engine performs a full outer join on the business code: every code that
// appears in either document shows up in the report view exactly once. For a
// code present on one side only, a presence difference is emitted. For a code
// present on both sides, the raw quantity tokens are compared as strings; two
// tokens that decode to the same triple but are written differently still
// count as a mismatch, because the documents disagreeing on notation is
// itself worth surfacing.
//
// # Duplicate codes
//
// Documents occasionally repeat a business code. A cartesian join on
// duplicates would multiply entries, so the engine instead joins on the first
// occurrence and emits a dedicated duplicate_code diagnostic for every later
// occurrence on either side.
//
// # Ordering
//
// Output order is deterministic and follows document order: left rows first
// (in appearance order), then the right-only rows (in appearance order).
// Comparing the same inputs twice yields byte-identical reports.
package reconcile
