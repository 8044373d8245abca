// Package extract turns raw document text into structured product records.
//
// Two strategies are available and selected per deployment:
//
//   - Heuristic: a local line parser. A line qualifies as a record only when
//     it starts with an ordinal followed by a 6-digit business code; the line
//     is then column-split on runs of whitespace. Lines that do not qualify
//     are skipped silently, so missed rows are possible but stray prose can
//     never produce a record.
//
//   - Assisted: delegates to the Gemini generative model with an instruction
//     to return a JSON array, then validates the free-form response. The
//     model output is never trusted: the parser excises the candidate array
//     between the first '[' and the last ']' and fails the document with a
//     typed, recoverable error when no well-formed array is found.
//
// Both strategies return the same []models.ProductRecord shape.
package extract
