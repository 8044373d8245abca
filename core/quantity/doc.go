// Package quantity decodes the dot-separated quantity notation used on
// distributor invoices.
//
// A raw quantity token is either a bare number ("3") or three dot-separated
// segments ("2.012.010"). The segments mean cartons, packs and pieces:
//
//	1         = 1 carton, 0 packs, 0 pieces
//	2.012.010 = 2 cartons, 12 packs, 10 pieces
//	0.000.018 = 0 cartons, 0 packs, 18 pieces
//
// Decoding never fails: malformed tokens decode to the zero quantity so a
// bad cell can never abort a document run. The raw token is always kept
// alongside the decoded value, and equality checks between documents are done
// on the raw string, not the decoded triple.
package quantity
