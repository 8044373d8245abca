// Package lookup maintains the product lookup table and resolves free-form
// product descriptions to canonical product codes.
//
// The table maps exact supplier descriptions to codes and is fetched from an
// HTTP JSON source. It is loaded once per session and replaced wholesale on
// explicit refresh; readers always see an immutable snapshot.
//
// Resolution runs a three-tier cascade: exact key hit, normalized-exact
// comparison, then a fuzzy character-ratio scan with a strict acceptance
// threshold. Descriptions that clear none of the tiers resolve to not_found.
package lookup
