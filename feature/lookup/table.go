package lookup

// Entry is one row of the lookup source: a supplier description paired with
// its canonical product code.
type Entry struct {
	ItemDescription string `json:"ItemDescription"`
	ItemCode        string `json:"ItemCode"`
}

// Table is an immutable description-to-code index. The zero value is a valid
// empty table that resolves every description to not_found.
type Table struct {
	codes map[string]string
	norms map[string]string
}

// BuildTable indexes the given entries. Entries with an empty description or
// code are dropped; duplicate descriptions are last-write-wins.
func BuildTable(entries []Entry) Table {
	codes := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.ItemDescription == "" || e.ItemCode == "" {
			continue
		}
		codes[e.ItemDescription] = e.ItemCode
	}

	norms := make(map[string]string, len(codes))
	for desc := range codes {
		norms[desc] = Normalize(desc)
	}

	return Table{codes: codes, norms: norms}
}

// Len returns the number of indexed descriptions.
func (t Table) Len() int {
	return len(t.codes)
}

// Code returns the code for an exact description hit.
func (t Table) Code(description string) (string, bool) {
	code, ok := t.codes[description]
	return code, ok
}
