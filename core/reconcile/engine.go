package reconcile

import "invoice-reconciler/core/quantity"

// Compare joins the two row sets on Code and returns the ordered difference
// report. The first occurrence of a code wins the join on each side; later
// occurrences are reported as duplicate_code diagnostics.
func Compare(left, right []Row) Report {
	leftIndex := indexFirst(left)
	rightIndex := indexFirst(right)

	report := Report{Differences: []Difference{}}

	// Left pass: shared codes are compared here so entries follow the left
	// document's order; left-only codes are reported in place.
	seenLeft := make(map[string]struct{}, len(left))
	for _, row := range left {
		if row.Code == "" {
			continue
		}
		report.Summary.LeftRows++

		if _, dup := seenLeft[row.Code]; dup {
			report.Differences = append(report.Differences, Difference{
				Kind:        DuplicateCode,
				Code:        row.Code,
				Description: row.Description,
				Side:        SideLeft,
			})
			report.Summary.DuplicateCodes++
			continue
		}
		seenLeft[row.Code] = struct{}{}

		counterpart, shared := rightIndex[row.Code]
		if !shared {
			report.Differences = append(report.Differences, Difference{
				Kind:        OnlyInLeft,
				Code:        row.Code,
				Description: row.Description,
				Side:        SideLeft,
			})
			report.Summary.OnlyInLeft++
			continue
		}

		report.Summary.SharedCodes++
		if row.QuantityRaw != counterpart.QuantityRaw {
			leftQty := quantity.Decode(row.QuantityRaw)
			rightQty := quantity.Decode(counterpart.QuantityRaw)
			report.Differences = append(report.Differences, Difference{
				Kind:             QuantityMismatch,
				Code:             row.Code,
				Description:      row.Description,
				LeftQuantityRaw:  row.QuantityRaw,
				RightQuantityRaw: counterpart.QuantityRaw,
				LeftQuantity:     &leftQty,
				RightQuantity:    &rightQty,
			})
			report.Summary.QuantityMismatches++
		}
	}

	// Right pass: only codes absent from the left remain to be reported.
	seenRight := make(map[string]struct{}, len(right))
	for _, row := range right {
		if row.Code == "" {
			continue
		}
		report.Summary.RightRows++

		if _, dup := seenRight[row.Code]; dup {
			report.Differences = append(report.Differences, Difference{
				Kind:        DuplicateCode,
				Code:        row.Code,
				Description: row.Description,
				Side:        SideRight,
			})
			report.Summary.DuplicateCodes++
			continue
		}
		seenRight[row.Code] = struct{}{}

		if _, shared := leftIndex[row.Code]; shared {
			continue
		}

		report.Differences = append(report.Differences, Difference{
			Kind:        OnlyInRight,
			Code:        row.Code,
			Description: row.Description,
			Side:        SideRight,
		})
		report.Summary.OnlyInRight++
	}

	return report
}

// indexFirst builds a code index keeping the first occurrence per code.
func indexFirst(rows []Row) map[string]Row {
	index := make(map[string]Row, len(rows))
	for _, row := range rows {
		if row.Code == "" {
			continue
		}
		if _, exists := index[row.Code]; !exists {
			index[row.Code] = row
		}
	}
	return index
}
