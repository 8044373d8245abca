package extract

import (
	"regexp"
	"strings"

	"invoice-reconciler/feature/document/models"
)

var (
	// recordLinePattern gates which lines can become records: an ordinal,
	// whitespace, then the fixed-width 6-digit business code.
	recordLinePattern = regexp.MustCompile(`^\d+\s+\d{6}\s`)

	// columnSplitPattern separates fields on runs of two or more spaces,
	// which is how the source documents align their columns.
	columnSplitPattern = regexp.MustCompile(`\s{2,}`)
)

// Heuristic extracts records from line-oriented document text without any
// external calls.
type Heuristic struct{}

// NewHeuristic creates the heuristic extractor.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Extract scans the text line by line and returns every qualifying record.
// Empty input returns an empty slice, never an error: the heuristic trades
// recall for precision and simply skips lines it cannot place.
func (h *Heuristic) Extract(text string) []models.ProductRecord {
	records := []models.ProductRecord{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !recordLinePattern.MatchString(line) {
			continue
		}

		fields := columnSplitPattern.Split(line, -1)
		if len(fields) < 5 {
			continue
		}

		record := models.ProductRecord{
			Sequence:      fields[0],
			Code:          fields[1],
			Description:   fields[2],
			UnitPackaging: fields[3],
			QuantityRaw:   fields[4],
		}
		if len(fields) >= 6 {
			record.Value = fields[5]
		}
		records = append(records, record)
	}

	return records
}
