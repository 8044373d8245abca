package compare

import (
	"bytes"
	"fmt"

	docmodels "invoice-reconciler/feature/document/models"

	"github.com/xuri/excelize/v2"
)

var differenceHeader = []string{"Kind", "Code", "Description", "Side", "Left Quantity", "Right Quantity", "Statement"}

var recordHeader = []string{"Seq", "Code", "Description", "Unit Packaging", "Quantity", "Value", "Matched Code", "Match Tier"}

// BuildWorkbook renders a comparison result as an XLSX workbook with a
// differences sheet and one annotated-record sheet per document.
func BuildWorkbook(result *CompareResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Differences")
	if err := writeDifferenceSheet(f, result); err != nil {
		return nil, err
	}
	if err := writeRecordSheet(f, "Left "+result.Left.Name, result.Left.Records); err != nil {
		return nil, err
	}
	if err := writeRecordSheet(f, "Right "+result.Right.Name, result.Right.Records); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf, nil
}

func writeDifferenceSheet(f *excelize.File, result *CompareResult) error {
	if err := writeRow(f, "Differences", 1, differenceHeader); err != nil {
		return err
	}

	for i, d := range result.Report.Differences {
		row := []string{
			string(d.Kind),
			d.Code,
			d.Description,
			string(d.Side),
			d.LeftQuantityRaw,
			d.RightQuantityRaw,
			d.Statement(),
		}
		if err := writeRow(f, "Differences", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRecordSheet(f *excelize.File, name string, records []docmodels.ProductRecord) error {
	name = sanitizeSheetName(name)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	if err := writeRow(f, name, 1, recordHeader); err != nil {
		return err
	}
	for i, r := range records {
		row := []string{
			r.Sequence,
			r.Code,
			r.Description,
			r.UnitPackaging,
			r.QuantityRaw,
			r.Value,
			r.MatchedCode,
			r.MatchTier,
		}
		if err := writeRow(f, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// sanitizeSheetName strips the characters the XLSX format forbids in sheet
// names and enforces the 31-character cap.
func sanitizeSheetName(name string) string {
	sanitized := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		sanitized = append(sanitized, r)
	}
	if len(sanitized) > 31 {
		sanitized = sanitized[:31]
	}
	return string(sanitized)
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %q: %w", row, sheet, err)
	}
	return nil
}
