// internal/output/xlsx.go
package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"protanno-core/feature"
	"protanno-core/table"
)

// WriteXLSX writes the table as a single-sheet workbook: a header row with
// display column titles, then one row per residue. The sheet is named
// after the accession when available.
func WriteXLSX(w io.Writer, t *table.Table, meta Meta) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Annotations"
	if meta.Accession != "" {
		sheet = meta.Accession
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	cats := feature.Categories()
	header := make([]interface{}, 0, len(cats)+2)
	header = append(header, "Residue", "Code")
	for _, c := range cats {
		header = append(header, c.DisplayName())
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	for i, row := range t.Rows {
		vals := make([]interface{}, 0, len(cats)+2)
		vals = append(vals, row.Position, row.Code)
		for _, c := range cats {
			vals = append(vals, row.Cells[c])
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &vals); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	return nil
}
