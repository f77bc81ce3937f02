// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"protanno-core/feature"
	"protanno-core/table"
)

// Format names accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// TSVHeader returns the canonical header row for text/TSV output. Keep it
// as the single source of truth; downstream presenters depend on this
// column order.
func TSVHeader() string {
	cols := []string{"residue", "code"}
	for _, c := range feature.Categories() {
		cols = append(cols, string(c))
	}
	return strings.Join(cols, "\t")
}

// WriteText prints one TSV row per residue.
func WriteText(w io.Writer, t *table.Table, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader()); err != nil {
			return err
		}
	}
	cats := feature.Categories()
	cols := make([]string, 0, len(cats)+2)
	for _, row := range t.Rows {
		cols = cols[:0]
		cols = append(cols, fmt.Sprintf("%d", row.Position), row.Code)
		for _, c := range cats {
			cols = append(cols, row.Cells[c])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	return nil
}
