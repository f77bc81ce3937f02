// core/table/table.go
package table

import "protanno-core/feature"

// Row is one residue of the annotation table: its one-based position, its
// one-letter code, and one text cell per category.
type Row struct {
	Position int
	Code     string
	Cells    map[feature.Category]string
}

// Table is the finished per-residue annotation table. It is fully
// populated by Build and must be treated as a read-only snapshot
// afterwards; row order equals residue order.
type Table struct {
	Sequence string
	Rows     []Row
}

// Len returns the number of residues (== sequence length).
func (t *Table) Len() int { return len(t.Rows) }

func newTable(seq string) *Table {
	t := &Table{Sequence: seq, Rows: make([]Row, len(seq))}
	ncat := len(feature.Categories())
	for i := range t.Rows {
		t.Rows[i] = Row{
			Position: i + 1,
			Code:     string(seq[i]),
			Cells:    make(map[feature.Category]string, ncat),
		}
	}
	return t
}
