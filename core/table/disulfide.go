// core/table/disulfide.go
package table

import (
	"fmt"

	"protanno-core/feature"
)

// applyDisulfide records a bonded cysteine pair as mutual cross-references:
// residue Begin gets "Cys-<End>" and residue End gets "Cys-<Begin>" — each
// side names its partner, not itself. Pure overwrite; when a residue
// appears in more than one bond record the later one wins. An out-of-range
// side is dropped while the in-range side is still written.
func applyDisulfide(t *Table, loc feature.Location) {
	n := t.Len()
	if loc.Begin >= 1 && loc.Begin <= n {
		t.Rows[loc.Begin-1].Cells[feature.CategoryDisulfide] = fmt.Sprintf("Cys-%d", loc.End)
	}
	if loc.End != loc.Begin && loc.End >= 1 && loc.End <= n {
		t.Rows[loc.End-1].Cells[feature.CategoryDisulfide] = fmt.Sprintf("Cys-%d", loc.Begin)
	}
}
