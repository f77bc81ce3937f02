// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"protanno-core/feature"
	"protanno-core/table"
	"protanno/pkg/api"
)

// Meta carries entry identity for serializers that include it.
type Meta struct {
	Accession string
	Name      string
}

// ToAPITable converts a domain table to the stable wire schema (v1).
// Only non-empty cells are carried per residue.
func ToAPITable(t *table.Table, meta Meta) api.TableV1 {
	v := api.TableV1{
		Accession: meta.Accession,
		Name:      meta.Name,
		Length:    t.Len(),
		Residues:  make([]api.ResidueV1, 0, t.Len()),
	}
	for _, row := range t.Rows {
		r := api.ResidueV1{Position: row.Position, Code: row.Code}
		for _, c := range feature.Categories() {
			if val := row.Cells[c]; val != "" {
				if r.Annotations == nil {
					r.Annotations = make(map[string]string)
				}
				r.Annotations[string(c)] = val
			}
		}
		v.Residues = append(v.Residues, r)
	}
	return v
}

// WriteJSON writes the v1 table as pretty-indented JSON.
func WriteJSON(w io.Writer, t *table.Table, meta Meta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPITable(t, meta))
}
