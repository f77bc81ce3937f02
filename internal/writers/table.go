// internal/writers/table.go
package writers

import (
	"fmt"
	"io"

	"protanno-core/table"
	"protanno/internal/output"
	"protanno/internal/pretty"
)

// Payload is the complete render input: the finished table plus entry
// identity and presentation switches.
type Payload struct {
	Table     *table.Table
	Accession string
	Name      string
	Header    bool
	Pretty    bool
}

func (p Payload) meta() output.Meta {
	return output.Meta{Accession: p.Accession, Name: p.Name}
}

func init() {
	RegisterTable(output.FormatText, writeTextTable)
	RegisterTable(output.FormatJSON, func(w io.Writer, p Payload) error {
		return output.WriteJSON(w, p.Table, p.meta())
	})
	RegisterTable(output.FormatXLSX, func(w io.Writer, p Payload) error {
		return output.WriteXLSX(w, p.Table, p.meta())
	})
}

func writeTextTable(w io.Writer, p Payload) error {
	if p.Pretty {
		if _, err := fmt.Fprint(w, pretty.RenderTable(p.Table, p.Accession, pretty.DefaultOptions)); err != nil {
			return err
		}
	}
	return output.WriteText(w, p.Table, p.Header)
}
