// pkg/api/table_v1.go
// Package api defines the stable JSON wire schema (v1). Internal table
// shapes may change; these types must not.
package api

// TableV1 is the serialized annotation table.
type TableV1 struct {
	Accession string      `json:"accession,omitempty"`
	Name      string      `json:"name,omitempty"`
	Length    int         `json:"length"`
	Residues  []ResidueV1 `json:"residues"`
}

// ResidueV1 is one residue row. Annotations holds only the non-empty
// cells, keyed by category column name.
type ResidueV1 struct {
	Position    int               `json:"position"`
	Code        string            `json:"code"`
	Annotations map[string]string `json:"annotations,omitempty"`
}
