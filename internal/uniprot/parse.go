// internal/uniprot/parse.go
package uniprot

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"protanno-core/feature"
)

// Entry is one parsed UniProtKB entry: the canonical sequence plus its
// positional feature records, in document order.
type Entry struct {
	Accession string
	Name      string
	Sequence  string
	Features  []feature.Record
}

// xmlEntry mirrors the subset of the UniProt entry XML we consume
// (namespace http://uniprot.org/uniprot).
type xmlEntry struct {
	Accessions []string     `xml:"accession"`
	Names      []string     `xml:"name"`
	Features   []xmlFeature `xml:"feature"`
	Sequence   string       `xml:"sequence"`
}

type xmlFeature struct {
	Type        string      `xml:"type,attr"`
	Description string      `xml:"description,attr"`
	Location    xmlLocation `xml:"location"`
}

type xmlLocation struct {
	Position *xmlPoint `xml:"position"`
	Begin    *xmlPoint `xml:"begin"`
	End      *xmlPoint `xml:"end"`
}

// xmlPoint carries an optional position attribute; endpoints with
// status="unknown" omit it and decode as zero.
type xmlPoint struct {
	Position int `xml:"position,attr"`
}

type xmlRoot struct {
	Entries []xmlEntry `xml:"entry"`
}

// Parse decodes a UniProt entry XML document into an Entry. Only the first
// <entry> is used. Features with an unusable location are kept with a
// zero-valued Location so the table builder can skip them uniformly.
func Parse(r io.Reader) (*Entry, error) {
	var root xmlRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode uniprot xml: %w", err)
	}
	if len(root.Entries) == 0 {
		return nil, fmt.Errorf("uniprot xml: no entry element")
	}
	xe := root.Entries[0]

	e := &Entry{
		Sequence: stripSequence(xe.Sequence),
		Features: make([]feature.Record, 0, len(xe.Features)),
	}
	if len(xe.Accessions) > 0 {
		e.Accession = xe.Accessions[0]
	}
	if len(xe.Names) > 0 {
		e.Name = xe.Names[0]
	}
	for _, xf := range xe.Features {
		e.Features = append(e.Features, feature.Record{
			Type:        xf.Type,
			Description: xf.Description,
			Loc:         toLocation(xf.Location),
		})
	}
	return e, nil
}

// toLocation normalizes the XML location forms: a single <position> or a
// <begin>/<end> pair. Missing or unknown endpoints yield the zero Location,
// which the builder treats as invalid.
func toLocation(l xmlLocation) feature.Location {
	if l.Position != nil {
		return feature.At(l.Position.Position)
	}
	if l.Begin != nil && l.End != nil {
		return feature.Between(l.Begin.Position, l.End.Position)
	}
	return feature.Location{}
}

// stripSequence removes the line breaks and spaces UniProt embeds in
// sequence text.
func stripSequence(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
}
