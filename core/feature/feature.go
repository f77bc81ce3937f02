// core/feature/feature.go
package feature

// Location is the placement of a feature on the sequence: a one-based
// inclusive range. A single-position feature is the degenerate
// Begin == End case; the distinction is resolved once at ingestion.
type Location struct {
	Begin int
	End   int
}

// At returns the Location of a single residue position.
func At(pos int) Location { return Location{Begin: pos, End: pos} }

// Between returns the Location covering [begin, end] inclusive.
func Between(begin, end int) Location { return Location{Begin: begin, End: end} }

// Valid reports whether anything of the span can fall inside a sequence:
// the endpoints are ordered and the span ends at residue 1 or later. A
// Begin before residue 1 is fine — Clip truncates the leading overhang.
// The zero value (unknown endpoints) is invalid.
func (l Location) Valid() bool { return l.End >= l.Begin && l.End >= 1 }

// Clip truncates the span to [1, n] and reports whether anything remains.
func (l Location) Clip(n int) (begin, end int, ok bool) {
	begin, end = l.Begin, l.End
	if begin < 1 {
		begin = 1
	}
	if end > n {
		end = n
	}
	return begin, end, begin <= end && end >= 1 && begin <= n
}

// Record is one feature annotation: a type, a free-text description and a
// location. Types and descriptions come straight from the record source;
// interpretation happens in the Resolver.
type Record struct {
	Type        string
	Description string
	Loc         Location
}
