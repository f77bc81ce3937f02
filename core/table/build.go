// core/table/build.go
package table

import (
	"errors"
	"strings"

	"protanno-core/feature"
)

// ErrNoSequence is returned when Build is called without a sequence; the
// builder never produces a partial table.
var ErrNoSequence = errors.New("no sequence available")

// Builder applies feature records to a fresh table using per-category
// merge policies. One Builder may be shared across calls; each Build
// allocates its own table.
type Builder struct {
	resolver *feature.Resolver
}

// NewBuilder returns a Builder that resolves categories with r.
func NewBuilder(r *feature.Resolver) *Builder { return &Builder{resolver: r} }

// Build materializes the per-residue table for seq. Records are applied in
// input order; unresolvable records and out-of-range span portions are
// skipped, never an error. The only failure is an absent sequence.
func (b *Builder) Build(seq string, records []feature.Record) (*Table, error) {
	if seq == "" {
		return nil, ErrNoSequence
	}

	t := newTable(seq)

	for _, rec := range records {
		if !rec.Loc.Valid() {
			continue
		}
		for _, cat := range b.resolver.Resolve(rec.Type, rec.Description) {
			switch cat {
			case feature.CategoryDisulfide:
				applyDisulfide(t, rec.Loc)
			case feature.CategorySecondaryStructure:
				overwriteSpan(t, rec.Loc, cat, strings.ToUpper(strings.TrimSpace(rec.Type)))
			default:
				accumulateSpan(t, rec.Loc, cat, rec.Description)
			}
		}
	}
	return t, nil
}

// overwriteSpan sets every in-range cell to value; later records win.
func overwriteSpan(t *Table, loc feature.Location, cat feature.Category, value string) {
	begin, end, ok := loc.Clip(t.Len())
	if !ok {
		return
	}
	for pos := begin; pos <= end; pos++ {
		t.Rows[pos-1].Cells[cat] = value
	}
}

// accumulateSpan appends the description to every in-range cell,
// preserving record arrival order. Empty descriptions contribute nothing.
func accumulateSpan(t *Table, loc feature.Location, cat feature.Category, desc string) {
	if desc == "" {
		return
	}
	begin, end, ok := loc.Clip(t.Len())
	if !ok {
		return
	}
	for pos := begin; pos <= end; pos++ {
		cells := t.Rows[pos-1].Cells
		if cur := cells[cat]; cur != "" {
			cells[cat] = cur + "; " + desc
		} else {
			cells[cat] = desc
		}
	}
}
