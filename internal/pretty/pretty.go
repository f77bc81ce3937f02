// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"protanno-core/feature"
	"protanno-core/table"
)

const linePrefix = "# "

// Options control the terminal rendering.
type Options struct {
	// Color enables ANSI colors on category labels; output is still
	// subject to the color package's terminal autodetection, so piped
	// output stays plain.
	Color bool
	// AnnotatedOnly hides residues with no annotations.
	AnnotatedOnly bool
}

// DefaultOptions matches the --pretty flag behavior.
var DefaultOptions = Options{AnnotatedOnly: true}

var categoryColors = map[feature.Category]*color.Color{
	feature.CategorySecondaryStructure: color.New(color.FgCyan),
	feature.CategoryDomain:             color.New(color.FgBlue),
	feature.CategoryPfamDomain:         color.New(color.FgBlue),
	feature.CategoryDisorder:           color.New(color.FgMagenta),
	feature.CategoryDisulfide:          color.New(color.FgYellow),
	feature.CategoryGlycosylation:      color.New(color.FgGreen),
	feature.CategoryPhosphorylation:    color.New(color.FgGreen),
	feature.CategoryActiveSite:         color.New(color.FgRed),
	feature.CategoryMetalBinding:       color.New(color.FgHiYellow),
	feature.CategoryDNABinding:         color.New(color.FgHiBlue),
	feature.CategoryRNABinding:         color.New(color.FgHiBlue),
	feature.CategoryLigandBinding:      color.New(color.FgHiGreen),
	feature.CategoryModified:           color.New(color.FgHiMagenta),
}

func label(c feature.Category, opts Options) string {
	cc, ok := categoryColors[c]
	if !ok || !opts.Color {
		return c.DisplayName()
	}
	return cc.Sprint(c.DisplayName())
}

// RenderTable renders an annotated-residue summary block, one "# " line
// per residue, suitable for printing above or instead of the TSV body.
func RenderTable(t *table.Table, accession string, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s  length=%d\n", linePrefix, accession, t.Len())
	cats := feature.Categories()

	for _, row := range t.Rows {
		parts := make([]string, 0, 2)
		for _, c := range cats {
			if v := row.Cells[c]; v != "" {
				parts = append(parts, fmt.Sprintf("%s: %s", label(c, opts), v))
			}
		}
		if len(parts) == 0 {
			if opts.AnnotatedOnly {
				continue
			}
			fmt.Fprintf(&b, "%s%4d %s\n", linePrefix, row.Position, row.Code)
			continue
		}
		fmt.Fprintf(&b, "%s%4d %s  %s\n", linePrefix, row.Position, row.Code, strings.Join(parts, " | "))
	}
	return b.String()
}
