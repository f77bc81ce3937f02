// internal/pretty/pretty_test.go
package pretty

import (
	"strings"
	"testing"

	"protanno-core/feature"
	"protanno-core/table"
)

func fixture(t *testing.T) *table.Table {
	t.Helper()
	b := table.NewBuilder(feature.NewResolver(feature.DefaultPolicy()))
	tbl, err := b.Build("MKTAYIAKQR", []feature.Record{
		{Type: "helix", Loc: feature.Between(2, 4)},
		{Type: "binding site", Description: "Zinc ion", Loc: feature.At(7)},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return tbl
}

func TestRenderAnnotatedOnly(t *testing.T) {
	out := RenderTable(fixture(t), "P99999", DefaultOptions)

	if !strings.Contains(out, "P99999") || !strings.Contains(out, "length=10") {
		t.Fatalf("missing header: %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + residues 2,3,4 (HELIX) + residue 7 (Zinc ion)
	if len(lines) != 5 {
		t.Fatalf("line count %d, want 5:\n%s", len(lines), out)
	}
	for _, ln := range lines {
		if !strings.HasPrefix(ln, linePrefix) {
			t.Errorf("line without %q prefix: %q", linePrefix, ln)
		}
	}
	if !strings.Contains(out, "HELIX") || !strings.Contains(out, "Zinc ion") {
		t.Errorf("missing annotations:\n%s", out)
	}
}

func TestRenderAllResidues(t *testing.T) {
	out := RenderTable(fixture(t), "P99999", Options{AnnotatedOnly: false})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 11 { // header + 10 residues
		t.Fatalf("line count %d, want 11:\n%s", len(lines), out)
	}
}

func TestRenderPlainWithoutColor(t *testing.T) {
	out := RenderTable(fixture(t), "P99999", Options{AnnotatedOnly: true})
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected ANSI escapes without Color option:\n%q", out)
	}
}
