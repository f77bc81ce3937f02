// core/feature/category.go
package feature

// Category identifies one output column of the annotation table.
type Category string

const (
	CategorySecondaryStructure Category = "secondary_structure"
	CategoryDomain             Category = "domain"
	CategoryPfamDomain         Category = "pfam_domain"
	CategoryDisorder           Category = "disorder"
	CategoryDisulfide          Category = "disulfide_bridges"
	CategoryGlycosylation      Category = "glycosylation_sites"
	CategoryPhosphorylation    Category = "phosphorylation_sites"
	CategoryActiveSite         Category = "active_sites"
	CategoryMetalBinding       Category = "metal_binding"
	CategoryDNABinding         Category = "dna_binding"
	CategoryRNABinding         Category = "rna_binding"
	CategoryLigandBinding      Category = "ligand_binding"
	CategoryModified           Category = "modified_residues"
)

// categoryOrder is the canonical column order. Presenters and exporters
// depend on it; keep it as the single source of truth.
var categoryOrder = []Category{
	CategorySecondaryStructure,
	CategoryDomain,
	CategoryPfamDomain,
	CategoryDisorder,
	CategoryDisulfide,
	CategoryGlycosylation,
	CategoryPhosphorylation,
	CategoryActiveSite,
	CategoryMetalBinding,
	CategoryDNABinding,
	CategoryRNABinding,
	CategoryLigandBinding,
	CategoryModified,
}

// Categories returns the fixed column set in canonical order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

var displayNames = map[Category]string{
	CategorySecondaryStructure: "Secondary structure",
	CategoryDomain:             "Domain",
	CategoryPfamDomain:         "Pfam domain",
	CategoryDisorder:           "Disorder",
	CategoryDisulfide:          "Disulfide bridges",
	CategoryGlycosylation:      "Glycosylation sites",
	CategoryPhosphorylation:    "Phosphorylation sites",
	CategoryActiveSite:         "Active sites",
	CategoryMetalBinding:       "Metal binding",
	CategoryDNABinding:         "DNA binding",
	CategoryRNABinding:         "RNA binding",
	CategoryLigandBinding:      "Ligand binding",
	CategoryModified:           "Modified residues",
}

// DisplayName returns the human-readable column title.
func (c Category) DisplayName() string {
	if n, ok := displayNames[c]; ok {
		return n
	}
	return string(c)
}

// ParseCategory maps a column key (as used in config files and flags) back
// to a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categoryOrder {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
