// core/feature/resolve.go
package feature

import "strings"

// Fallback decides what happens when a disambiguated type matches none of
// its keywords: drop the record, or assign a default category.
type Fallback struct {
	Category Category // ignored when Drop is true
	Drop     bool
}

// DropRecord is the Fallback that discards unmatched records.
var DropRecord = Fallback{Drop: true}

// DefaultTo returns a Fallback that assigns c to unmatched records.
func DefaultTo(c Category) Fallback { return Fallback{Category: c} }

// Policy fixes the resolver behavior that varies across deployments:
// what to do with "region" and "binding site" records whose description
// matches no known keyword, and whether the DNA/RNA keywords are matched
// case-sensitively.
type Policy struct {
	RegionFallback       Fallback
	BindingFallback      Fallback
	CaseSensitiveNucleic bool
}

// DefaultPolicy drops unmatched regions and routes unmatched binding sites
// to the generic ligand-binding column; DNA/RNA match case-insensitively
// like every other keyword.
func DefaultPolicy() Policy {
	return Policy{
		RegionFallback:  DropRecord,
		BindingFallback: DefaultTo(CategoryLigandBinding),
	}
}

// keywordRule is one step of an ordered disambiguation list: any of its
// keywords selects the category. Evaluated top to bottom; first hit wins.
type keywordRule struct {
	keywords      []string
	category      Category
	caseSensitive bool // set per-policy for DNA/RNA
}

// metalKeywords match metal-binding descriptions, which usually name the
// coordinated ion ("Zinc ion", "Iron-sulfur (2Fe-2S)") rather than the
// word "metal" itself.
var metalKeywords = []string{
	"metal", "zinc", "iron", "copper", "calcium",
	"magnesium", "manganese", "nickel", "cobalt", "sodium", "potassium",
}

// directMap covers types that map 1:1 onto a column.
var directMap = map[string]Category{
	"helix":              CategorySecondaryStructure,
	"strand":             CategorySecondaryStructure,
	"turn":               CategorySecondaryStructure,
	"domain":             CategoryDomain,
	"glycosylation site": CategoryGlycosylation,
	"modified residue":   CategoryModified,
	"active site":        CategoryActiveSite,
	"site":               CategoryPhosphorylation,
	"disulfide bond":     CategoryDisulfide,
}

// Resolver maps (feature type, description) to the output categories the
// record contributes to. Pure and stateless: identical inputs always yield
// identical outputs for a given Policy.
type Resolver struct {
	regionRules  []keywordRule
	bindingRules []keywordRule
	policy       Policy
}

// NewResolver builds a Resolver for the given policy.
func NewResolver(p Policy) *Resolver {
	return &Resolver{
		regionRules: []keywordRule{
			{keywords: []string{"pfam"}, category: CategoryPfamDomain},
			{keywords: []string{"disorder"}, category: CategoryDisorder},
		},
		bindingRules: []keywordRule{
			{keywords: metalKeywords, category: CategoryMetalBinding},
			{keywords: []string{"dna"}, category: CategoryDNABinding, caseSensitive: p.CaseSensitiveNucleic},
			{keywords: []string{"rna"}, category: CategoryRNABinding, caseSensitive: p.CaseSensitiveNucleic},
		},
		policy: p,
	}
}

// Resolve returns the categories for one record, in priority order.
// An empty result means the record is unrecognized and must be dropped.
func (r *Resolver) Resolve(featureType, description string) []Category {
	ft := strings.ToLower(strings.TrimSpace(featureType))

	if c, ok := directMap[ft]; ok {
		return []Category{c}
	}

	switch ft {
	case "region", "region of interest":
		return applyRules(r.regionRules, description, r.policy.RegionFallback)
	case "binding site":
		return applyRules(r.bindingRules, description, r.policy.BindingFallback)
	}
	return nil
}

func applyRules(rules []keywordRule, description string, fb Fallback) []Category {
	lower := strings.ToLower(description)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if rule.caseSensitive {
				// Case-sensitive variants match the keyword upper-cased
				// ("DNA", "RNA") against the raw description.
				if strings.Contains(description, strings.ToUpper(kw)) {
					return []Category{rule.category}
				}
				continue
			}
			if strings.Contains(lower, kw) {
				return []Category{rule.category}
			}
		}
	}
	if fb.Drop {
		return nil
	}
	return []Category{fb.Category}
}
