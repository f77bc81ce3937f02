// Package config loads the optional protanno YAML configuration:
// resolver policy knobs plus record-source settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"protanno-core/feature"
)

// DefaultFile is the config file looked up in the working directory when
// --config is not given.
const DefaultFile = "protanno.yaml"

// Fallback values accepted by the policy fields, besides a category
// column name.
const FallbackDrop = "drop"

// Config is the full file schema.
type Config struct {
	Policy  PolicyConfig  `yaml:"policy"`
	UniProt UniProtConfig `yaml:"uniprot"`
}

// PolicyConfig controls category disambiguation for records whose
// description matches no known keyword.
type PolicyConfig struct {
	// RegionFallback: "drop" or a category column name (e.g. "disorder").
	RegionFallback string `yaml:"region_fallback"`
	// BindingFallback: "drop" or a category column name.
	BindingFallback string `yaml:"binding_fallback"`
	// CaseSensitiveNucleic matches the DNA/RNA keywords case-sensitively.
	CaseSensitiveNucleic bool `yaml:"case_sensitive_nucleic"`
}

// UniProtConfig configures the record source client.
type UniProtConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

// Duration decodes YAML duration strings ("30s", "2m") into a
// time.Duration; yaml.v3 has no native support for them.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	td, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(td)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Default returns the built-in configuration: drop unmatched regions,
// route unmatched binding sites to the generic ligand column.
func Default() Config {
	return Config{
		Policy: PolicyConfig{
			RegionFallback:  FallbackDrop,
			BindingFallback: string(feature.CategoryLigandBinding),
		},
		UniProt: UniProtConfig{
			BaseURL: "",
			Timeout: Duration(30 * time.Second),
		},
	}
}

// LoadFile reads and validates a config file, layered over Default.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err := cfg.ResolverPolicy(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ResolverPolicy converts the file values into a core feature.Policy.
func (c Config) ResolverPolicy() (feature.Policy, error) {
	p := feature.DefaultPolicy()
	p.CaseSensitiveNucleic = c.Policy.CaseSensitiveNucleic

	var err error
	if p.RegionFallback, err = parseFallback(c.Policy.RegionFallback); err != nil {
		return p, fmt.Errorf("region_fallback: %w", err)
	}
	if p.BindingFallback, err = parseFallback(c.Policy.BindingFallback); err != nil {
		return p, fmt.Errorf("binding_fallback: %w", err)
	}
	return p, nil
}

func parseFallback(s string) (feature.Fallback, error) {
	if s == "" || s == FallbackDrop {
		return feature.DropRecord, nil
	}
	cat, ok := feature.ParseCategory(s)
	if !ok {
		return feature.Fallback{}, fmt.Errorf("unknown category %q", s)
	}
	return feature.DefaultTo(cat), nil
}
