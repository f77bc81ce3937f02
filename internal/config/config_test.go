// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protanno-core/feature"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protanno.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultPolicy(t *testing.T) {
	p, err := Default().ResolverPolicy()
	require.NoError(t, err)
	assert.True(t, p.RegionFallback.Drop)
	assert.False(t, p.BindingFallback.Drop)
	assert.Equal(t, feature.CategoryLigandBinding, p.BindingFallback.Category)
	assert.False(t, p.CaseSensitiveNucleic)
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
policy:
  region_fallback: disorder
  binding_fallback: drop
  case_sensitive_nucleic: true
uniprot:
  base_url: http://localhost:9999/uniprotkb
  timeout: 5s
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	p, err := cfg.ResolverPolicy()
	require.NoError(t, err)
	assert.Equal(t, feature.DefaultTo(feature.CategoryDisorder), p.RegionFallback)
	assert.True(t, p.BindingFallback.Drop)
	assert.True(t, p.CaseSensitiveNucleic)

	assert.Equal(t, "http://localhost:9999/uniprotkb", cfg.UniProt.BaseURL)
	assert.Equal(t, 5*time.Second, time.Duration(cfg.UniProt.Timeout))
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "policy:\n  case_sensitive_nucleic: true\n")
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FallbackDrop, cfg.Policy.RegionFallback)
	assert.Equal(t, string(feature.CategoryLigandBinding), cfg.Policy.BindingFallback)
	assert.Equal(t, 30*time.Second, time.Duration(cfg.UniProt.Timeout))
}

func TestLoadFileUnknownCategory(t *testing.T) {
	path := writeConfig(t, "policy:\n  region_fallback: nonsense\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadFileBadYAML(t *testing.T) {
	path := writeConfig(t, "policy: [not a map")
	_, err := LoadFile(path)
	require.Error(t, err)
}
