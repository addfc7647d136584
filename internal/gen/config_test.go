package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
seed: 1234
targets:
  simple_creation: 100
  navigation: 20
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, map[string]int{"simple_creation": 100, "navigation": 20}, cfg.Targets)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "targets: [not, a, map")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestApplyTargets_Overrides(t *testing.T) {
	categories, err := ApplyTargets(Registry(), map[string]int{"batch": 42})
	require.NoError(t, err)

	for _, cat := range categories {
		if cat.Name == "batch" {
			assert.Equal(t, 42, cat.Target)
		}
	}
	// Registry itself is untouched.
	for _, cat := range Registry() {
		if cat.Name == "batch" {
			assert.Equal(t, 500, cat.Target)
		}
	}
}

func TestApplyTargets_UnknownCategory(t *testing.T) {
	_, err := ApplyTargets(Registry(), map[string]int{"mystery": 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
}

func TestApplyTargets_NoOverrides(t *testing.T) {
	categories := Registry()
	out, err := ApplyTargets(categories, nil)
	require.NoError(t, err)
	assert.Equal(t, categories, out)
}
