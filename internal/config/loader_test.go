package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "2.2", cfg.TargetVersion)
	assert.Empty(t, cfg.Only)
	assert.Empty(t, cfg.Skip)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "django-upgrade.yml", `
target_version: "4.2"
only:
  - psycopg2_to_psycopg3
skip:
  - format_html
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4.2", cfg.TargetVersion)
	assert.Equal(t, []string{"psycopg2_to_psycopg3"}, cfg.Only)
	assert.Equal(t, []string{"format_html"}, cfg.Skip)
}

// Fields missing from the YAML keep their defaults.
func TestLoadPartialConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "django-upgrade.yml", "skip: [admin_allow_tags]\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2.2", cfg.TargetVersion)
	assert.Equal(t, []string{"admin_allow_tags"}, cfg.Skip)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "django-upgrade.yml", "target_version: [\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestDiscoverSearchOrder(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, discover(dir))

	hidden := writeConfig(t, dir, ".django-upgrade.yaml", "")
	assert.Equal(t, hidden, discover(dir))

	yaml := writeConfig(t, dir, "django-upgrade.yaml", "")
	assert.Equal(t, yaml, discover(dir), "undotted name wins over dotted")

	yml := writeConfig(t, dir, "django-upgrade.yml", "")
	assert.Equal(t, yml, discover(dir), ".yml wins over .yaml")
}
