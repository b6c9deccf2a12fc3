package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wrapgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "wrapgen:wrap", cfg.Directive)
	assert.Equal(t, "wrap", cfg.TagKey)
	assert.Equal(t, "inner", cfg.TagValue)
	require.NotNil(t, cfg.Mutable)
	assert.True(t, *cfg.Mutable)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
directive: shrink:wrap
tagKey: shrink
tagValue: main
mutable: false
workers: 2
manifest: decls.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shrink:wrap", cfg.Directive)
	assert.Equal(t, "shrink", cfg.TagKey)
	assert.Equal(t, "main", cfg.TagValue)
	assert.False(t, *cfg.Mutable)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "decls.yaml", cfg.Manifest)

	opts := cfg.PlanOptions()
	assert.False(t, opts.Mutable)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, `shrink:"main"`, opts.MarkerHint)

	l := cfg.Loader()
	assert.Equal(t, "shrink:wrap", l.Directive)
	assert.Equal(t, "shrink", l.TagKey)
	assert.Equal(t, "main", l.TagValue)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "workers: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "wrap", cfg.TagKey)
	assert.True(t, *cfg.Mutable)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvMutable, "false")
	t.Setenv(EnvWorkers, "16")
	t.Setenv(EnvTagKey, "newtype")

	cfg, err := Load(writeConfig(t, "workers: 2\nmutable: true\n"))
	require.NoError(t, err)
	assert.False(t, *cfg.Mutable)
	assert.Equal(t, 16, cfg.Workers)
	assert.Equal(t, "newtype", cfg.TagKey)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv(EnvWorkers, "many")

	_, err := Load(writeConfig(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvWorkers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "an explicit path must exist")

	_, err = Load(writeConfig(t, "workers: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_DefaultPathMayBeMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Directive, cfg.Directive)
}
