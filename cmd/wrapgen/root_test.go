package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manifestPath = filepath.Join("..", "..", "examples", "manifest", "wrappers.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCheckCmd_ManifestMutable(t *testing.T) {
	out, err := execute(t, "check", "--manifest", manifestPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s) in 5 declaration(s)")

	assert.Contains(t, out, "Quux")
	assert.Contains(t, out, "field2")
	assert.Contains(t, out, "n-ary tuple")
	assert.Contains(t, out, "[Scoped] value: [visibility_indeterminate]")
}

func TestCheckCmd_ManifestImmutableOnly(t *testing.T) {
	out, err := execute(t, "check", "--manifest", manifestPath, "--mutable=false")
	require.NoError(t, err)
	assert.Contains(t, out, "FAILED 0")
}

func TestCheckCmd_Dump(t *testing.T) {
	out, err := execute(t, "check", "-m", manifestPath, "--mutable=false", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, `Name: (string) (len=4) "Quux"`)
}

func TestCheckCmd_Packages(t *testing.T) {
	out, err := execute(t, "check", "-v", "wrapgen/examples/layered/...")
	require.Error(t, err, "Gauge exposes a package-private field")

	assert.Contains(t, out, "Route")
	assert.Contains(t, out, "Meters")
	assert.Contains(t, out, "[inner_field_restricted]")
	assert.Contains(t, out, "[inner_selected]", "verbose shows infos")
}

func TestCheckCmd_NothingToCheck(t *testing.T) {
	_, err := execute(t, "check")
	require.ErrorIs(t, err, errNothingToCheck)
}

func TestScopeCmd(t *testing.T) {
	out, err := execute(t, "scope", "module", "public")
	require.NoError(t, err)
	assert.Contains(t, out, "field access: visible")

	out, err = execute(t, "scope", "public", "module")
	require.Error(t, err)
	assert.Contains(t, out, "field access: restricted")

	_, err = execute(t, "scope", "private", "in a/b")
	require.EqualError(t, err, "field access is indeterminate")
}

func TestScopeCmd_InvalidArgs(t *testing.T) {
	_, err := execute(t, "scope", "public")
	require.Error(t, err)

	_, err = execute(t, "scope", "galaxy", "public")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declaration scope")
}
