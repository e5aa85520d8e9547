package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markorr321/GraphModuleStatus/internal/profile"
)

func setupProfilePath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Microsoft.PowerShell_profile.ps1")
	orig := profilePathFunc
	t.Cleanup(func() { profilePathFunc = orig })
	profilePathFunc = func() (string, error) { return path, nil }
	return path
}

func executeProfile(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"profile"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestProfileInstallAddsBlock(t *testing.T) {
	path := setupProfilePath(t)

	out, err := executeProfile(t, "install")
	require.NoError(t, err)
	assert.Contains(t, out, "Added startup status check")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), profile.Marker)
}

func TestProfileInstallIsIdempotent(t *testing.T) {
	path := setupProfilePath(t)

	_, err := executeProfile(t, "install")
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := executeProfile(t, "install")
	require.NoError(t, err)
	assert.Contains(t, out, "already installed")

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestProfileRemoveDropsBlockOnly(t *testing.T) {
	path := setupProfilePath(t)
	require.NoError(t, os.WriteFile(path, []byte("Import-Module posh-git\n"), 0o644))

	_, err := executeProfile(t, "install")
	require.NoError(t, err)

	out, err := executeProfile(t, "remove")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed startup status check")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Import-Module posh-git")
	assert.NotContains(t, string(content), profile.Marker)
}

func TestProfileRemoveWhenMissing(t *testing.T) {
	setupProfilePath(t)

	out, err := executeProfile(t, "remove")
	require.NoError(t, err)
	assert.Contains(t, out, "not installed")
}
