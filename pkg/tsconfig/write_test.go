package tsconfig_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arnavsurve/tsconfig-init/pkg/tsconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDir(t *testing.T) {
	cwd := filepath.FromSlash("/work")

	assert.Equal(t, cwd, tsconfig.ProjectDir(cwd, "."))
	assert.Equal(t, cwd, tsconfig.ProjectDir(cwd, ""))
	assert.Equal(t, filepath.Join(cwd, "app"), tsconfig.ProjectDir(cwd, "app"))
	assert.Equal(t, filepath.Join(cwd, "packages", "ui"), tsconfig.ProjectDir(cwd, "packages/ui"))

	abs := filepath.Join(t.TempDir(), "elsewhere")
	assert.Equal(t, abs, tsconfig.ProjectDir(cwd, abs))
}

func TestWrite_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "app")
	cfg := tsconfig.Generate(tsconfig.DefaultOptions())

	path, err := tsconfig.Write(dir, cfg, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, tsconfig.FileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "NodeNext", got["compilerOptions"]["module"])
}

func TestWrite_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, tsconfig.FileName)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	_, err := tsconfig.Write(dir, tsconfig.Generate(tsconfig.DefaultOptions()), false)
	require.ErrorIs(t, err, tsconfig.ErrExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data), "existing file must be untouched")
}

func TestWrite_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, tsconfig.FileName)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	_, err := tsconfig.Write(dir, tsconfig.Generate(tsconfig.DefaultOptions()), true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"compilerOptions"`)
}
