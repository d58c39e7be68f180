/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package workspace

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "workspace.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestExtract(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"MRO_Area1/output/OUT_Closures.shp": "shp-bytes",
		"MRO_Area1/output/OUT_Closures.dbf": "dbf-bytes",
		"readme.txt":                        "notes",
	})

	dest := t.TempDir()
	require.NoError(t, Extract(archive, dest))

	data, err := os.ReadFile(filepath.Join(dest, "MRO_Area1", "output", "OUT_Closures.shp"))
	require.NoError(t, err)
	assert.Equal(t, "shp-bytes", string(data))
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"../escape.txt": "nope",
	})

	err := Extract(archive, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes")
}

func TestDiscoverExportDirectory(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "MRO_CityWest", "output")
	require.NoError(t, os.MkdirAll(out, 0750))

	dir, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, out, dir)
}

func TestDiscoverExportDirectoryWithoutOutput(t *testing.T) {
	root := t.TempDir()
	export := filepath.Join(root, "MRO_CityWest")
	require.NoError(t, os.MkdirAll(export, 0750))

	dir, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, export, dir)
}

func TestDiscoverOutputSubdirectory(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "output")
	require.NoError(t, os.MkdirAll(out, 0750))

	dir, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, out, dir)
}

func TestDiscoverByClosuresLayer(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "exports", "run-42")
	require.NoError(t, os.MkdirAll(nested, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "OUT_Closures.shp"), []byte("x"), 0640))

	dir, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, nested, dir)
}

func TestDiscoverFallsBackToRoot(t *testing.T) {
	root := t.TempDir()

	dir, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, root, dir)
}
