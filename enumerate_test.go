package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, path string) []string {
	files := make([]string, 0)
	for file, err := range EnumerateFiles(path) {
		require.Nil(t, err)
		files = append(files, file)
	}
	return files
}

func TestEnumerateTree(t *testing.T) {
	dir := t.TempDir()
	for _, path := range []string{"a.opb.xz", "sub/b.opb.xz", "sub/deep/c.opb.xz"} {
		full := filepath.Join(dir, path)
		require.Nil(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.Nil(t, os.WriteFile(full, []byte{}, 0644))
	}

	files := collect(t, dir)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "a.opb.xz"),
		filepath.Join(dir, "sub", "b.opb.xz"),
		filepath.Join(dir, "sub", "deep", "c.opb.xz"),
	}, files)

	// restartable: a second pass sees the same files
	require.ElementsMatch(t, files, collect(t, dir))
}

func TestEnumerateSingleFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "only.opb.xz")
	require.Nil(t, os.WriteFile(file, []byte{}, 0644))
	require.Equal(t, []string{file}, collect(t, file))
}

func TestEnumerateMissingPath(t *testing.T) {
	for _, err := range EnumerateFiles(filepath.Join(t.TempDir(), "nope")) {
		require.NotNil(t, err)
	}
}

func TestEnumerateStopsEarly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0644))
	}
	seen := 0
	for _, err := range EnumerateFiles(dir) {
		require.Nil(t, err)
		seen++
		break
	}
	require.Equal(t, 1, seen)
}
