package main

import (
	"iter"
	"os"
	"path/filepath"
)

// EnumerateFiles yields every regular file under path in depth-first
// order; a path naming a file yields just that file. The sequence is
// lazy and restartable. The primary harness path reads its instance
// list from a manifest instead; this is for tooling that sweeps a whole
// corpus.
func EnumerateFiles(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		enumerate(path, yield)
	}
}

func enumerate(path string, yield func(string, error) bool) bool {
	info, err := os.Stat(path)
	if err != nil {
		return yield("", err)
	}
	if !info.IsDir() {
		return yield(path, nil)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return yield("", err)
	}
	for _, entry := range entries {
		if !enumerate(filepath.Join(path, entry.Name()), yield) {
			return false
		}
	}
	return true
}
