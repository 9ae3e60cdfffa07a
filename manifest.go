package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	compressSuffix = ".xz"
	instanceSuffix = ".opb"
	logSuffix      = ".txt"
)

// InstanceRef is the relative path of one benchmark instance within the
// corpus as listed in the manifest, e.g. "group/name.opb". The file on
// disk carries an additional compression suffix.
type InstanceRef string

func (r InstanceRef) InputPath(corpusRoot string) string {
	return filepath.Join(corpusRoot, string(r)+compressSuffix)
}

// Name is the human-readable instance name with the domain suffix
// stripped.
func (r InstanceRef) Name() string {
	return strings.TrimSuffix(filepath.Base(string(r)), instanceSuffix)
}

// LogPath mirrors the instance's corpus subdirectory under outputDir.
func (r InstanceRef) LogPath(outputDir string) string {
	return filepath.Join(outputDir, filepath.Dir(string(r)), r.Name()+logSuffix)
}

// ReadManifest reads one instance identifier per line; blank lines left
// over from splitting are skipped.
func ReadManifest(path string) ([]InstanceRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	refs := make([]InstanceRef, 0)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		refs = append(refs, InstanceRef(line))
	}
	return refs, nil
}

// ValidateManifest checks that every listed instance resolves to an
// existing corpus file, so a half-valid manifest fails before any
// solver time is spent on it.
func ValidateManifest(corpusRoot string, refs []InstanceRef) error {
	for _, ref := range refs {
		path := ref.InputPath(corpusRoot)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("instance %v: %w", ref, err)
		}
	}
	return nil
}
