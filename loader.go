package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// Loader stages one instance for a solver run: it decompresses the
// whole archive into memory (instances are small) and opens the
// per-instance log file in the mirrored output tree.
type Loader struct {
	CorpusRoot string
	OutputDir  string
}

// Load returns the decompressed instance text and the opened log file.
// The caller owns closing the log file. A pre-existing log file is
// truncated, never appended to.
func (l *Loader) Load(ref InstanceRef) (string, *os.File, error) {
	input, err := os.Open(ref.InputPath(l.CorpusRoot))
	if err != nil {
		return "", nil, err
	}
	defer input.Close()

	reader, err := xz.NewReader(bufio.NewReader(input))
	if err != nil {
		return "", nil, fmt.Errorf("corrupt archive %v: %w", ref.InputPath(l.CorpusRoot), err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decompress %v: %w", ref.InputPath(l.CorpusRoot), err)
	}

	logPath := ref.LogPath(l.OutputDir)
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return "", nil, err
	}
	logFile, err := os.Create(logPath)
	if err != nil {
		return "", nil, err
	}
	return string(data), logFile, nil
}
