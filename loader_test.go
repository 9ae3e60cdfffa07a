package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func writeInstance(t *testing.T, path string, content string) {
	require.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))
	var buf bytes.Buffer
	writer, err := xz.NewWriter(&buf)
	require.Nil(t, err)
	_, err = writer.Write([]byte(content))
	require.Nil(t, err)
	require.Nil(t, writer.Close())
	require.Nil(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestLoadRoundTrip(t *testing.T) {
	corpus, out := t.TempDir(), t.TempDir()
	content := "* #variable= 2 #constraint= 1\n+1 x1 +1 x2 >= 1;\n"
	writeInstance(t, filepath.Join(corpus, "group", "a.opb.xz"), content)

	loader := &Loader{CorpusRoot: corpus, OutputDir: out}
	text, logFile, err := loader.Load("group/a.opb")
	require.Nil(t, err)
	defer logFile.Close()

	require.Equal(t, content, text)
	require.Equal(t, filepath.Join(out, "group", "a.txt"), logFile.Name())
	_, err = os.Stat(logFile.Name())
	require.Nil(t, err)
}

func TestLoadTruncatesPreviousLog(t *testing.T) {
	corpus, out := t.TempDir(), t.TempDir()
	writeInstance(t, filepath.Join(corpus, "a.opb.xz"), "data")

	loader := &Loader{CorpusRoot: corpus, OutputDir: out}
	_, logFile, err := loader.Load("a.opb")
	require.Nil(t, err)
	_, err = logFile.WriteString("stale diagnostics")
	require.Nil(t, err)
	require.Nil(t, logFile.Close())

	_, logFile, err = loader.Load("a.opb")
	require.Nil(t, err)
	defer logFile.Close()
	data, err := os.ReadFile(logFile.Name())
	require.Nil(t, err)
	require.Empty(t, data)
}

func TestLoadCorruptArchive(t *testing.T) {
	corpus, out := t.TempDir(), t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(corpus, "bad.opb.xz"), []byte("not xz at all"), 0644))

	loader := &Loader{CorpusRoot: corpus, OutputDir: out}
	_, _, err := loader.Load("bad.opb")
	require.NotNil(t, err)
}

func TestLoadMissingInstance(t *testing.T) {
	loader := &Loader{CorpusRoot: t.TempDir(), OutputDir: t.TempDir()}
	_, _, err := loader.Load("ghost.opb")
	require.NotNil(t, err)
}
