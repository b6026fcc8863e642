package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/lz1x/arc"
	"github.com/woozymasta/lz1x/internal/extract"
)

// run executes the app without letting cli.Exit terminate the test binary.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := app.Run(context.Background(), append([]string{"lz1x"}, args...))
	return out.String(), err
}

// abcStream decodes to "ABCABC".
var abcStream = []byte{0x10, 0x06, 0x00, 0x00, 0x10, 'A', 'B', 'C', 0x00, 0x02}

func TestDecompressCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.lz")
	require.NoError(t, os.WriteFile(in, abcStream, 0o600))

	_, err := run(t, "decompress", in)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "data"))
	require.NoError(t, err)
	require.Equal(t, []byte("ABCABC"), got)
}

func TestDecompressCommandRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "garbage.bin")
	require.NoError(t, os.WriteFile(in, []byte{0x20, 0, 0, 0}, 0o600))

	_, err := run(t, "decompress", in, filepath.Join(dir, "out"))
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "out"))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestInfoCommand(t *testing.T) {
	in := filepath.Join(t.TempDir(), "data.lz")
	require.NoError(t, os.WriteFile(in, abcStream, 0o600))

	out, err := run(t, "info", in)
	require.NoError(t, err)
	require.Contains(t, out, "variant:    LZ10")
	require.Contains(t, out, "size:       6")
}

func TestArcCommand(t *testing.T) {
	dir := t.TempDir()

	data := make([]byte, 32)
	binary.BigEndian.PutUint32(data[arc.TableOffset:], 32)
	binary.BigEndian.PutUint32(data[arc.TableOffset+4:], uint32(len(abcStream)))
	data = append(data, abcStream...)

	in := filepath.Join(dir, "test.arc")
	require.NoError(t, os.WriteFile(in, data, 0o600))

	outDir := filepath.Join(dir, "out")
	_, err := run(t, "arc", "--out-dir", outDir, "--workers", "2", "--decompress", "--manifest", in)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(outDir, "file_0.bin"))
	require.NoError(t, err)
	require.Equal(t, []byte("ABCABC"), got)

	_, err = os.Stat(filepath.Join(outDir, extract.ManifestName))
	require.NoError(t, err)
}

func TestDefaultOutput(t *testing.T) {
	require.Equal(t, "a/b", defaultOutput("a/b.LZ"))
	require.Equal(t, "x", defaultOutput("x.lz11"))
	require.Equal(t, "x.arc.bin", defaultOutput("x.arc"))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, version+"\n", out)
}
