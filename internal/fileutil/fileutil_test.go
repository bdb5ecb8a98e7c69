package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestIsAudio(t *testing.T) {
	// Minimal ID3v2 header, enough for magic-byte sniffing.
	mp3 := writeFile(t, "track.mp3", []byte{'I', 'D', '3', 3, 0, 0, 0, 0, 0, 0})
	assert.True(t, IsAudio(mp3))

	png := writeFile(t, "cover.png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0})
	assert.False(t, IsAudio(png))
}

func TestIsImage(t *testing.T) {
	png := writeFile(t, "cover.png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0})
	assert.True(t, IsImage(png))

	text := writeFile(t, "notes.txt", []byte("not an image"))
	assert.False(t, IsImage(text))
}

func TestSniffMissingFile(t *testing.T) {
	assert.False(t, IsAudio(filepath.Join(t.TempDir(), "missing.mp3")))
	assert.False(t, IsImage(filepath.Join(t.TempDir(), "missing.png")))
}

func TestCleanup(t *testing.T) {
	path := writeFile(t, "tmp.bin", []byte{1, 2, 3})
	Cleanup(path)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing twice must not panic or error out loud.
	Cleanup(path)
	Cleanup("")
}

func TestCleanupAll(t *testing.T) {
	a := writeFile(t, "a.bin", []byte{1})
	b := writeFile(t, "b.bin", []byte{2})
	CleanupAll(a, b, "")

	_, err := os.Stat(a)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(b)
	assert.True(t, os.IsNotExist(err))
}
