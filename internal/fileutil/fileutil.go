// Package fileutil handles uploaded files between the multipart decoder and
// media storage: temp placement, content sniffing, and cleanup. Temp files
// must be removed after every outcome, success or failure.
package fileutil

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
)

// SaveTemp copies an uploaded part to a uniquely named file under dir
// (os.TempDir when empty) and returns its path.
func SaveTemp(fh *multipart.FileHeader, dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(dir, uuid.NewString()+filepath.Ext(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		Cleanup(path)
		return "", err
	}
	return path, nil
}

// IsAudio sniffs the file's magic bytes for a known audio container.
func IsAudio(path string) bool {
	buf, err := head(path)
	if err != nil {
		return false
	}
	return filetype.IsAudio(buf)
}

// IsImage sniffs the file's magic bytes for a known image format.
func IsImage(path string) bool {
	buf, err := head(path)
	if err != nil {
		return false
	}
	return filetype.IsImage(buf)
}

// Cleanup removes a temp file, tolerating paths that are already gone.
func Cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("failed to clean up temp file")
	}
}

// CleanupAll removes every given temp file.
func CleanupAll(paths ...string) {
	for _, p := range paths {
		Cleanup(p)
	}
}

func head(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// filetype needs at most 261 bytes to classify.
	buf := make([]byte, 261)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}
