package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/fileutil"
)

// formImage saves an optional image part to a temp file and sniffs its
// content. Returns "" when the part is absent; the caller owns cleanup.
func formImage(c *gin.Context, field string) (string, error) {
	path, err := formFile(c, field)
	if err != nil || path == "" {
		return path, err
	}
	if !fileutil.IsImage(path) {
		fileutil.Cleanup(path)
		return "", fmt.Errorf("%w: %s must be an image file", domain.ErrValidation, field)
	}
	return path, nil
}

// formAudio saves an optional audio part to a temp file and sniffs its
// content. Returns "" when the part is absent; the caller owns cleanup.
func formAudio(c *gin.Context, field string) (string, error) {
	path, err := formFile(c, field)
	if err != nil || path == "" {
		return path, err
	}
	if !fileutil.IsAudio(path) {
		fileutil.Cleanup(path)
		return "", fmt.Errorf("%w: %s must be an audio file", domain.ErrValidation, field)
	}
	return path, nil
}

func formFile(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("%w: bad %s upload", domain.ErrValidation, field)
	}
	path, err := fileutil.SaveTemp(fh, "")
	if err != nil {
		return "", fmt.Errorf("failed to buffer %s upload: %w", field, err)
	}
	return path, nil
}
