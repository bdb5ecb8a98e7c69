package domain

import "context"

// MediaStorage hosts uploaded media blobs. Upload consumes a local file and
// returns a stable URL; Remove accepts a URL previously returned by Upload.
// Callers own temp-file cleanup regardless of the outcome.
type MediaStorage interface {
	Upload(ctx context.Context, localPath, folder string) (string, error)
	Remove(ctx context.Context, url string) error
}
