// Package storage hosts media blobs in MongoDB GridFS behind the
// domain.MediaStorage interface. URLs are gridfs://<folder>/<file-id>.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harmonia-app/harmonia/domain"
)

const urlScheme = "gridfs://"

type GridFSStorage struct {
	bucket *gridfs.Bucket
}

func NewGridFS(db *mongo.Database) (domain.MediaStorage, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, fmt.Errorf("%w: create gridfs bucket: %v", domain.ErrUpstream, err)
	}
	return &GridFSStorage{bucket: bucket}, nil
}

// Upload streams a local file into the bucket under the given folder. The
// local file is left in place; callers own its cleanup.
func (s *GridFSStorage) Upload(ctx context.Context, localPath, folder string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: open upload source: %v", domain.ErrUpstream, err)
	}
	defer f.Close()

	opts := options.GridFSUpload().SetMetadata(bson.M{"folder": folder})
	name := path.Join(folder, path.Base(localPath))
	fileID, err := s.bucket.UploadFromStream(name, f, opts)
	if err != nil {
		return "", fmt.Errorf("%w: gridfs upload: %v", domain.ErrUpstream, err)
	}
	return urlScheme + folder + "/" + fileID.Hex(), nil
}

// Remove deletes the blob a previously returned URL points at. Empty or
// foreign URLs are ignored, matching the tolerant delete path.
func (s *GridFSStorage) Remove(ctx context.Context, url string) error {
	id, ok := parseURL(url)
	if !ok {
		return nil
	}
	if err := s.bucket.Delete(id); err != nil {
		if err == gridfs.ErrFileNotFound {
			return nil
		}
		return fmt.Errorf("%w: gridfs delete: %v", domain.ErrUpstream, err)
	}
	return nil
}

func parseURL(url string) (primitive.ObjectID, bool) {
	if !strings.HasPrefix(url, urlScheme) {
		return primitive.NilObjectID, false
	}
	hex := url[strings.LastIndex(url, "/")+1:]
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
