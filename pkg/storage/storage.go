// Package storage is the blob-storage collaborator for uploaded media.
// Files land either in an S3 bucket or on local disk; callers only see
// opaque served URLs.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Storage persists uploaded file content and serves it back by URL.
type Storage interface {
	// Save writes the content under the given key and returns the served URL.
	Save(ctx context.Context, key string, content []byte, contentType string) (string, error)
	// Delete removes the blob behind a previously returned URL. Unknown URLs
	// are not an error.
	Delete(ctx context.Context, url string) error
}

// New picks the backend from configuration: S3 when a bucket is configured,
// local disk otherwise.
func New() (Storage, error) {
	if viper.GetString("S3_BUCKET_NAME") != "" {
		return NewS3Storage()
	}
	return NewLocalStorage(viper.GetString("UPLOAD_DIR"))
}

// ObjectKey builds a collision-free key for an uploaded filename. The
// randomized prefix is the upload contract: concurrent uploads of the same
// filename never clash.
func ObjectKey(filename string) string {
	name := strings.ToLower(filepath.Base(filename))
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s_%s", uuid.New().String(), name)
}
