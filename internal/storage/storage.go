// Package storage provides blob storage for photo binaries.
package storage

import (
	"context"
)

// BlobStore is the external object store holding photo binaries. Rows in the
// photos table reference blobs by URL only.
type BlobStore interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Delete removes the object with the given key.
	Delete(ctx context.Context, key string) error
}
