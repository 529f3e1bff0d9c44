package storage

import "context"

// BlobStore defines the interface for binary asset storage. Blobs are
// addressed by name and retrievable at the URL returned from Upload.
type BlobStore interface {
	// Upload writes data under the given blob name with the given content
	// type and returns the publicly accessible URL of the blob.
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)

	// Remove deletes the named blob.
	Remove(ctx context.Context, name string) error
}
