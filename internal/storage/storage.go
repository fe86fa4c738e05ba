// Package storage persists product images and hands back the URL recorded
// on the product.
package storage

import "context"

type Storage interface {
	// Store writes data under name and returns the public URL of the object.
	Store(ctx context.Context, data []byte, name string) (string, error)
	// Delete removes the object behind url. URLs the backend does not own
	// are ignored.
	Delete(ctx context.Context, url string) error
}

const (
	TypeLocal = "local"
	TypeGCS   = "gcs"

	objectPrefix = "products/"
)
