// Package storage keeps the binary objects referenced by memories in an
// S3-compatible bucket.
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is the binary object backend used by uploads and deletions.
type ObjectStore interface {
	// Put uploads body under key and returns the object's public URL.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for a private object.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	// KeyFromURL recovers the object key from a URL previously returned by
	// Put. ok is false when the URL does not point into this store.
	KeyFromURL(rawURL string) (key string, ok bool)
}
