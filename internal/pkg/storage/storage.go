// Package storage abstracts the object store that holds uploaded media.
//
// Adapters exist for MinIO and AWS S3. Buckets are bound at construction so
// callers deal only in object keys.
package storage

import (
	"context"
	"io"
)

// Storage defines the object store operations used by the application.
type Storage interface {
	io.Closer

	// Upload stores data under key and returns object metadata, including the
	// publicly reachable URL of the object.
	Upload(ctx context.Context, key string, r io.Reader, opts UploadOptions) (ObjectInfo, error)
	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}

// UploadOptions configures upload behavior.
type UploadOptions struct {
	// Size is the expected content length.
	Size int64
	// ContentType is the MIME type for the object.
	ContentType string
	// Metadata includes custom key/value metadata.
	Metadata map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	// Key is the object key.
	Key string
	// Size is the object size in bytes.
	Size int64
	// ETag is the object ETag when provided.
	ETag string
	// ContentType is the object MIME type.
	ContentType string
	// URL is the publicly reachable location of the object.
	URL string
}
