package storage

import (
	"context"
	"io"
	"time"
)

// Package storage abstracts the object store holding document bytes.
// Objects live flat under one configured bucket (the upload root); keys never
// contain path separators, so nothing can resolve outside the root.

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Name         string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is an S3-compatible object store client. Methods take context and
// stream content; nothing is buffered to local disk.
type Storage interface {
	// Put uploads an object under name. size must be the exact byte count.
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader plus its info.
	Get(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object. Used to roll back an upload whose metadata
	// insert failed, so no document row ever references a missing object.
	Delete(ctx context.Context, name string) error
	// PresignGet returns a time-limited download URL for the object.
	PresignGet(ctx context.Context, name string, expiry time.Duration) (string, error)
}
