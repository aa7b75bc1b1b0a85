// Package storage defines interfaces for frame storage operations.
//
// This package provides abstractions for writing encoded frames to
// various sinks (local filesystem, S3).
package storage

import "context"

// Writer writes one encoded frame to storage.
type Writer interface {
	// Write stores the frame under the given file name and returns the
	// final path or URI. An existing frame with the same name is
	// overwritten.
	Write(ctx context.Context, name string, frame []byte) (string, error)

	// Close closes the writer and releases resources.
	Close() error
}
