package storage

import (
	"context"
	"time"
)

// FileInfo represents metadata about a filesystem entry
type FileInfo struct {
	Path         string
	Name         string
	Size         int64
	ModTime      time.Time
	IsDir        bool
	RelativePath string
}

// Backend defines the read-only operations the scanners need.
// Implementations never modify the tree they read.
type Backend interface {
	// List returns every entry below path recursively, directories included,
	// in lexical walk order
	List(ctx context.Context, path string) ([]FileInfo, error)

	// Subdirs returns the immediate subdirectories of dir, in name order.
	// Returned paths are dir joined textually with each child name.
	Subdirs(ctx context.Context, dir string) ([]string, error)

	// Exists checks if a file or directory exists
	Exists(ctx context.Context, path string) (bool, error)

	// Stat returns entry metadata
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Close releases any resources held by the backend
	Close() error
}
