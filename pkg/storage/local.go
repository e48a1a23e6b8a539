package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Local is a filesystem-based storage backend.
// A Local with an empty root resolves every path verbatim against the host filesystem.
type Local struct {
	rootPath string
}

// NewLocal creates a new local filesystem backend rooted at an existing directory
func NewLocal(rootPath string) (*Local, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	return &Local{rootPath: absPath}, nil
}

// NewHost creates a backend that uses paths as given, relative ones against the working directory
func NewHost() *Local {
	return &Local{}
}

// Root returns the backend root, empty for a host backend
func (l *Local) Root() string {
	return l.rootPath
}

func (l *Local) resolve(path string) string {
	if l.rootPath == "" {
		if path == "" {
			return "."
		}
		return path
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.rootPath, path)
}

// List returns all entries below path recursively.
// Symbolic links are reported with the metadata of their target and are never descended.
func (l *Local) List(ctx context.Context, path string) ([]FileInfo, error) {
	fullPath, err := filepath.Abs(l.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	// WalkDir does not descend into a root that is itself a link
	if info, err := os.Lstat(fullPath); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if fullPath, err = filepath.EvalSymlinks(fullPath); err != nil {
			return nil, fmt.Errorf("failed to resolve link: %w", err)
		}
	}
	var files []FileInfo

	err = filepath.WalkDir(fullPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p == fullPath {
			return nil
		}

		relPath, err := filepath.Rel(fullPath, p)
		if err != nil {
			return err
		}

		var info fs.FileInfo
		if d.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(p)
		} else {
			info, err = d.Info()
		}
		if err != nil {
			return err
		}

		files = append(files, FileInfo{
			Path:         p,
			Name:         d.Name(),
			Size:         info.Size(),
			ModTime:      info.ModTime(),
			IsDir:        info.IsDir(),
			RelativePath: relPath,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return files, nil
}

// Subdirs returns the immediate subdirectories of dir
func (l *Local) Subdirs(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath := l.resolve(dir)
	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(fullPath, e.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		if isDir {
			dirs = append(dirs, joinText(dir, e.Name()))
		}
	}

	return dirs, nil
}

// joinText appends name to dir without cleaning, so callers can match the
// result against the text they started from
func joinText(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// Exists checks if a file or directory exists
func (l *Local) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(l.resolve(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence: %w", err)
}

// Stat returns entry metadata
func (l *Local) Stat(ctx context.Context, path string) (*FileInfo, error) {
	fullPath := l.resolve(path)

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	relPath := absPath
	if l.rootPath != "" {
		if relPath, err = filepath.Rel(l.rootPath, absPath); err != nil {
			return nil, err
		}
	}

	return &FileInfo{
		Path:         absPath,
		Name:         info.Name(),
		Size:         info.Size(),
		ModTime:      info.ModTime(),
		IsDir:        info.IsDir(),
		RelativePath: relPath,
	}, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
