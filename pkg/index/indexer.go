package index

import (
	"context"
	"fmt"

	"github.com/sdejongh/wfam/pkg/logging"
	"github.com/sdejongh/wfam/pkg/models"
	"github.com/sdejongh/wfam/pkg/storage"
)

// Indexer scans base directories into a NameIndex
type Indexer struct {
	backend  storage.Backend
	logger   logging.Logger
	nameCase models.NameCase
}

// NewIndexer creates an indexer. A nil logger discards diagnostics.
func NewIndexer(backend storage.Backend, nameCase models.NameCase, logger logging.Logger) *Indexer {
	return &Indexer{
		backend:  backend,
		logger:   logging.OrNull(logger),
		nameCase: nameCase,
	}
}

// Index walks every directory recursively and returns one merged index.
// Later directories append to the occurrence lists of earlier ones.
// Any filesystem error aborts the whole run.
func (ix *Indexer) Index(ctx context.Context, dirs []string, filter models.ExtensionFilter) (*NameIndex, error) {
	merged := NewNameIndex(ix.nameCase)

	for _, dir := range dirs {
		idx, err := ix.indexDir(ctx, dir, filter)
		if err != nil {
			return nil, err
		}
		merged.Merge(idx)
	}

	ix.logger.Debug(ctx, "internal map built", logging.Fields{
		"names": merged.Len(),
		"files": merged.Files(),
	})

	return merged, nil
}

func (ix *Indexer) indexDir(ctx context.Context, dir string, filter models.ExtensionFilter) (*NameIndex, error) {
	logger := ix.logger.WithFields(logging.Fields{"base": dir})
	logger.Debug(ctx, "reading base folder content", nil)

	entries, err := ix.backend.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read base folder %s: %w", dir, err)
	}
	logger.Debug(ctx, "file entries read", logging.Fields{"entries": len(entries)})

	idx := NewNameIndex(ix.nameCase)
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		if !filter.Allows(e.Name) {
			logger.Debug(ctx, "unmatched file extension, skipping", logging.Fields{"path": e.Path})
			continue
		}
		idx.Add(e.Name, models.FileEntry{Path: e.Path, Size: e.Size})
	}

	logger.Debug(ctx, "building internal map completed", logging.Fields{"names": idx.Len()})
	return idx, nil
}
