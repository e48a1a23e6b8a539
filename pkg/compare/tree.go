package compare

import (
	"context"
	"fmt"

	"github.com/sdejongh/wfam/pkg/index"
	"github.com/sdejongh/wfam/pkg/logging"
	"github.com/sdejongh/wfam/pkg/models"
	"github.com/sdejongh/wfam/pkg/storage"
)

// TreeComparator classifies every file of an unsorted tree against a base index
type TreeComparator struct {
	backend  storage.Backend
	logger   logging.Logger
	progress Progress
}

// NewTreeComparator creates a comparator. A nil logger discards diagnostics.
func NewTreeComparator(backend storage.Backend, logger logging.Logger) *TreeComparator {
	return &TreeComparator{
		backend:  backend,
		logger:   logging.OrNull(logger),
		progress: nopProgress{},
	}
}

// SetProgress installs a progress observer; nil restores the silent default
func (c *TreeComparator) SetProgress(p Progress) {
	if p == nil {
		p = nopProgress{}
	}
	c.progress = p
}

// Compare walks root recursively and sorts its files into Missing and Different.
// Files whose name and size match a base occurrence are counted but not listed.
// Result order follows the walk order. Any filesystem error aborts the run.
func (c *TreeComparator) Compare(ctx context.Context, idx *index.NameIndex, root string, filter models.ExtensionFilter) (*models.Result, error) {
	entries, err := c.backend.List(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read unsorted folder %s: %w", root, err)
	}

	result := &models.Result{}
	files := make([]storage.FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		if !filter.Allows(e.Name) {
			c.logger.Debug(ctx, "unmatched unsorted file extension, skipping", logging.Fields{"path": e.Path})
			result.Skipped++
			continue
		}
		files = append(files, e)
	}

	c.progress.Start(len(files))
	defer c.progress.Finish()

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := models.FileEntry{Path: f.Path, Size: f.Size}
		switch Classify(idx, f.Name, f.Size) {
		case Missing:
			c.logger.Debug(ctx, "not found in base", logging.Fields{"path": f.Path})
			result.Missing = append(result.Missing, entry)
		case Different:
			c.logger.Debug(ctx, "found in base, but different", logging.Fields{"path": f.Path, "size": f.Size})
			result.Different = append(result.Different, entry)
		default:
			result.Matched++
		}
		c.progress.Increment()
	}

	return result, nil
}
