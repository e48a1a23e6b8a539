// Package expand resolves base path patterns such as "/photos/20??/*" into the
// existing directories they denote.
//
// Only directories at the exact depth of the pattern are considered. The
// expander first enumerates that depth below the last wildcard-free prefix,
// one level at a time, and then keeps the candidates whose full path matches
// the pattern (see Match).
package expand

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sdejongh/wfam/internal/platform"
	"github.com/sdejongh/wfam/pkg/logging"
	"github.com/sdejongh/wfam/pkg/storage"
)

// Expander turns wildcarded base paths into concrete directory lists
type Expander struct {
	backend storage.Backend
	logger  logging.Logger
}

// NewExpander creates an expander. A nil logger discards diagnostics.
func NewExpander(backend storage.Backend, logger logging.Logger) *Expander {
	return &Expander{backend: backend, logger: logging.OrNull(logger)}
}

// Plan describes how a pattern is resolved
type Plan struct {
	// Pattern is the input with trailing separators removed
	Pattern string
	// Root is the wildcard-free prefix that enumeration starts from
	Root string
	// Levels is the number of directory levels enumerated below Root
	Levels int
}

// NewPlan computes the enumeration plan for pattern. The returned plan has
// zero Levels when the pattern contains no wildcard.
func NewPlan(pattern string) Plan {
	pattern = platform.TrimTrailingSeparator(pattern)
	w := strings.IndexAny(pattern, "*?")
	if w < 0 {
		return Plan{Pattern: pattern}
	}

	var root string
	switch sep := platform.LastSeparator(pattern, w); {
	case sep < 0:
		root = ""
	case sep == 0:
		root = pattern[:1]
	default:
		root = pattern[:sep]
		// "C:" alone means the current directory of drive C
		if filepath.VolumeName(root) == root && root != "" {
			root += pattern[sep : sep+1]
		}
	}

	// The wildcard segment itself is one level; each separator after it adds one more
	return Plan{
		Pattern: pattern,
		Root:    root,
		Levels:  platform.CountSeparators(pattern[w:]) + 1,
	}
}

// Expand resolves pattern into existing directories.
// A pattern without wildcards is returned as is without checking that it exists.
// A root that does not exist or is not a directory yields an empty list.
// Each level only descends into directories whose name matches the pattern
// segment at that depth.
func (e *Expander) Expand(ctx context.Context, pattern string) ([]string, error) {
	plan := NewPlan(pattern)
	if plan.Levels == 0 {
		return []string{plan.Pattern}, nil
	}

	fields := logging.Fields{"pattern": plan.Pattern, "root": plan.Root, "levels": plan.Levels}
	e.logger.Debug(ctx, "expanding masked path", fields)

	ok, err := e.rootIsDir(ctx, plan.Root)
	if err != nil {
		return nil, err
	}
	if !ok {
		e.logger.Warn(ctx, "base root is not an existing directory", fields)
		return nil, nil
	}

	segments := plan.segments()
	candidates := []string{plan.Root}
	for level := 0; level < plan.Levels && len(candidates) > 0; level++ {
		var next []string
		for _, dir := range candidates {
			if level > 0 && segments != nil && !MatchSegment(segments[level-1], lastSegment(dir)) {
				continue
			}
			subdirs, err := e.backend.Subdirs(ctx, dir)
			if err != nil {
				if level == 0 && errors.Is(err, fs.ErrNotExist) {
					e.logger.Warn(ctx, "base root does not exist", fields)
					return nil, nil
				}
				return nil, fmt.Errorf("failed to enumerate %s: %w", displayDir(dir), err)
			}
			next = append(next, subdirs...)
		}
		candidates = next
	}

	var result []string
	for _, candidate := range candidates {
		if Match(plan.Pattern, candidate) {
			result = append(result, candidate)
		}
	}

	e.logger.Debug(ctx, "masked path expanded", logging.Fields{
		"pattern":    plan.Pattern,
		"candidates": len(candidates),
		"matched":    len(result),
	})

	return result, nil
}

// rootIsDir reports whether root exists and is a directory. Only unexpected
// failures are returned as errors.
func (e *Expander) rootIsDir(ctx context.Context, root string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := e.backend.Stat(ctx, root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, fmt.Errorf("failed to enumerate %s: %w", displayDir(root), err)
	}
	return info.IsDir, nil
}

// segments returns the pattern segments below Root, one per level, or nil
// when they cannot be aligned with the levels
func (p Plan) segments() []string {
	tail := p.Pattern[len(p.Root):]
	for len(tail) > 0 && platform.IsSeparator(tail[0]) {
		tail = tail[1:]
	}
	segs := platform.SplitSegments(tail)
	if len(segs) != p.Levels {
		return nil
	}
	return segs
}

func lastSegment(path string) string {
	segs := platform.SplitSegments(path)
	if len(segs) == 0 {
		return path
	}
	return segs[len(segs)-1]
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
