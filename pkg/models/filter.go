package models

import (
	"path/filepath"
	"sort"
	"strings"
)

// ExtensionFilter is an optional set of file extensions to process.
// A nil or empty filter lets every file through.
type ExtensionFilter map[string]struct{}

// ParseExtensionFilter builds a filter from a comma-separated list such as ".jpg,.JPEG".
// Tokens that do not start with a dot are dropped. When nothing valid remains the
// returned filter is nil, meaning no filtering.
func ParseExtensionFilter(list string) ExtensionFilter {
	return NewExtensionFilter(strings.Split(list, ","))
}

// NewExtensionFilter builds a filter from individual extensions
func NewExtensionFilter(exts []string) ExtensionFilter {
	filter := make(ExtensionFilter)
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if !strings.HasPrefix(ext, ".") {
			continue
		}
		filter[strings.ToLower(ext)] = struct{}{}
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}

// Active reports whether the filter restricts anything
func (f ExtensionFilter) Active() bool {
	return len(f) > 0
}

// Allows reports whether the file at path passes the filter
func (f ExtensionFilter) Allows(path string) bool {
	if !f.Active() {
		return true
	}
	_, ok := f[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions returns the filtered extensions in sorted order
func (f ExtensionFilter) Extensions() []string {
	exts := make([]string, 0, len(f))
	for ext := range f {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// String returns the filter as a comma-separated list, or "*" when inactive
func (f ExtensionFilter) String() string {
	if !f.Active() {
		return "*"
	}
	return strings.Join(f.Extensions(), ",")
}
