// Package index builds the name index of the base trees.
package index

import (
	"github.com/sdejongh/wfam/pkg/models"
)

// NameIndex maps a file base name to every occurrence found in the base trees.
// Occurrences under one key keep scan order.
type NameIndex struct {
	entries map[string][]models.FileEntry
	key     func(string) string
	files   int
}

// NewNameIndex creates an empty index whose keys follow the given case policy
func NewNameIndex(policy models.NameCase) *NameIndex {
	return &NameIndex{
		entries: make(map[string][]models.FileEntry),
		key:     policy.KeyFunc(),
	}
}

// Add records an occurrence of name
func (idx *NameIndex) Add(name string, entry models.FileEntry) {
	k := idx.key(name)
	idx.entries[k] = append(idx.entries[k], entry)
	idx.files++
}

// Merge appends every occurrence of other after the existing ones
func (idx *NameIndex) Merge(other *NameIndex) {
	for k, occurrences := range other.entries {
		idx.entries[k] = append(idx.entries[k], occurrences...)
		idx.files += len(occurrences)
	}
}

// Lookup returns the occurrences of name and whether the name is known
func (idx *NameIndex) Lookup(name string) ([]models.FileEntry, bool) {
	occurrences, ok := idx.entries[idx.key(name)]
	return occurrences, ok
}

// HasSize reports whether some occurrence of name has exactly size bytes.
// known is false when the name is absent altogether.
func (idx *NameIndex) HasSize(name string, size int64) (found, known bool) {
	occurrences, known := idx.Lookup(name)
	for _, occ := range occurrences {
		if occ.Size == size {
			return true, true
		}
	}
	return false, known
}

// Len returns the number of distinct names
func (idx *NameIndex) Len() int {
	return len(idx.entries)
}

// Files returns the total number of occurrences
func (idx *NameIndex) Files() int {
	return idx.files
}
