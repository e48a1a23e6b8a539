package models

import (
	"runtime"
	"strings"
)

// FileEntry is a file found during a scan
type FileEntry struct {
	// Path is the absolute path on the filesystem
	Path string `json:"path"`

	// Size in bytes
	Size int64 `json:"size"`
}

// NameCase controls how file names are compared when building and querying an index
type NameCase string

const (
	// NameCaseAuto follows the convention of the host filesystem
	NameCaseAuto NameCase = "auto"
	// NameCaseSensitive compares names byte for byte
	NameCaseSensitive NameCase = "sensitive"
	// NameCaseInsensitive folds names to lower case before comparing
	NameCaseInsensitive NameCase = "insensitive"
)

// Valid reports whether c is a known policy
func (c NameCase) Valid() bool {
	switch c {
	case NameCaseAuto, NameCaseSensitive, NameCaseInsensitive:
		return true
	}
	return false
}

// Resolve turns NameCaseAuto into the concrete policy for goos.
// Windows and macOS filesystems are case-insensitive by default.
func (c NameCase) Resolve(goos string) NameCase {
	if c != NameCaseAuto && c != "" {
		return c
	}
	switch goos {
	case "windows", "darwin", "ios":
		return NameCaseInsensitive
	default:
		return NameCaseSensitive
	}
}

// KeyFunc returns the function that maps a base name to its index key
func (c NameCase) KeyFunc() func(string) string {
	if c.Resolve(runtime.GOOS) == NameCaseInsensitive {
		return strings.ToLower
	}
	return func(name string) string { return name }
}
