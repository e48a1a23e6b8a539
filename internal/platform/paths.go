package platform

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// IsSeparator reports whether c separates path segments on the current platform.
// Windows accepts both slash forms; elsewhere only '/' does.
func IsSeparator(c byte) bool {
	if c == '/' {
		return true
	}
	return runtime.GOOS == "windows" && c == '\\'
}

// TrimTrailingSeparator removes trailing separators from path, keeping a bare root intact
func TrimTrailingSeparator(path string) string {
	end := len(path)
	for end > 1 && IsSeparator(path[end-1]) {
		// keep "C:\" whole on windows
		if runtime.GOOS == "windows" && end == 3 && path[1] == ':' {
			break
		}
		end--
	}
	return path[:end]
}

// LastSeparator returns the index of the last separator in path before limit, or -1
func LastSeparator(path string, limit int) int {
	for i := limit - 1; i >= 0; i-- {
		if IsSeparator(path[i]) {
			return i
		}
	}
	return -1
}

// CountSeparators counts separators in path
func CountSeparators(path string) int {
	n := 0
	for i := 0; i < len(path); i++ {
		if IsSeparator(path[i]) {
			n++
		}
	}
	return n
}

// SplitSegments splits path on separators. Repeated separators collapse;
// an absolute path keeps a leading empty segment.
func SplitSegments(path string) []string {
	var segs []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && !IsSeparator(path[i]) {
			continue
		}
		if seg := path[start:i]; seg != "" || len(segs) == 0 && i == 0 {
			segs = append(segs, seg)
		}
		start = i + 1
	}
	return segs
}

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	// Convert to platform-specific separators
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

var percentVar = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_()]*)%`)

// ExpandEnv replaces $VAR, ${VAR} and %VAR% references with environment values.
// Unset %VAR% references are left untouched, matching the Windows shell.
func ExpandEnv(s string) string {
	s = percentVar.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := os.LookupEnv(m[1 : len(m)-1]); ok {
			return v
		}
		return m
	})
	return os.ExpandEnv(s)
}

// ValidatePath checks if a path is valid for the current platform
func ValidatePath(path string) error {
	if path == "" {
		return &PathError{Path: path, Message: "path is empty"}
	}
	if strings.ContainsRune(path, 0) {
		return &PathError{Path: path, Message: "path contains a NUL byte"}
	}
	return nil
}

// PathError represents a path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
