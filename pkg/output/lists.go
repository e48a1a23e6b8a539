package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sdejongh/wfam/pkg/filelock"
	"github.com/sdejongh/wfam/pkg/models"
)

// List formats supported by WriteList
const (
	ListFormatText = "text"
	ListFormatJSON = "json"
)

// ValidListFormat reports whether format is a supported list format
func ValidListFormat(format string) bool {
	return format == ListFormatText || format == ListFormatJSON
}

// EncodeList renders entries in the given list format.
// The text format is one path per line with no header.
func EncodeList(entries []models.FileEntry, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "", ListFormatText:
		for _, e := range entries {
			buf.WriteString(e.Path)
			buf.WriteByte('\n')
		}
	case ListFormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(nonNil(entries)); err != nil {
			return nil, fmt.Errorf("failed to encode list: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported list format: %s (use: text, json)", format)
	}
	return buf.Bytes(), nil
}

// WriteList writes entries to path, replacing any previous content.
// An empty list produces an empty file; callers decide whether to write one.
func WriteList(path string, entries []models.FileEntry, format string) error {
	data, err := EncodeList(entries, format)
	if err != nil {
		return err
	}
	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write list %s: %w", path, err)
	}
	return nil
}
