package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/wfam/pkg/models"
)

// Formatter renders the final report of a check run
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Complete writes the report to w
	Complete(w io.Writer, report *models.Report) error

	// Name returns the formatter name
	Name() string
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, color bool) (Formatter, error) {
	switch name {
	case "", "human":
		return NewHumanFormatter(color), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use: human, json)", name)
	}
}
