package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/sdejongh/wfam/pkg/models"
)

// HumanFormatter prints the lists of missing and different files followed by a summary
type HumanFormatter struct {
	color bool
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter(useColor bool) *HumanFormatter {
	return &HumanFormatter{color: useColor}
}

func (f *HumanFormatter) paint(attr color.Attribute, s string) string {
	if !f.color {
		return s
	}
	c := color.New(attr, color.Bold)
	c.EnableColor()
	return c.Sprint(s)
}

// Complete writes the lists and the summary
func (f *HumanFormatter) Complete(w io.Writer, report *models.Report) error {
	if w == nil {
		w = io.Discard
	}
	result := report.Result
	if result == nil {
		result = &models.Result{}
	}

	if result.AllPresent() {
		fmt.Fprintf(w, "%s\n", f.paint(color.FgGreen,
			fmt.Sprintf("All files from %s are present in %s", report.UnsortedPath, report.BasePattern)))
	}

	if len(result.Missing) > 0 {
		fmt.Fprintf(w, "%s\n", f.paint(color.FgRed,
			fmt.Sprintf("Some files from %s are not present in %s", report.UnsortedPath, report.BasePattern)))
		for _, e := range result.Missing {
			fmt.Fprintf(w, "%s\n", e.Path)
		}
	}

	if len(result.Different) > 0 {
		fmt.Fprintf(w, "%s\n", f.paint(color.FgYellow,
			fmt.Sprintf("Some files differ between %s and %s", report.UnsortedPath, report.BasePattern)))
		for _, e := range result.Different {
			fmt.Fprintf(w, "%s (%s)\n", e.Path, formatBytes(e.Size))
		}
	}

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Check completed in %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Base:\n")
	fmt.Fprintf(w, "    Folders:        %d\n", len(report.BaseDirs))
	fmt.Fprintf(w, "    Files indexed:  %d (%d distinct names)\n", report.IndexedFiles, report.IndexedNames)
	fmt.Fprintf(w, "  Unsorted:\n")
	fmt.Fprintf(w, "    Files checked:  %d\n", result.Scanned())
	fmt.Fprintf(w, "    Files skipped:  %d\n", result.Skipped)
	fmt.Fprintf(w, "    Present:        %d\n", result.Matched)
	fmt.Fprintf(w, "    Missing:        %d\n", len(result.Missing))
	fmt.Fprintf(w, "    Different:      %d\n", len(result.Different))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Status: %s\n", report.Status)

	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
