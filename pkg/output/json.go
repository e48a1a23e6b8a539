package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/wfam/pkg/models"
)

// JSONFormatter formats the report as JSON for automation and scripting
type JSONFormatter struct{}

// JSONReportData represents the final report
type JSONReportData struct {
	RunID        string             `json:"run_id"`
	Status       string             `json:"status"`
	BasePattern  string             `json:"base_pattern"`
	BaseDirs     []string           `json:"base_dirs"`
	UnsortedPath string             `json:"unsorted_path"`
	Extensions   []string           `json:"extensions,omitempty"`
	NameCase     string             `json:"name_case"`
	Duration     string             `json:"duration"`
	DurationMs   int64              `json:"duration_ms"`
	Stats        JSONStatsData      `json:"stats"`
	Missing      []models.FileEntry `json:"missing"`
	Different    []models.FileEntry `json:"different"`
}

// JSONStatsData represents run statistics
type JSONStatsData struct {
	IndexedFiles int `json:"indexed_files"`
	IndexedNames int `json:"indexed_names"`
	Checked      int `json:"checked"`
	Skipped      int `json:"skipped"`
	Present      int `json:"present"`
	Missing      int `json:"missing"`
	Different    int `json:"different"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Complete writes the report as one indented JSON document
func (f *JSONFormatter) Complete(w io.Writer, report *models.Report) error {
	if w == nil {
		w = io.Discard
	}
	result := report.Result
	if result == nil {
		result = &models.Result{}
	}

	data := JSONReportData{
		RunID:        report.RunID,
		Status:       string(report.Status),
		BasePattern:  report.BasePattern,
		BaseDirs:     report.BaseDirs,
		UnsortedPath: report.UnsortedPath,
		Extensions:   report.Extensions.Extensions(),
		NameCase:     string(report.NameCase),
		Duration:     report.Duration.Round(time.Millisecond).String(),
		DurationMs:   report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			IndexedFiles: report.IndexedFiles,
			IndexedNames: report.IndexedNames,
			Checked:      result.Scanned(),
			Skipped:      result.Skipped,
			Present:      result.Matched,
			Missing:      len(result.Missing),
			Different:    len(result.Different),
		},
		Missing:   nonNil(result.Missing),
		Different: nonNil(result.Different),
	}
	if len(data.BaseDirs) == 0 {
		data.BaseDirs = []string{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func nonNil(entries []models.FileEntry) []models.FileEntry {
	if entries == nil {
		return []models.FileEntry{}
	}
	return entries
}
