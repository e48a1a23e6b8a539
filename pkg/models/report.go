package models

import (
	"time"
)

// Result holds the classification of the files of an unsorted tree
type Result struct {
	// Missing files have no name match in the base index
	Missing []FileEntry

	// Different files have a name match but no occurrence of the same size
	Different []FileEntry

	// Matched counts files found in the base with an equal size
	Matched int

	// Skipped counts files excluded by the extension filter
	Skipped int
}

// Scanned returns the number of files that were classified
func (r *Result) Scanned() int {
	return len(r.Missing) + len(r.Different) + r.Matched
}

// AllPresent reports whether every scanned file was found in the base
func (r *Result) AllPresent() bool {
	return len(r.Missing) == 0 && len(r.Different) == 0
}

// Report represents the results of a check run
type Report struct {
	// Run details
	RunID        string
	BasePattern  string
	BaseDirs     []string
	UnsortedPath string
	Extensions   ExtensionFilter
	NameCase     NameCase

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// IndexedNames is the number of distinct names in the base index
	IndexedNames int
	// IndexedFiles is the number of files in the base index
	IndexedFiles int

	Result *Result

	// Overall status
	Status RunStatus
}

// RunStatus represents the overall result
type RunStatus string

const (
	// StatusAllPresent indicates every unsorted file exists in the base
	StatusAllPresent RunStatus = "all_present"
	// StatusIncomplete indicates missing or different files were found
	StatusIncomplete RunStatus = "incomplete"
	// StatusFailed indicates the run aborted
	StatusFailed RunStatus = "failed"
	// StatusCancelled indicates the run was interrupted
	StatusCancelled RunStatus = "cancelled"
)

// StatusFor derives the run status from a classification result
func StatusFor(r *Result) RunStatus {
	if r == nil {
		return StatusFailed
	}
	if r.AllPresent() {
		return StatusAllPresent
	}
	return StatusIncomplete
}

// ExitCode returns the appropriate exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusAllPresent:
		return 0
	case StatusIncomplete:
		return 1
	case StatusFailed:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}
