package compare

import (
	"github.com/sdejongh/wfam/pkg/index"
)

// Class is the outcome of checking one unsorted file against the base index
type Class string

const (
	// Found indicates a base file with the same name and size exists
	Found Class = "found"
	// Missing indicates no base file has the same name
	Missing Class = "missing"
	// Different indicates base files share the name but none has the same size
	Different Class = "different"
)

// Reason returns a short human explanation of the class
func (c Class) Reason() string {
	switch c {
	case Found:
		return "name and size match"
	case Missing:
		return "name not found in base"
	case Different:
		return "name found in base with a different size"
	default:
		return string(c)
	}
}

// Classify checks a file name and size against idx.
// A single occurrence of equal size is enough for Found.
func Classify(idx *index.NameIndex, name string, size int64) Class {
	found, known := idx.HasSize(name, size)
	switch {
	case found:
		return Found
	case known:
		return Different
	default:
		return Missing
	}
}

// Progress observes the classification loop
type Progress interface {
	// Start is called once with the number of files to classify
	Start(total int)
	// Increment is called after each classified file
	Increment()
	// Finish is called when the loop ends, also on error
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(int)  {}
func (nopProgress) Increment() {}
func (nopProgress) Finish()    {}
