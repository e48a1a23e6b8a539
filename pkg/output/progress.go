package output

import (
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
)

const (
	progressTemplate = `{{ string . "prefix" }}{{ counters . }} {{ bar . "[" "=" ">" " " "]" }} {{ percent . }} {{ etime . }}`
	refreshRate      = 200 * time.Millisecond
)

// BarProgress renders comparison progress as a terminal progress bar
type BarProgress struct {
	writer io.Writer
	prefix string
	bar    *pb.ProgressBar
	done   bool
}

// NewBarProgress creates a progress bar writing to w
func NewBarProgress(w io.Writer, prefix string) *BarProgress {
	if w == nil {
		w = os.Stderr
	}
	return &BarProgress{writer: w, prefix: prefix}
}

// Start begins a new bar for total files
func (p *BarProgress) Start(total int) {
	p.Finish()
	bar := pb.New(total)
	bar.SetTemplateString(progressTemplate)
	bar.SetWriter(p.writer)
	bar.SetRefreshRate(refreshRate)
	if p.prefix != "" {
		bar.Set("prefix", p.prefix+" ")
	}
	p.bar = bar.Start()
	p.done = false
}

// Increment advances the bar by one file
func (p *BarProgress) Increment() {
	if p.bar != nil && !p.done {
		p.bar.Increment()
	}
}

// Finish stops the bar and leaves its final state on screen
func (p *BarProgress) Finish() {
	if p.bar != nil && !p.done {
		p.bar.Finish()
		p.done = true
	}
}

// Current returns the number of files counted so far
func (p *BarProgress) Current() int64 {
	if p.bar == nil {
		return 0
	}
	return p.bar.Current()
}

// ShouldShowProgress reports whether a progress bar makes sense on w
func ShouldShowProgress(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
