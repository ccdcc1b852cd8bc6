// Package report renders what a run shows on the console: fill progress, a
// spinner while the file is persisted and the final summary.
package report

import (
	"fmt"
	"io"
	"strings"
)

const barSlots = 10

// ProgressBar draws decile progress on a single, redrawn console line.
type ProgressBar struct {
	w    io.Writer
	open bool
}

// NewProgressBar returns a ProgressBar drawing on w.
func NewProgressBar(w io.Writer) *ProgressBar {
	return &ProgressBar{w: w}
}

// Progress redraws the bar at percent (clamped to 0..100). The line is
// closed once 100 is drawn.
func (b *ProgressBar) Progress(percent int) {
	percent = max(0, min(100, percent))
	filled := percent * barSlots / 100
	fmt.Fprintf(b.w, "\rGenerating: [%s%s] %d%%",
		strings.Repeat("#", filled), strings.Repeat(".", barSlots-filled), percent)
	b.open = true
	if percent == 100 {
		b.Finish()
	}
}

// Finish ends an open bar line. It writes nothing if the bar was never drawn
// or already reached 100.
func (b *ProgressBar) Finish() {
	if b.open {
		fmt.Fprintln(b.w)
		b.open = false
	}
}
