package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/hailam/fillgen/internal/ports"
)

const spinnerDelay = 100 * time.Millisecond

// SpinnerSink shows a spinner on w while the wrapped sink persists content.
// The spinner stays silent when the process is not attached to a terminal.
type SpinnerSink struct {
	next ports.Sink
	w    io.Writer
}

// NewSpinnerSink decorates next.
func NewSpinnerSink(next ports.Sink, w io.Writer) *SpinnerSink {
	return &SpinnerSink{next: next, w: w}
}

// Save delegates to the wrapped sink.
func (s *SpinnerSink) Save(format ports.FormatKind, content []byte) (string, int64, error) {
	writer := spinner.WithWriter(s.w)
	if f, ok := s.w.(*os.File); ok {
		writer = spinner.WithWriterFile(f)
	}
	sp := spinner.New(spinner.CharSets[14], spinnerDelay,
		writer,
		spinner.WithHiddenCursor(true),
		spinner.WithSuffix(fmt.Sprintf(" Writing %s file (%d bytes)", format.Extension(), len(content))),
	)
	sp.Start()
	defer sp.Stop()

	return s.next.Save(format, content)
}
