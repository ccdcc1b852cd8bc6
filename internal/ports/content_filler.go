package ports

// ContentFiller is the port for the size-targeting content generator.
type ContentFiller interface {
	// Fill returns content of exactly target bytes built from lines (Text) or
	// synthesized records (Tabular). It never fails.
	Fill(target int64, format FormatKind, lines []string) []byte
}

// LineSource supplies candidate lines for text filling.
type LineSource interface {
	Lines() ([]string, error)
}

// RecordSynthesizer produces one tabular record per call, terminated by a newline.
type RecordSynthesizer interface {
	NextRecord(id int64) string
}

// ProgressSink observes fill progress in whole deciles (10, 20, ..., 100).
type ProgressSink interface {
	Progress(percent int)
}

// ProgressFunc adapts a plain function to ProgressSink.
type ProgressFunc func(percent int)

// Progress calls f. A nil ProgressFunc ignores updates.
func (f ProgressFunc) Progress(percent int) {
	if f != nil {
		f(percent)
	}
}
