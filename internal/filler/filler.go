// Package filler builds byte-exact synthetic content for a target size.
//
// A Filler appends whole content units (a random seed line for text, a
// synthesized record for tabular output) while they fit, then cuts the first
// unit that would overshoot so the result lands on the target. Cuts never
// leave half of a multi-byte character behind.
package filler

import (
	"bytes"
	"math"
	"math/rand/v2"

	"github.com/hailam/fillgen/internal/ports"
	"github.com/hailam/fillgen/internal/utils"
)

// Header is the first unit of tabular content. It does not consume a record id.
const Header = "ItemID;Description;Status\n"

// maxPrealloc caps the up-front buffer growth for large targets.
const maxPrealloc = 64 << 20

// Filler implements ports.ContentFiller.
type Filler struct {
	rng      *rand.Rand
	records  ports.RecordSynthesizer
	progress ports.ProgressSink
}

// New returns a Filler drawing text lines from rng and tabular records from
// records. progress may be nil.
func New(rng *rand.Rand, records ports.RecordSynthesizer, progress ports.ProgressSink) *Filler {
	if progress == nil {
		progress = ports.ProgressFunc(nil)
	}
	return &Filler{rng: rng, records: records, progress: progress}
}

// Fill returns content whose length is target bytes. Text output is empty
// when lines is empty; tabular output is the truncated header when the header
// alone exceeds target.
func (f *Filler) Fill(target int64, format ports.FormatKind, lines []string) []byte {
	if target < 0 {
		target = 0
	}
	st := newFillState(target, f.progress)

	switch format {
	case ports.FormatText:
		if len(lines) == 0 {
			return st.buf.Bytes()
		}
	case ports.FormatTabular:
		if !st.offer(Header) {
			return st.finish()
		}
	default:
		return st.buf.Bytes()
	}

	var id int64
	for st.produced < st.target {
		var unit string
		switch format {
		case ports.FormatText:
			unit = lines[f.rng.IntN(len(lines))] + "\n"
		case ports.FormatTabular:
			id++
			unit = f.records.NextRecord(id)
		}
		if unit == "" || !st.offer(unit) {
			break
		}
	}
	return st.finish()
}

// fillState is the mutable state of a single Fill call.
type fillState struct {
	target   int64
	produced int64
	decile   int
	buf      bytes.Buffer
	progress ports.ProgressSink
}

func newFillState(target int64, progress ports.ProgressSink) *fillState {
	st := &fillState{target: target, progress: progress}
	st.buf.Grow(int(min(target, maxPrealloc)))
	return st
}

// offer appends unit when it fits and reports progress. Otherwise it appends
// the part of unit that fits and returns false.
func (s *fillState) offer(unit string) bool {
	n := int64(len(unit))
	if s.produced+n <= s.target {
		s.buf.WriteString(unit)
		s.produced += n
		s.report()
		return true
	}
	s.truncate(unit)
	return false
}

func (s *fillState) truncate(unit string) {
	remaining := s.target - s.produced
	if remaining <= 0 {
		return
	}
	part := utils.TruncateUTF8([]byte(unit), int(remaining))
	s.buf.Write(part)
	s.produced += int64(len(part))
}

// report emits the highest decile reached if it is new.
func (s *fillState) report() {
	if s.target == 0 {
		return
	}
	d := int(percent(s.produced, s.target) / 10 * 10)
	if d > s.decile {
		s.decile = d
		s.progress.Progress(d)
	}
}

// percent returns min(100, 100*produced/target) floored, without overflowing
// for targets near math.MaxInt64.
func percent(produced, target int64) int64 {
	if target <= 0 {
		return 100
	}
	var pct int64
	if target > math.MaxInt64/100 {
		pct = produced / (target / 100)
	} else {
		pct = 100 * produced / target
	}
	return min(100, pct)
}

func (s *fillState) finish() []byte {
	if s.buf.Len() > 0 && s.decile < 100 {
		s.decile = 100
		s.progress.Progress(100)
	}
	return s.buf.Bytes()
}
