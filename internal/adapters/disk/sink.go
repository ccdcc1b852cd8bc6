package disk

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/hailam/fillgen/internal/ports"
)

const (
	filePrefix = "generated_data_"
	timeLayout = "2006-01-02_1504"
	dirPerm    = 0o755
	filePerm   = 0o644
)

// FileSink persists generated content on an afero file system.
type FileSink struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// Option configures a FileSink.
type Option func(*FileSink)

// WithClock overrides the clock used to name files.
func WithClock(now func() time.Time) Option {
	return func(s *FileSink) {
		s.now = now
	}
}

// New returns a Sink writing into dir on fs. An empty dir means the fs root
// or working directory.
func New(fs afero.Fs, dir string, opts ...Option) *FileSink {
	if dir == "" {
		dir = "."
	}
	s := &FileSink{fs: fs, dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FileName returns the name for content of the given format generated at t.
func FileName(format ports.FormatKind, t time.Time) string {
	return fmt.Sprintf("%s%s.%s", filePrefix, t.Format(timeLayout), format.Extension())
}

// Save writes content to a temporary file and renames it over the final name,
// replacing any file generated earlier in the same minute.
func (s *FileSink) Save(format ports.FormatKind, content []byte) (string, int64, error) {
	if err := s.fs.MkdirAll(s.dir, dirPerm); err != nil {
		return "", 0, fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, FileName(format, s.now()))

	tmp, err := afero.TempFile(s.fs, s.dir, "."+filePrefix+"*.tmp")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file in %s: %w", s.dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return "", 0, fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return "", 0, fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	// Temp files are created 0600.
	if err := s.fs.Chmod(tmpName, filePerm); err != nil {
		s.fs.Remove(tmpName)
		return "", 0, fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return "", 0, fmt.Errorf("failed to move %s to %s: %w", tmpName, path, err)
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return path, 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return path, info.Size(), nil
}
