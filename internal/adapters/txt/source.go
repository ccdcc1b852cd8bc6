package txt

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hailam/fillgen/internal/ports"
)

// DefaultSourceFile is the seed text file looked up when none is configured.
const DefaultSourceFile = "source_text.txt"

// DefaultLine is the only candidate line when the seed file does not exist.
const DefaultLine = "Образец текста недоступен. Используйте стандартный текст."

// FileLineSource reads candidate lines for text filling from a seed file.
type FileLineSource struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

// New returns a LineSource reading path from fs. An empty path means
// DefaultSourceFile.
func New(fs afero.Fs, path string, logger *zap.Logger) ports.LineSource {
	if path == "" {
		path = DefaultSourceFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileLineSource{fs: fs, path: path, logger: logger}
}

// Lines returns one entry per physical line of the seed file. A missing file
// yields DefaultLine; an empty file yields no lines.
func (s *FileLineSource) Lines() ([]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Seed text file not found, using the default line",
				zap.String("path", s.path))
			return []string{DefaultLine}, nil
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", s.path, err)
	}

	lines := splitLines(strings.TrimPrefix(string(data), "\ufeff"))
	s.logger.Debug("Loaded seed lines",
		zap.String("path", s.path),
		zap.Int("lines", len(lines)))
	return lines, nil
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// produce an empty last line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
