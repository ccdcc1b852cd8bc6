package application

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hailam/fillgen/internal/ports"
)

// FileService orchestrates a generation run: it parses the size, selects the
// format, loads seed lines, fills the content and hands it to the sink.
type FileService struct {
	parser ports.SizeParser
	lines  ports.LineSource
	filler ports.ContentFiller
	sink   ports.Sink
	logger *zap.Logger
}

// NewFileService constructs a FileService. A nil logger disables logging.
func NewFileService(parser ports.SizeParser, lines ports.LineSource, filler ports.ContentFiller, sink ports.Sink, logger *zap.Logger) *FileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileService{
		parser: parser,
		lines:  lines,
		filler: filler,
		sink:   sink,
		logger: logger,
	}
}

// CreateFile generates a file of size sizeSpec (e.g. "10MB") in the format
// named by formatToken ("txt" or "csv"). Input errors are returned before
// anything is written.
func (s *FileService) CreateFile(sizeSpec, formatToken string) (*ports.GeneratedFile, error) {
	log := s.logger.With(zap.String("run_id", uuid.NewString()))

	// 1. Parse human-readable size into bytes
	target, err := s.parser.Parse(sizeSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid size '%s': %w", sizeSpec, err)
	}

	// 2. Resolve the format
	format, err := ports.ParseFormat(formatToken)
	if err != nil {
		return nil, err
	}
	log.Debug("Generation requested",
		zap.Int64("target_bytes", target),
		zap.Stringer("format", format))

	// 3. Text filling draws from the seed lines
	var lines []string
	if format == ports.FormatText {
		lines, err = s.lines.Lines()
		if err != nil {
			return nil, fmt.Errorf("failed to load source lines: %w", err)
		}
		if len(lines) == 0 {
			log.Warn("Seed text has no lines, the generated file will be empty")
		}
	}

	// 4. Fill, then persist in one write
	content := s.filler.Fill(target, format, lines)
	path, size, err := s.sink.Save(format, content)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s file: %w", format.Extension(), err)
	}

	log.Info("File generated",
		zap.String("path", path),
		zap.Int64("target_bytes", target),
		zap.Int64("actual_bytes", size))
	return &ports.GeneratedFile{
		Path:    path,
		Format:  format,
		Target:  target,
		Size:    size,
		Content: content,
	}, nil
}
