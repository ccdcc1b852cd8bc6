package ports

// Sink is the port for persisting generated content under a generated name.
type Sink interface {
	// Save writes content in one piece and returns the path and the size on disk.
	Save(format FormatKind, content []byte) (path string, size int64, err error)
}

// GeneratedFile is the result of one generation run.
type GeneratedFile struct {
	Path    string
	Format  FormatKind
	Target  int64
	Size    int64
	Content []byte
}

// KiB returns the size on disk in kibibytes.
func (g *GeneratedFile) KiB() float64 {
	return float64(g.Size) / 1024
}
