package ports

// SizeParser turns a size spec such as "10MB" or "1.5KB" into a byte count.
// Units are powers of 1024; a bare number is a byte count.
type SizeParser interface {
	Parse(spec string) (int64, error)
}
