package ports

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormatSelector is returned when a format token is not one of the
// recognized tokens.
var ErrInvalidFormatSelector = errors.New("format must be 'txt' or 'csv'")

// FormatKind is the identifier for each output format.
type FormatKind string

const (
	FormatText    FormatKind = "txt"
	FormatTabular FormatKind = "csv"
)

// Extension returns the file extension used for the format, without the dot.
func (k FormatKind) Extension() string {
	return string(k)
}

func (k FormatKind) String() string {
	switch k {
	case FormatText:
		return "text"
	case FormatTabular:
		return "tabular"
	default:
		return "unknown"
	}
}

// ParseFormat maps a user-typed token to a FormatKind.
func ParseFormat(token string) (FormatKind, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "txt":
		return FormatText, nil
	case "csv":
		return FormatTabular, nil
	default:
		return "", fmt.Errorf("%w, got '%s'", ErrInvalidFormatSelector, token)
	}
}
