package utils

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidSizeFormat is returned when a size string is not <number>[unit].
	ErrInvalidSizeFormat = errors.New("invalid size format")
	// ErrUnknownUnit is returned when the unit is not one of B, KB, MB, GB.
	// It wraps ErrInvalidSizeFormat.
	ErrUnknownUnit = fmt.Errorf("%w: unknown unit", ErrInvalidSizeFormat)
)

// Binary size units.
const (
	Byte     int64 = 1
	Kibibyte       = 1024 * Byte
	Mebibyte       = 1024 * Kibibyte
	Gibibyte       = 1024 * Mebibyte
)

var sizeUnits = map[string]int64{
	"B":  Byte,
	"KB": Kibibyte,
	"MB": Mebibyte,
	"GB": Gibibyte,
}

var sizePattern = regexp.MustCompile(`^(\d+)(?:\.(\d+))?\s*([A-Za-z]*)$`)

// ParseSize parses strings like "512", "512B", "1.5KB", "10MB", "1gb" into a
// number of bytes. Fractional results are floored.
func ParseSize(sizeStr string) (int64, error) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(sizeStr))
	if m == nil {
		return 0, fmt.Errorf("%w '%s', use a number with a unit (B, KB, MB, GB)", ErrInvalidSizeFormat, sizeStr)
	}
	unit := strings.ToUpper(m[3])
	if unit == "" {
		unit = "B"
	}
	mult, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("%w '%s' in '%s', use B, KB, MB or GB", ErrUnknownUnit, m[3], sizeStr)
	}

	if m[2] == "" {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || n > math.MaxInt64/mult {
			return 0, fmt.Errorf("%w: '%s' is too large", ErrInvalidSizeFormat, sizeStr)
		}
		return n * mult, nil
	}

	v, err := strconv.ParseFloat(m[1]+"."+m[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w '%s': %v", ErrInvalidSizeFormat, sizeStr, err)
	}
	b := math.Floor(v * float64(mult))
	if b >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: '%s' is too large", ErrInvalidSizeFormat, sizeStr)
	}
	return int64(b), nil
}

// TruncateUTF8 returns the first n bytes of b with any incomplete trailing
// UTF-8 sequence dropped. The result may be shorter than n.
func TruncateUTF8(b []byte, n int) []byte {
	if n <= 0 {
		return b[:0]
	}
	if n < len(b) {
		b = b[:n]
	}
	for len(b) > 0 {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size > 1 {
			break
		}
		b = b[:len(b)-1]
	}
	return b
}

// FormatKiB renders a byte count in kibibytes with two decimals.
func FormatKiB(n int64) string {
	return strconv.FormatFloat(float64(n)/float64(Kibibyte), 'f', 2, 64)
}
