package utils

import (
	"errors"
	"fmt"
	"testing"
	"unicode/utf8"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  error
	}{
		// Valid cases
		{"10", 10, nil},
		{"0", 0, nil},
		{"512B", 512, nil},
		{"512b", 512, nil},
		{"1KB", 1024, nil},
		{"10kb", 10 * 1024, nil},
		{"1.5KB", 1536, nil},
		{"1MB", 1048576, nil},
		{"1024KB", 1048576, nil},
		{"0.5mb", 512 * 1024, nil},
		{"100GB", 107374182400, nil},
		{"1gb", 1 << 30, nil},
		{"1.0001KB", 1024, nil}, // floored, not rounded
		{"  2 MB  ", 2 * 1024 * 1024, nil},
		{"0KB", 0, nil},

		// Invalid cases
		{"", 0, ErrInvalidSizeFormat},
		{"abc", 0, ErrInvalidSizeFormat},
		{"KB", 0, ErrInvalidSizeFormat},
		{"-100", 0, ErrInvalidSizeFormat},
		{"1.", 0, ErrInvalidSizeFormat},
		{".5KB", 0, ErrInvalidSizeFormat},
		{"10 M B", 0, ErrInvalidSizeFormat},
		{"1 0 KB", 0, ErrInvalidSizeFormat},
		{"99999999999999999999", 0, ErrInvalidSizeFormat},
		{"9999999999GB", 0, ErrInvalidSizeFormat},
		{"10XY", 0, ErrUnknownUnit},
		{"10K", 0, ErrUnknownUnit},
		{"5TB", 0, ErrUnknownUnit},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Input_%s", tc.input), func(t *testing.T) {
			got, err := ParseSize(tc.input)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseSize(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseSize_UnknownUnitIsInvalidFormat(t *testing.T) {
	_, err := ParseSize("10XY")
	if !errors.Is(err, ErrInvalidSizeFormat) {
		t.Errorf("ParseSize(\"10XY\") error = %v, want it to wrap ErrInvalidSizeFormat", err)
	}
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"ASCII", "hello\n", 3, "hel"},
		{"Whole", "hello", 5, "hello"},
		{"Longer than input", "hi", 10, "hi"},
		{"Zero", "hello", 0, ""},
		{"Negative", "hello", -1, ""},
		{"Cyrillic boundary", "Привет", 4, "Пр"},
		{"Cyrillic split", "Привет", 5, "Пр"},
		{"Three byte split", "a€b", 3, "a"},
		{"Three byte split two", "a€b", 2, "a"},
		{"Three byte whole", "a€b", 4, "a€"},
		{"Four byte split", "😀x", 3, ""},
		{"Replacement char kept", "a�", 4, "a�"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateUTF8([]byte(tc.input), tc.n)
			if string(got) != tc.want {
				t.Errorf("TruncateUTF8(%q, %d) = %q, want %q", tc.input, tc.n, got, tc.want)
			}
			if !utf8.Valid(got) {
				t.Errorf("TruncateUTF8(%q, %d) = %q is not valid UTF-8", tc.input, tc.n, got)
			}
		})
	}
}

func TestFormatKiB(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0.00"},
		{512, "0.50"},
		{1024, "1.00"},
		{1536, "1.50"},
		{1048576, "1024.00"},
		{1000, "0.98"},
	}
	for _, tc := range tests {
		if got := FormatKiB(tc.n); got != tc.want {
			t.Errorf("FormatKiB(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
