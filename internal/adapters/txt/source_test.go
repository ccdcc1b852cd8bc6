package txt

import (
	"reflect"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestFileLineSource_Lines(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    []string
	}{
		{"SingleLine", "hello", []string{"hello"}},
		{"TrailingNewline", "hello\nworld\n", []string{"hello", "world"}},
		{"CRLF", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"CR", "one\rtwo", []string{"one", "two"}},
		{"BlankLinesKept", "a\n\nb", []string{"a", "", "b"}},
		{"OnlyNewline", "\n", []string{""}},
		{"ByteOrderMark", "\ufeffПервая строка\nВторая", []string{"Первая строка", "Вторая"}},
		{"Empty", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "seed.txt", []byte(tc.content), 0o644); err != nil {
				t.Fatalf("failed to write seed file: %v", err)
			}

			got, err := New(fs, "seed.txt", nil).Lines()
			if err != nil {
				t.Fatalf("Lines() returned unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Lines() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFileLineSource_MissingFileFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := New(afero.NewMemMapFs(), "", zap.New(core))

	got, err := src.Lines()
	if err != nil {
		t.Fatalf("Lines() returned unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != DefaultLine {
		t.Errorf("Lines() = %q, want [%q]", got, DefaultLine)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 warning, got %d", logs.Len())
	}
	if path := logs.All()[0].ContextMap()["path"]; path != DefaultSourceFile {
		t.Errorf("warning path = %v, want %q", path, DefaultSourceFile)
	}
}

func TestFileLineSource_ReadError(t *testing.T) {
	// Reading a directory fails with something other than "not exist".
	tempDir := t.TempDir()
	_, err := New(afero.NewOsFs(), tempDir, nil).Lines()
	if err == nil {
		t.Errorf("Lines() on directory %q expected an error, but got nil", tempDir)
	}
}

func TestFileLineSource_RootedFs(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := base.MkdirAll("/project", 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := afero.WriteFile(base, "/project/"+DefaultSourceFile, []byte("rooted"), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	got, err := New(afero.NewBasePathFs(base, "/project"), "", nil).Lines()
	if err != nil {
		t.Fatalf("Lines() returned unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "rooted" {
		t.Errorf("Lines() = %q, want [\"rooted\"]", got)
	}
}
