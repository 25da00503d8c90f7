package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.lst")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("/a/foo.ts\r\n10,5: x [error_A]\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !f.Flags.Has(FileHadBOM | FileNormalizedCRLF) {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if f.Flags.Has(FileDecodedUTF16) {
		t.Fatalf("UTF-8 input must not be flagged as UTF-16")
	}
	want := []string{"/a/foo.ts", "10,5: x [error_A]"}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBytesDecodesUTF16(t *testing.T) {
	text := "/a/foo.ts\n10,5: x [error_A]\n"
	raw := []byte{0xFF, 0xFE}
	for _, r := range text {
		raw = append(raw, byte(r), 0)
	}

	f, err := FromBytes("utf16.lst", raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !f.Flags.Has(FileDecodedUTF16 | FileVirtual) {
		t.Fatalf("expected UTF-16 and virtual flags, got %b", f.Flags)
	}
	if got := string(f.Content); got != text {
		t.Fatalf("decoded content = %q, want %q", got, text)
	}
}

func TestFromBytesRejectsInvalidUTF8(t *testing.T) {
	_, err := FromBytes("bad.lst", []byte("/a/foo.ts\n\xc3\x28 oops\n"))
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.lst"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLinesWithoutTrailingNewline(t *testing.T) {
	f, err := FromBytes("x", []byte("a\nb"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, f.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	empty, err := FromBytes("empty", nil)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if lines := empty.Lines(); len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
}

func TestFromBytesSplitsEveryNewlineForm(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  []string
		flags FileFlags
	}{
		{"lone cr", "/a/foo.ts\r10,5: m [error_A]\r", []string{"/a/foo.ts", "10,5: m [error_A]"}, FileNormalizedCR},
		{"crlf", "/a/foo.ts\r\n10,5: m [error_A]\r\n", []string{"/a/foo.ts", "10,5: m [error_A]"}, FileNormalizedCRLF},
		{"mixed", "a\rb\r\nc\nd", []string{"a", "b", "c", "d"}, FileNormalizedCR | FileNormalizedCRLF},
		{"cr before crlf", "a\r\r\nb", []string{"a", "", "b"}, FileNormalizedCR | FileNormalizedCRLF},
		{"lf only", "a\nb\n", []string{"a", "b"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FromBytes("x", []byte(tt.raw))
			if err != nil {
				t.Fatalf("FromBytes: %v", err)
			}
			if diff := cmp.Diff(tt.want, f.Lines()); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
			if got := f.Flags &^ FileVirtual; got != tt.flags {
				t.Fatalf("flags = %b, want %b", got, tt.flags)
			}
		})
	}
}
