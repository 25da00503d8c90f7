package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"
)

// Load reads a log from disk, inflates gzip/zstd archives, decodes it and
// normalizes CRLF.
// Errors from the filesystem are returned unwrapped so callers can test them
// with errors.Is(err, fs.ErrNotExist).
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newFile(path, raw, 0)
}

// FromBytes builds a virtual file from in-memory content.
func FromBytes(name string, raw []byte) (*File, error) {
	return newFile(name, raw, FileVirtual)
}

func newFile(path string, raw []byte, flags FileFlags) (*File, error) {
	raw, inflated, err := decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inflated {
		flags |= FileDecompressed
	}
	content, decodeFlags, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	content, newlineFlags := normalizeNewlines(content)
	flags |= decodeFlags | newlineFlags
	return &File{
		Path:    path,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}, nil
}

// Lines splits the content into lines without their terminators.
// A trailing newline does not produce an extra empty line.
func (f *File) Lines() []string {
	if f == nil || len(f.Content) == 0 {
		return nil
	}
	text := strings.TrimSuffix(string(f.Content), "\n")
	return strings.Split(text, "\n")
}
