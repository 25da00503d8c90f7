package source

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned when a log is neither UTF-16 with a BOM nor valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode strips a leading BOM and transcodes UTF-16 to UTF-8.
// Content without a BOM passes through untouched and must already be UTF-8.
func decode(raw []byte) ([]byte, FileFlags, error) {
	var flags FileFlags
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		flags |= FileHadBOM
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		flags |= FileHadBOM | FileDecodedUTF16
	}

	out := raw
	if flags != 0 {
		var err error
		out, _, err = transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
		if err != nil {
			return nil, 0, fmt.Errorf("decode: %w", err)
		}
	}
	if !utf8.Valid(out) {
		return nil, 0, ErrInvalidEncoding
	}
	return out, flags, nil
}

// normalizeNewlines rewrites \r\n and lone \r to \n and reports which of
// the two it saw.
func normalizeNewlines(content []byte) (out []byte, flags FileFlags) {
	if !slices.Contains(content, '\r') {
		return content, 0
	}

	out = make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] != '\r' {
			out = append(out, content[i])
			continue
		}
		if i+1 < len(content) && content[i+1] == '\n' {
			flags |= FileNormalizedCRLF
			i++
		} else {
			flags |= FileNormalizedCR
		}
		out = append(out, '\n')
	}
	return out, flags
}
