package parser

import (
	"regexp"
	"strings"
	"unicode"

	"exclist/internal/diag"
)

// LineKind is the outcome of classifying one trimmed log line.
type LineKind uint8

const (
	LineUnrecognized LineKind = iota
	LineFilePath
	LineDiagnostic
)

func (k LineKind) String() string {
	switch k {
	case LineFilePath:
		return "file"
	case LineDiagnostic:
		return "diagnostic"
	default:
		return "unrecognized"
	}
}

var (
	// the whole line is an absolute .ts path
	filePathRe = regexp.MustCompile(`^(/.*\.ts)$`)
	// anchored at the start only; greedy .* lets the last [error_...] win
	diagnosticRe = regexp.MustCompile(`^\s*(\d+,\d+):.*\[(error_[A-Za-z0-9_]+)\]`)
)

// TrimLine strips surrounding whitespace. Besides unicode.IsSpace it drops the
// ASCII file, group, record and unit separators (0x1C-0x1F), which the log
// producer's tooling also treats as blanks.
func TrimLine(s string) string {
	return strings.TrimFunc(s, isBlank)
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

// Line is a classified log line. Path is set for LineFilePath; Position and
// Category for LineDiagnostic.
type Line struct {
	Kind     LineKind
	Path     string
	Position string
	Category diag.Category
}

// MatchFilePath reports whether trimmed is a bare absolute .ts path.
func MatchFilePath(trimmed string) (string, bool) {
	m := filePathRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchDiagnostic extracts the line,column token and the category.
func MatchDiagnostic(trimmed string) (position string, category diag.Category, ok bool) {
	m := diagnosticRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", "", false
	}
	return m[1], diag.Category(m[2]), true
}

// Classify tests the file-path shape first; a line that matches it is never
// tried as a diagnostic.
func Classify(trimmed string) Line {
	if path, ok := MatchFilePath(trimmed); ok {
		return Line{Kind: LineFilePath, Path: path}
	}
	if pos, cat, ok := MatchDiagnostic(trimmed); ok {
		return Line{Kind: LineDiagnostic, Position: pos, Category: cat}
	}
	return Line{Kind: LineUnrecognized}
}
