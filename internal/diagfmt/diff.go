package diagfmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// DiffOpts configures ReportDiff.
type DiffOpts struct {
	FromFile string
	ToFile   string
	Context  int
	Color    bool
}

// ReportDiff writes a unified diff from before to after. Identical inputs
// write nothing and report false.
func ReportDiff(w io.Writer, before, after []byte, opts DiffOpts) (bool, error) {
	if bytes.Equal(before, after) {
		return false, nil
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: opts.FromFile,
		ToFile:   opts.ToFile,
		Context:  opts.Context,
	})
	if err != nil {
		return false, fmt.Errorf("diff: %w", err)
	}

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)
	for _, c := range []*color.Color{added, removed, hunk} {
		setColor(c, opts.Color)
	}

	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		var c *color.Color
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "@@"):
			c = hunk
		case strings.HasPrefix(line, "+"):
			c = added
		case strings.HasPrefix(line, "-"):
			c = removed
		}
		if c != nil {
			line = c.Sprint(strings.TrimSuffix(line, "\n")) + "\n"
		}
		if _, err := io.WriteString(w, line); err != nil {
			return true, err
		}
	}
	return true, nil
}
