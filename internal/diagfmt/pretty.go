package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"exclist/internal/order"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// Pretty prints a column-aligned summary of the plan:
//
//	CATEGORY        COUNT  MODE       SEQ
//	error_ALPHA         2  numbered   m10
//	    /a/foo.ts:10,5  (m100)
func Pretty(w io.Writer, plan order.Plan, opts PrettyOpts) error {
	catWidth := categoryWidth(plan, opts.Width)

	header := runewidth.FillRight("CATEGORY", catWidth) + "  COUNT  MODE       SEQ"
	if opts.Color {
		header = headerStyle.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, g := range plan.Groups {
		name := runewidth.FillRight(runewidth.Truncate(string(g.Category), catWidth, "…"), catWidth)
		mode := modeColor(g.Mode, opts.Color).Sprint(runewidth.FillRight(g.Mode.String(), 9))
		if _, err := fmt.Fprintf(w, "%s  %5d  %s  %s\n", name, len(g.Entries), mode, seqLabel(g.Seq)); err != nil {
			return err
		}
		if opts.Entries {
			if err := prettyEntries(w, g, opts); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n%d records in %d groups (%d numbered)\n", plan.Records(), len(plan.Groups), plan.Numbered())
	return err
}

func prettyEntries(w io.Writer, g order.Group, opts PrettyOpts) error {
	locs := make([]string, len(g.Entries))
	width := 0
	for i, e := range g.Entries {
		locs[i] = displayPath(e.Record.File, opts) + ":" + e.Record.Position
		width = max(width, runewidth.StringWidth(locs[i]))
	}
	faint := color.New(color.Faint)
	setColor(faint, opts.Color)
	for i, e := range g.Entries {
		line := "    " + runewidth.FillRight(locs[i], width)
		if e.Token != "" {
			line += "  " + faint.Sprint(e.Token)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func categoryWidth(plan order.Plan, limit int) int {
	width := runewidth.StringWidth("CATEGORY")
	for _, g := range plan.Groups {
		width = max(width, runewidth.StringWidth(string(g.Category)))
	}
	if limit > 0 && width > limit {
		width = limit
	}
	return width
}

func seqLabel(seq int) string {
	if seq < 0 {
		return "-"
	}
	return fmt.Sprintf("m%02d", seq)
}

func modeColor(m order.Mode, enabled bool) *color.Color {
	var c *color.Color
	switch m {
	case order.ModeNumbered:
		c = color.New(color.FgGreen)
	case order.ModeExempt:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgCyan)
	}
	setColor(c, enabled)
	return c
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func displayPath(path string, opts PrettyOpts) string {
	switch opts.PathMode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative:
		if opts.BaseDir == "" {
			return path
		}
		rel, err := filepath.Rel(opts.BaseDir, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return path
		}
		return filepath.ToSlash(rel)
	default:
		return path
	}
}
