package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StatsRow summarises one analysed log.
type StatsRow struct {
	Log          string
	Records      int
	Categories   int
	Numbered     int
	Unattributed int
	Err          error
}

var statsHeaders = []string{"RECORDS", "CATEGORIES", "NUMBERED", "UNATTRIBUTED"}

// Stats prints one right-aligned row per log. Rows with Err print the error instead of counts.
func Stats(w io.Writer, rows []StatsRow, useColor bool) error {
	logWidth := runewidth.StringWidth("LOG")
	for _, r := range rows {
		logWidth = max(logWidth, runewidth.StringWidth(r.Log))
	}

	cells := make([]string, 0, len(statsHeaders)+1)
	cells = append(cells, runewidth.FillRight("LOG", logWidth))
	for _, h := range statsHeaders {
		cells = append(cells, numberCell(h, h))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if useColor {
		header = headerStyle.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, r := range rows {
		name := runewidth.FillRight(r.Log, logWidth)
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "%s  error: %v\n", name, r.Err); err != nil {
				return err
			}
			continue
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			name,
			numberCell(statsHeaders[0], strconv.Itoa(r.Records)),
			numberCell(statsHeaders[1], strconv.Itoa(r.Categories)),
			numberCell(statsHeaders[2], strconv.Itoa(r.Numbered)),
			numberCell(statsHeaders[3], strconv.Itoa(r.Unattributed)),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func numberCell(header, value string) string {
	return lipgloss.NewStyle().
		Width(runewidth.StringWidth(header) + 2).
		Align(lipgloss.Right).
		Render(value)
}
