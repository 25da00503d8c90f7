package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"exclist/internal/diag"
	"exclist/internal/order"
)

func examplePlan() order.Plan {
	records := []diag.Record{
		{File: "/a/foo.ts", Position: "10,5", Category: "error_ALPHA", Line: 2},
		{File: "/a/bar.ts", Position: "10,5", Category: "error_ALPHA", Line: 4},
		{File: "/a/bar.ts", Position: "20,1", Category: "error_INTERNAL", Line: 5},
		{File: "/a/bar.ts", Position: "30,2", Category: "error_BETA", Line: 6},
	}
	return order.Build(context.Background(), order.TableFrom(records), order.NewSequence(order.DefaultSequenceStart))
}

func TestReportWorkedExample(t *testing.T) {
	var buf bytes.Buffer
	if err := Report(&buf, examplePlan()); err != nil {
		t.Fatalf("Report: %v", err)
	}
	want := "/a/foo.ts:10,5: --error_ALPHA--    (m100):\n" +
		"/a/bar.ts:10,5: --error_ALPHA--    (m101):\n" +
		"/a/bar.ts:30,2: --error_BETA\n" +
		"/a/bar.ts:20,1: --error_INTERNAL\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected report:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestReportEmptyPlan(t *testing.T) {
	if got := ReportBytes(order.Plan{}); len(got) != 0 {
		t.Fatalf("expected empty report, got %q", got)
	}
}

func TestReportLinePascalGroup(t *testing.T) {
	e := order.Entry{Record: diag.Record{File: "/p.ts", Position: "1,2", Category: diag.CategoryPascal}}
	if got, want := ReportLine(e), "/p.ts:1,2: --error_PASCAL\n"; got != want {
		t.Fatalf("ReportLine = %q, want %q", got, want)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, examplePlan(), JSONOpts{IncludeEntries: true, IncludeLines: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out PlanOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Records != 4 || out.Numbered != 1 || out.NextSequence != 11 {
		t.Fatalf("unexpected totals: %+v", out)
	}
	var summary []string
	for _, g := range out.Groups {
		seq := "none"
		if g.Seq != nil {
			seq = fmt.Sprint(*g.Seq)
		}
		summary = append(summary, g.Category+"/"+g.Mode+"/"+seq)
	}
	want := []string{"error_ALPHA/numbered/10", "error_BETA/singleton/none", "error_INTERNAL/exempt/none"}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if e := out.Groups[0].Entries[1]; e.Token != "(m101)" || e.Line != 4 {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestShort(t *testing.T) {
	var buf bytes.Buffer
	if err := Short(&buf, examplePlan()); err != nil {
		t.Fatalf("Short: %v", err)
	}
	want := "error_ALPHA 2 numbered m10\nerror_BETA 1 singleton -\nerror_INTERNAL 1 exempt -\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected short output:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	opts := PrettyOpts{Entries: true, PathMode: PathModeBasename}
	if err := Pretty(&buf, examplePlan(), opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected escape codes:\n%q", out)
	}
	for _, want := range []string{
		"CATEGORY",
		"error_ALPHA         2  numbered   m10",
		"    foo.ts:10,5  (m100)",
		"    bar.ts:30,2",
		"4 records in 3 groups (1 numbered)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		path string
		mode PathMode
		base string
		want string
	}{
		{"/w/src/a.ts", PathModeAbsolute, "", "/w/src/a.ts"},
		{"/w/src/a.ts", PathModeBasename, "", "a.ts"},
		{"/w/src/a.ts", PathModeRelative, "/w", "src/a.ts"},
		{"/w/src/a.ts", PathModeRelative, "/other", "/w/src/a.ts"},
		{"/w/..cache/x.ts", PathModeRelative, "/w", "..cache/x.ts"},
		{"/w/a.ts", PathModeRelative, "/w/src", "/w/a.ts"},
		{"/w", PathModeRelative, "/w/src", "/w"},
	}
	for _, tt := range tests {
		if got := displayPath(tt.path, PrettyOpts{PathMode: tt.mode, BaseDir: tt.base}); got != tt.want {
			t.Errorf("displayPath(%q, mode=%d, base=%q) = %q, want %q", tt.path, tt.mode, tt.base, got, tt.want)
		}
	}
}

func TestStatsRows(t *testing.T) {
	var buf bytes.Buffer
	rows := []StatsRow{
		{Log: "one.lst", Records: 4, Categories: 3, Numbered: 1, Unattributed: 1},
		{Log: "missing.lst", Err: errors.New("not found")},
	}
	if err := Stats(&buf, rows, false); err != nil {
		t.Fatalf("Stats: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "LOG") || !strings.Contains(lines[0], "UNATTRIBUTED") {
		t.Errorf("bad header %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); !cmp.Equal(fields, []string{"one.lst", "4", "3", "1", "1"}) {
		t.Errorf("bad row fields %q", fields)
	}
	if !strings.Contains(lines[2], "error: not found") {
		t.Errorf("bad error row %q", lines[2])
	}
}
