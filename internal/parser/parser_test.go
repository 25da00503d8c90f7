package parser

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"exclist/internal/diag"
	"exclist/internal/trace"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Line
	}{
		{"abs ts path", "/a/foo.ts", Line{Kind: LineFilePath, Path: "/a/foo.ts"}},
		{"path with spaces", "/a b/c d.ts", Line{Kind: LineFilePath, Path: "/a b/c d.ts"}},
		{"tsx is not ts", "/a/foo.tsx", Line{Kind: LineUnrecognized}},
		{"relative path", "a/foo.ts", Line{Kind: LineUnrecognized}},
		{"upper case ext", "/a/foo.TS", Line{Kind: LineUnrecognized}},
		{"diagnostic", "10,5: msg [error_ALPHA]", Line{Kind: LineDiagnostic, Position: "10,5", Category: "error_ALPHA"}},
		{"trailing text", "10,5: msg [error_ALPHA] (see above)", Line{Kind: LineDiagnostic, Position: "10,5", Category: "error_ALPHA"}},
		{"leading zeros kept", "007,03: m [error_A_1]", Line{Kind: LineDiagnostic, Position: "007,03", Category: "error_A_1"}},
		{"last bracket wins", "1,2: [error_A] then [error_B]", Line{Kind: LineDiagnostic, Position: "1,2", Category: "error_B"}},
		{"missing colon", "10,5 msg [error_A]", Line{Kind: LineUnrecognized}},
		{"missing column", "10: msg [error_A]", Line{Kind: LineUnrecognized}},
		{"not an error token", "10,5: msg [warning_A]", Line{Kind: LineUnrecognized}},
		{"empty identifier", "10,5: msg [error_]", Line{Kind: LineUnrecognized}},
		{"path shape wins", "/x/10,5: [error_A].ts", Line{Kind: LineFilePath, Path: "/x/10,5: [error_A].ts"}},
		{"empty", "", Line{Kind: LineUnrecognized}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Classify(tt.in)); diff != "" {
				t.Fatalf("Classify(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTrimLine(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  /a/foo.ts\t", "/a/foo.ts"},
		{"\x1c/a/foo.ts\x1f", "/a/foo.ts"},
		{"\x1e\u00a0 10,5: m [error_A]\x1d\u3000", "10,5: m [error_A]"},
		{"\x1b10,5: m [error_A]", "\x1b10,5: m [error_A]"},
		{"a\x1cb", "a\x1cb"},
	}
	for _, tt := range tests {
		if got := TrimLine(tt.in); got != tt.want {
			t.Errorf("TrimLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSeparatorWrappedLines(t *testing.T) {
	res, err := ParseLines(context.Background(), []string{"\x1c/a/foo.ts\x1c", "\x1f10,5: m [error_A]\x1f"}, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	want := []diag.Record{{File: "/a/foo.ts", Position: "10,5", Category: "error_A", Line: 2}}
	if diff := cmp.Diff(want, res.Bag.Items()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAttributesToCurrentFile(t *testing.T) {
	lines := []string{
		"  5,1: before any file [error_EARLY]",
		"/a/foo.ts",
		"10,5: msg [error_ALPHA]",
		"    some context line",
		"/a/bar.ts",
		"\t10,5: msg [error_ALPHA]  ",
		"20,1: msg [error_INTERNAL]",
		"30,2: msg [error_BETA]",
	}

	res, err := ParseLines(context.Background(), lines, Options{})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}

	want := []diag.Record{
		{File: "/a/foo.ts", Position: "10,5", Category: "error_ALPHA", Line: 3},
		{File: "/a/bar.ts", Position: "10,5", Category: "error_ALPHA", Line: 6},
		{File: "/a/bar.ts", Position: "20,1", Category: "error_INTERNAL", Line: 7},
		{File: "/a/bar.ts", Position: "30,2", Category: "error_BETA", Line: 8},
	}
	if diff := cmp.Diff(want, res.Bag.Items()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}

	wantStats := Stats{Lines: 8, Files: 2, Diagnostics: 4, Unattributed: 1, Unrecognized: 1}
	if diff := cmp.Diff(wantStats, res.Stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWithCustomReporter(t *testing.T) {
	bag := diag.NewBag(0)
	counter := diag.NewCountingReporter(diag.BagReporter{Bag: bag})

	res, err := ParseLines(context.Background(), []string{"/a.ts", "1,1: x [error_A]", "2,1: y [error_A]"}, Options{Reporter: counter})
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if res.Bag != nil {
		t.Fatalf("result bag should be nil for non-bag reporter")
	}
	if bag.Len() != 2 || counter.Counts["error_A"] != 2 {
		t.Fatalf("unexpected bag=%d counts=%v", bag.Len(), counter.Counts)
	}
}

func TestParseTracesDroppedLines(t *testing.T) {
	var buf bytes.Buffer
	tracer, err := trace.New(trace.Config{Level: trace.LevelDebug, Format: trace.FormatText, Output: &buf})
	if err != nil {
		t.Fatalf("trace.New: %v", err)
	}
	ctx := trace.WithTracer(context.Background(), tracer)

	if _, err := ParseLines(ctx, []string{"1,1: x [error_A]"}, Options{}); err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if err := tracer.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !strings.Contains(buf.String(), "dropped: no file context") {
		t.Fatalf("expected drop event in trace:\n%s", buf.String())
	}
}
