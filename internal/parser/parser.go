package parser

import (
	"context"
	"fmt"
	"strings"

	"fortio.org/safecast"

	"exclist/internal/diag"
	"exclist/internal/source"
	"exclist/internal/trace"
)

type Options struct {
	Reporter diag.Reporter
}

// Stats counts how the lines of one log were classified.
type Stats struct {
	Lines        int
	Files        int
	Diagnostics  int
	Unattributed int // diagnostic-shaped lines seen before any file path
	Unrecognized int
}

type Result struct {
	Bag   *diag.Bag
	Stats Stats
}

// Parser holds the state for one log: the current-file context and counters.
type Parser struct {
	ctx        context.Context
	opts       Options
	current    string
	hasFile    bool
	stats      Stats
	traceLines bool
}

// ParseFile classifies every line of file and reports one record per
// attributed diagnostic line.
func ParseFile(ctx context.Context, file *source.File, opts Options) (Result, error) {
	var bag *diag.Bag
	if opts.Reporter == nil {
		bag = diag.NewBag(0)
		opts.Reporter = diag.BagReporter{Bag: bag}
	} else if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}

	p := Parser{
		ctx:        ctx,
		opts:       opts,
		traceLines: trace.FromContext(ctx).Level().ShouldEmit(trace.ScopeLine),
	}
	for i, text := range file.Lines() {
		lineNo, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			return Result{}, fmt.Errorf("%s: line %d: %w", file.Path, i+1, err)
		}
		p.feed(lineNo, text)
	}
	return Result{Bag: bag, Stats: p.stats}, nil
}

// ParseLines is ParseFile over in-memory lines.
func ParseLines(ctx context.Context, lines []string, opts Options) (Result, error) {
	f, err := source.FromBytes("<lines>", []byte(strings.Join(lines, "\n")))
	if err != nil {
		return Result{}, err
	}
	return ParseFile(ctx, f, opts)
}

func (p *Parser) feed(lineNo uint32, text string) {
	p.stats.Lines++
	line := Classify(TrimLine(text))
	switch line.Kind {
	case LineFilePath:
		p.stats.Files++
		p.current = line.Path
		p.hasFile = true
		p.traceLine(lineNo, line, "")
	case LineDiagnostic:
		if !p.hasFile {
			p.stats.Unattributed++
			p.traceLine(lineNo, line, "dropped: no file context")
			return
		}
		p.stats.Diagnostics++
		p.opts.Reporter.Report(diag.Record{
			File:     p.current,
			Position: line.Position,
			Category: line.Category,
			Line:     lineNo,
		})
		p.traceLine(lineNo, line, "")
	default:
		p.stats.Unrecognized++
	}
}

func (p *Parser) traceLine(lineNo uint32, line Line, detail string) {
	if !p.traceLines {
		return
	}
	fields := []trace.Field{trace.F("line", lineNo), trace.F("kind", line.Kind)}
	if line.Kind == LineDiagnostic {
		fields = append(fields, trace.F("category", line.Category), trace.F("position", line.Position))
	} else {
		fields = append(fields, trace.F("path", line.Path))
	}
	trace.Point(p.ctx, trace.ScopeLine, "line", detail, fields...)
}
