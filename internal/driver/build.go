package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"

	"exclist/internal/diag"
	"exclist/internal/diagfmt"
	"exclist/internal/observ"
	"exclist/internal/order"
	"exclist/internal/parser"
	"exclist/internal/source"
	"exclist/internal/trace"
)

// Analysis is everything known about one log before anything is written.
type Analysis struct {
	Path   string
	File   *source.File
	Bag    *diag.Bag
	Counts map[diag.Category]int
	Stats  parser.Stats
	Plan   order.Plan
}

// Result describes a finished build.
type Result struct {
	*Analysis
	RunID   string // also attached to the run span
	Output  string
	Lines   int
	Bytes   int
	Timings *observ.Report

	// Set only with Options.KeepPrevious.
	Report      []byte
	Previous    []byte
	HadPrevious bool
}

// Build runs the whole pipeline: load, parse, order, render and an atomic
// write of the report. Nothing is written unless every stage succeeds.
func Build(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}

	runID := uuid.NewString()
	ctx, span := trace.Start(ctx, trace.ScopeRun, "build",
		trace.F("input", opts.Input), trace.F("output", opts.Output), trace.F("run_id", runID))

	a, err := analyze(ctx, opts.Input, opts.SequenceStart, timer)
	if err != nil {
		span.End("failed")
		return nil, err
	}

	var (
		data        []byte
		previous    []byte
		hadPrevious bool
	)
	if opts.KeepPrevious {
		previous, hadPrevious, err = readPrevious(opts.Output)
		if err != nil {
			span.End("failed")
			return nil, err
		}
	}

	err = runStage(ctx, timer, "render", func(context.Context) (string, error) {
		data = diagfmt.ReportBytes(a.Plan)
		return fmt.Sprintf("%d bytes", len(data)), nil
	})
	if err != nil {
		span.End("failed")
		return nil, err
	}

	err = runStage(ctx, timer, "write", func(context.Context) (string, error) {
		if err := writeFileAtomic(opts.Output, data, 0o644); err != nil {
			return "", fmt.Errorf("write report: %w", err)
		}
		return opts.Output, nil
	})
	if err != nil {
		span.End("failed")
		return nil, err
	}

	res := &Result{
		Analysis: a,
		RunID:    runID,
		Output:   opts.Output,
		Lines:    a.Plan.Records(),
		Bytes:    len(data),
	}
	if opts.KeepPrevious {
		res.Report = data
		res.Previous = previous
		res.HadPrevious = hadPrevious
	}
	if timer != nil {
		report := timer.Report()
		res.Timings = &report
	}
	span.End(fmt.Sprintf("%d lines", res.Lines))
	return res, nil
}

// Analyze loads, parses and orders one log without writing anything.
func Analyze(ctx context.Context, path string, opts Options) (*Analysis, error) {
	opts = opts.withDefaults()
	ctx, span := trace.Start(ctx, trace.ScopeRun, "analyze", trace.F("input", path))
	a, err := analyze(ctx, path, opts.SequenceStart, nil)
	if err != nil {
		span.End("failed")
		return nil, err
	}
	span.End(fmt.Sprintf("%d records", a.Bag.Len()))
	return a, nil
}

func analyze(ctx context.Context, path string, seqStart int, timer *observ.Timer) (*Analysis, error) {
	a := &Analysis{Path: path}

	err := runStage(ctx, timer, "load", func(context.Context) (string, error) {
		f, err := source.Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			return "", &InputNotFoundError{Path: path, Err: err}
		}
		if err != nil {
			return "", fmt.Errorf("load input: %w", err)
		}
		a.File = f
		return fmt.Sprintf("%d bytes", len(f.Content)), nil
	})
	if err != nil {
		return nil, err
	}

	err = runStage(ctx, timer, "parse", func(ctx context.Context) (string, error) {
		a.Bag = diag.NewBag(0)
		counter := diag.NewCountingReporter(diag.BagReporter{Bag: a.Bag})
		res, err := parser.ParseFile(ctx, a.File, parser.Options{Reporter: counter})
		if err != nil {
			return "", fmt.Errorf("parse: %w", err)
		}
		a.Counts = counter.Counts
		a.Stats = res.Stats
		if span := trace.SpanFromContext(ctx); span != nil {
			span.Annotate(trace.F("files", len(a.Bag.Files())), trace.F("categories", len(a.Bag.Categories())))
		}
		return fmt.Sprintf("%d records", a.Bag.Len()), nil
	})
	if err != nil {
		return nil, err
	}

	err = runStage(ctx, timer, "order", func(ctx context.Context) (string, error) {
		table := order.TableFrom(a.Bag.Items())
		a.Plan = order.Build(ctx, table, order.NewSequence(seqStart))
		return fmt.Sprintf("%d groups", len(a.Plan.Groups)), nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// readPrevious returns the current content of the output path, if any.
func readPrevious(path string) ([]byte, bool, error) {
	// #nosec G304 -- path is the configured report output
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read previous report: %w", err)
	}
	return data, true, nil
}

// runStage wraps fn in a trace span and a timer phase. The context is
// checked first so a cancelled run stops between stages.
func runStage(ctx context.Context, timer *observ.Timer, name string, fn func(context.Context) (string, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stageCtx, span := trace.Start(ctx, trace.ScopeStage, name)
	stop := timer.Start(name)

	note, err := fn(stageCtx)
	stop(note)
	if err != nil {
		trace.Point(ctx, trace.ScopeFailure, name, err.Error())
		span.End("failed")
		return err
	}
	span.End(note)
	return nil
}
