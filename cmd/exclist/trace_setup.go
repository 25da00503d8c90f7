package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"exclist/internal/trace"
)

// setupTracing reads the trace flags, falls back to the manifest's [trace]
// table for any flag left unset, and attaches the tracer to the command
// context. The returned cleanup closes it, which also flushes.
func setupTracing(cmd *cobra.Command, m *projectManifest) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	if m != nil {
		if !flags.Changed("trace") {
			traceOutput = m.resolve(m.Config.Trace.Output)
		}
		if !flags.Changed("trace-level") && m.Config.Trace.Level != "" {
			levelStr = m.Config.Trace.Level
		}
		if !flags.Changed("trace-format") && m.Config.Trace.Format != "" {
			formatStr = m.Config.Trace.Format
		}
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace alone means phase-level tracing
	if level == trace.LevelOff && traceOutput != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return func() {}, nil
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	cmd.SetContext(trace.WithTracer(ctx, tracer))

	cleanup := func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
