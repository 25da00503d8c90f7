// Package trace is the logging layer of exclist.
//
// Every run is a tree of spans: one ScopeRun span per CLI invocation, one
// ScopeStage span per pipeline stage, and point events for groups, log lines
// and failures. The configured Level decides which scopes reach the output.
//
// # Usage
//
//	exclist --trace=- --trace-level=detail
//	exclist --trace=run.ndjson --trace-level=debug
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: failures only
//   - LevelPhase: run and stage boundaries
//   - LevelDetail: plus one event per category group
//   - LevelDebug: plus one event per classified log line
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopeStage, "parse")
//	defer span.End("")
package trace
