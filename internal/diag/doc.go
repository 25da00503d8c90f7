// Package diag defines the record model shared by the parser, the orderer and
// the renderers.
//
// # Data model
//
// Record is the central value. It carries:
//
//   - File – absolute path of the source file the diagnostic belongs to.
//   - Position – the literal "line,column" token copied from the log. It is
//     never converted to numbers, so "007,03" survives untouched.
//   - Category – the error_<identifier> grouping key.
//   - Line – where in the log the record was found; only tracing and JSON
//     output look at it.
//
// Records are immutable once emitted.
//
// # Emitting records
//
// The parser writes into a Reporter rather than a concrete container.
// BagReporter collects records into a Bag in arrival order; CountingReporter
// tallies categories on the way through.
//
// Package diag does no formatting and no IO. Rendering lives in
// internal/diagfmt and ordering in internal/order.
package diag
