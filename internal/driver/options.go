package driver

import "exclist/internal/order"

const (
	// DefaultInput is the diagnostics log read when nothing else is configured.
	DefaultInput = "exceptions-250429.lst"
	// DefaultOutput is the sorted report written when nothing else is configured.
	DefaultOutput = "exceptions-250429.srt"
)

// Options configures one report build.
type Options struct {
	Input         string
	Output        string
	SequenceStart int // first group number; 0 means order.DefaultSequenceStart
	EnableTimings bool
	KeepPrevious  bool // read the report being replaced into Result.Previous
}

func (o Options) withDefaults() Options {
	if o.Input == "" {
		o.Input = DefaultInput
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.SequenceStart <= 0 {
		o.SequenceStart = order.DefaultSequenceStart
	}
	return o
}
