package trace

import (
	"bufio"
	"io"
	"sync"
)

// StreamTracer formats events into a buffered writer as they arrive.
type StreamTracer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer // nil when the caller owns the writer
	level  Level
	format Format
	seq    uint64
	err    error // first write error; later events are dropped
}

// NewStreamTracer writes to w. closer, if not nil, is closed by Close.
func NewStreamTracer(w io.Writer, closer io.Closer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: bufio.NewWriter(w), closer: closer, level: level, format: format}
}

func (t *StreamTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return
	}
	t.seq++
	ev.Seq = t.seq
	_, t.err = t.w.Write(FormatEvent(*ev, t.format))
}

// Flush writes buffered events and reports the first write error, if any.
func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}

// Close flushes, then closes the destination if the tracer owns it.
func (t *StreamTracer) Close() error {
	err := t.Flush()
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
		t.closer = nil
	}
	return err
}

func (t *StreamTracer) Level() Level { return t.level }
