package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var spanIDs atomic.Uint64

// Span is one begin/end pair. A nil *Span is valid and inert; Start returns
// nil when the tracer filters the scope out.
type Span struct {
	tracer Tracer
	id     uint64
	parent uint64
	depth  int
	scope  Scope
	name   string
	start  time.Time
	end    []Field
}

// Start emits a begin event nested under the span carried by ctx and returns
// a context that carries the new span.
func Start(ctx context.Context, scope Scope, name string, fields ...Field) (context.Context, *Span) {
	t := FromContext(ctx)
	if !t.Level().ShouldEmit(scope) {
		return ctx, nil
	}
	s := &Span{
		tracer: t,
		id:     spanIDs.Add(1),
		scope:  scope,
		name:   name,
		start:  time.Now(),
	}
	if parent := SpanFromContext(ctx); parent != nil {
		s.parent = parent.id
		s.depth = parent.depth + 1
	}
	t.Emit(&Event{
		At:     s.start,
		Kind:   KindBegin,
		Scope:  scope,
		Span:   s.id,
		Parent: s.parent,
		Depth:  s.depth,
		Name:   name,
		Fields: fields,
	})
	return context.WithValue(ctx, spanKey{}, s), s
}

// Annotate adds fields to the end event.
func (s *Span) Annotate(fields ...Field) *Span {
	if s != nil {
		s.end = append(s.end, fields...)
	}
	return s
}

// End emits the end event and returns how long the span was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil {
		return 0
	}
	now := time.Now()
	elapsed := now.Sub(s.start)
	s.tracer.Emit(&Event{
		At:      now,
		Kind:    KindEnd,
		Scope:   s.scope,
		Span:    s.id,
		Parent:  s.parent,
		Depth:   s.depth,
		Name:    s.name,
		Detail:  detail,
		Elapsed: elapsed,
		Fields:  s.end,
	})
	return elapsed
}

// Point emits an instant event under the span carried by ctx.
func Point(ctx context.Context, scope Scope, name, detail string, fields ...Field) {
	t := FromContext(ctx)
	if !t.Level().ShouldEmit(scope) {
		return
	}
	ev := &Event{
		At:     time.Now(),
		Kind:   KindPoint,
		Scope:  scope,
		Name:   name,
		Detail: detail,
		Fields: fields,
	}
	if parent := SpanFromContext(ctx); parent != nil {
		ev.Parent = parent.id
		ev.Depth = parent.depth + 1
	}
	t.Emit(ev)
}
