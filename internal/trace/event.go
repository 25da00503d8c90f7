package trace

import (
	"fmt"
	"time"
)

// Kind tells a span boundary from an instant event.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
)

var kindNames = [...]string{KindBegin: "begin", KindEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	ScopeRun     Scope = iota + 1 // one build or analysis
	ScopeStage                    // load, parse, order, render, write
	ScopeGroup                    // one category group
	ScopeLine                     // one log line
	ScopeFailure                  // a failed stage
)

var scopeNames = [...]string{
	ScopeRun:     "run",
	ScopeStage:   "stage",
	ScopeGroup:   "group",
	ScopeLine:    "line",
	ScopeFailure: "failure",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Field is one key/value annotation. Fields keep the order they were added in.
type Field struct {
	Key   string
	Value string
}

// F builds a Field, formatting value with fmt.Sprint.
func F(key string, value any) Field {
	if s, ok := value.(string); ok {
		return Field{Key: key, Value: s}
	}
	return Field{Key: key, Value: fmt.Sprint(value)}
}

// Event is what a Tracer receives.
type Event struct {
	Seq     uint64 // assigned by the tracer
	At      time.Time
	Kind    Kind
	Scope   Scope
	Span    uint64 // 0 for points
	Parent  uint64 // 0 at the top level
	Depth   int    // nesting below the outermost traced span
	Name    string
	Detail  string
	Elapsed time.Duration // KindEnd only
	Fields  []Field
}
