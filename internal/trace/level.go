package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // nothing
	LevelError               // failures only
	LevelPhase               // runs and stages
	LevelDetail              // plus category groups
	LevelDebug               // plus every log line
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

// finest is the most detailed non-failure scope a level lets through.
var finest = [...]Scope{LevelPhase: ScopeStage, LevelDetail: ScopeGroup, LevelDebug: ScopeLine}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts a level name in any case. The empty string is off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelOff, nil
	}
	for i, name := range levelNames {
		if s == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass l. Failures pass every
// level except off.
func (l Level) ShouldEmit(scope Scope) bool {
	if l == LevelOff || int(l) >= len(finest) {
		return false
	}
	if scope == ScopeFailure {
		return true
	}
	return scope <= finest[l]
}
