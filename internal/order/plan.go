package order

import (
	"context"

	"exclist/internal/diag"
	"exclist/internal/trace"
)

// Mode is how a category group is numbered.
type Mode uint8

const (
	// ModeSingleton: exactly one record and not error_INTERNAL. No suffix, no sequence number.
	ModeSingleton Mode = iota
	// ModeExempt: error_INTERNAL of any size, or error_PASCAL with two or more
	// records. No suffix, no sequence number.
	ModeExempt
	// ModeNumbered: every record gets (m<GG><offset>); the group consumes one sequence number.
	ModeNumbered
)

func (m Mode) String() string {
	switch m {
	case ModeSingleton:
		return "singleton"
	case ModeExempt:
		return "exempt"
	case ModeNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// Numbered reports whether records of the mode carry a suffix token.
func (m Mode) Numbered() bool { return m == ModeNumbered }

// ModeFor decides the numbering mode of a group of size n.
// The singleton test runs first, so a lone error_PASCAL is a singleton while
// a lone error_INTERNAL is exempt; both render the same.
func ModeFor(c diag.Category, n int) Mode {
	if n == 1 && !c.IsInternal() {
		return ModeSingleton
	}
	if c.CounterExempt() {
		return ModeExempt
	}
	return ModeNumbered
}

// Entry is one record with its suffix token ("" when unnumbered).
type Entry struct {
	Record diag.Record
	Token  string
}

// Group is one category in emission order.
type Group struct {
	Category diag.Category
	Mode     Mode
	Seq      int // sequence number used, -1 when the group consumed none
	Entries  []Entry
}

// Plan is the fully ordered rendering plan.
type Plan struct {
	Groups []Group
	Next   Sequence // counter after the last qualifying group
}

// Records returns the number of entries across all groups.
func (p Plan) Records() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Entries)
	}
	return n
}

// Numbered returns the number of groups that consumed a sequence number.
func (p Plan) Numbered() int {
	n := 0
	for _, g := range p.Groups {
		if g.Mode.Numbered() {
			n++
		}
	}
	return n
}

// Build orders the table into a plan, starting group numbers at seq.
func Build(ctx context.Context, t *Table, seq Sequence) Plan {
	cats := t.Sorted()
	plan := Plan{Groups: make([]Group, 0, len(cats))}

	for _, c := range cats {
		recs := t.Group(c)
		mode := ModeFor(c, len(recs))
		g := Group{Category: c, Mode: mode, Seq: -1, Entries: make([]Entry, len(recs))}

		if mode.Numbered() {
			g.Seq, seq = seq.Take()
		}
		for i, r := range recs {
			g.Entries[i] = Entry{Record: r}
			if mode.Numbered() {
				g.Entries[i].Token = Token(g.Seq, i)
			}
		}

		trace.Point(ctx, trace.ScopeGroup, "group:"+c.String(), "",
			trace.F("mode", mode), trace.F("size", len(recs)), trace.F("seq", g.Seq))
		plan.Groups = append(plan.Groups, g)
	}

	plan.Next = seq
	return plan
}
