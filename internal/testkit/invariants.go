package testkit

import (
	"fmt"

	"exclist/internal/diag"
	"exclist/internal/order"
)

// CheckPlanInvariants verifies a plan built from records with a counter
// starting at start:
// 1) every record lands in exactly one group, groups are keyed by distinct
// categories and entries keep their input order
// 2) groups are emitted in strictly increasing byte order of category
// 3) each group's mode follows its category and size, and only numbered
// groups carry tokens
// 4) numbered groups take start, start+1, ... in emission order and Next
// points past the last one
func CheckPlanInvariants(records []diag.Record, plan order.Plan, start int) error {
	byCat := make(map[diag.Category][]diag.Record)
	for _, r := range records {
		byCat[r.Category] = append(byCat[r.Category], r)
	}
	if len(plan.Groups) != len(byCat) {
		return fmt.Errorf("group count = %d, want %d distinct categories", len(plan.Groups), len(byCat))
	}

	want := start
	for i, g := range plan.Groups {
		// 2) ordering
		if i > 0 && plan.Groups[i-1].Category >= g.Category {
			return fmt.Errorf("group %d (%s) not after %s", i, g.Category, plan.Groups[i-1].Category)
		}

		// 1) partition, input order
		if !g.Category.Valid() {
			return fmt.Errorf("group %d has malformed category %q", i, g.Category)
		}
		recs, ok := byCat[g.Category]
		if !ok {
			return fmt.Errorf("group %s has no source records", g.Category)
		}
		if len(recs) != len(g.Entries) {
			return fmt.Errorf("group %s has %d entries, want %d", g.Category, len(g.Entries), len(recs))
		}
		for j, e := range g.Entries {
			if e.Record != recs[j] {
				return fmt.Errorf("group %s entry %d = %v, want %v", g.Category, j, e.Record, recs[j])
			}
		}

		// 3) mode and tokens
		if mode := order.ModeFor(g.Category, len(g.Entries)); g.Mode != mode {
			return fmt.Errorf("group %s mode = %s, want %s", g.Category, g.Mode, mode)
		}
		if !g.Mode.Numbered() {
			if g.Seq != -1 {
				return fmt.Errorf("group %s (%s) consumed seq %d", g.Category, g.Mode, g.Seq)
			}
			for j, e := range g.Entries {
				if e.Token != "" {
					return fmt.Errorf("group %s entry %d has token %q", g.Category, j, e.Token)
				}
			}
			continue
		}

		// 4) counter
		if g.Seq != want {
			return fmt.Errorf("group %s seq = %d, want %d", g.Category, g.Seq, want)
		}
		for j, e := range g.Entries {
			if tok := order.Token(want, j); e.Token != tok {
				return fmt.Errorf("group %s entry %d token = %q, want %q", g.Category, j, e.Token, tok)
			}
		}
		want++
	}
	if plan.Next.Peek() != want {
		return fmt.Errorf("next sequence = %d, want %d", plan.Next.Peek(), want)
	}
	return nil
}
