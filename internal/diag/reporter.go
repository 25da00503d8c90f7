package diag

// Reporter is the minimal contract the parser emits records through.
// Implementations: BagReporter (appends to a Bag) and CountingReporter.
type Reporter interface {
	Report(r Record)
}

// BagReporter appends every record to Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(rec Record) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(rec)
}

// CountingReporter tallies records per category before forwarding them.
type CountingReporter struct {
	Next   Reporter
	Counts map[Category]int
}

func NewCountingReporter(next Reporter) *CountingReporter {
	return &CountingReporter{Next: next, Counts: make(map[Category]int)}
}

func (c *CountingReporter) Report(rec Record) {
	if c == nil {
		return
	}
	c.Counts[rec.Category]++
	if c.Next != nil {
		c.Next.Report(rec)
	}
}
