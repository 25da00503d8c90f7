package order

import (
	"github.com/tidwall/btree"

	"exclist/internal/diag"
)

// Table groups records by category. Categories are kept in byte-wise order;
// records inside a group keep their insertion order.
type Table struct {
	groups  btree.Map[diag.Category, []diag.Record]
	records int
}

func NewTable() *Table {
	return &Table{}
}

// TableFrom builds a table from records in order.
func TableFrom(records []diag.Record) *Table {
	t := NewTable()
	for _, r := range records {
		t.Add(r)
	}
	return t
}

// Add appends r to the group of its category.
func (t *Table) Add(r diag.Record) {
	recs, _ := t.groups.Get(r.Category)
	t.groups.Set(r.Category, append(recs, r))
	t.records++
}

// Group returns the records of c in insertion order.
func (t *Table) Group(c diag.Category) []diag.Record {
	recs, _ := t.groups.Get(c)
	return recs
}

func (t *Table) Len() int { return t.groups.Len() }

// Records returns the total number of records across all groups.
func (t *Table) Records() int { return t.records }

// Sorted returns the categories in byte-wise lexicographic order.
func (t *Table) Sorted() []diag.Category {
	out := make([]diag.Category, 0, t.groups.Len())
	t.groups.Scan(func(c diag.Category, _ []diag.Record) bool {
		out = append(out, c)
		return true
	})
	return out
}
