package diag

import "sort"

// Bag holds records in the order the parser produced them.
type Bag struct {
	items []Record
}

func NewBag(capHint int) *Bag {
	if capHint < 0 {
		capHint = 0
	}
	return &Bag{items: make([]Record, 0, capHint)}
}

// Add appends a record.
func (b *Bag) Add(r Record) {
	b.items = append(b.items, r)
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the records in insertion order.
// The slice aliases the bag; do not modify it.
func (b *Bag) Items() []Record {
	return b.items
}

// Categories returns the distinct categories, sorted byte-wise.
func (b *Bag) Categories() []Category {
	seen := make(map[Category]struct{}, len(b.items))
	out := make([]Category, 0)
	for _, r := range b.items {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Files returns the distinct source files in first-seen order.
func (b *Bag) Files() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range b.items {
		if _, ok := seen[r.File]; ok {
			continue
		}
		seen[r.File] = struct{}{}
		out = append(out, r.File)
	}
	return out
}
