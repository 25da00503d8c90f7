package diag

import "fmt"

// Record is one diagnostic occurrence attributed to a source file.
type Record struct {
	File     string
	Position string // literal "line,column", never parsed
	Category Category
	Line     uint32 // 1-based line in the log the record came from
}

// String renders the record the way the diagnostics log would point at it.
func (r Record) String() string {
	return fmt.Sprintf("%s:%s [%s]", r.File, r.Position, r.Category)
}
