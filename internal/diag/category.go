package diag

import "regexp"

// Category is the error_<identifier> token used as the grouping key.
type Category string

const (
	// CategoryInternal is always numbered-mode but never shows a suffix.
	CategoryInternal Category = "error_INTERNAL"
	// CategoryPascal never shows a suffix.
	CategoryPascal Category = "error_PASCAL"
)

var categoryRe = regexp.MustCompile(`^error_[A-Za-z0-9_]+$`)

// Valid reports whether c has the error_<identifier> shape.
func (c Category) Valid() bool {
	return categoryRe.MatchString(string(c))
}

// IsInternal reports whether c is exactly error_INTERNAL.
func (c Category) IsInternal() bool {
	return c == CategoryInternal
}

// CounterExempt reports whether groups of c never consume a sequence number.
func (c Category) CounterExempt() bool {
	return c == CategoryInternal || c == CategoryPascal
}

func (c Category) String() string {
	return string(c)
}
