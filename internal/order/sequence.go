package order

import "fmt"

// DefaultSequenceStart is the first group number handed out in a run.
const DefaultSequenceStart = 10

// Sequence is the group sequence counter. It is a plain value: callers thread
// it through Build and get the advanced value back in Plan.Next.
type Sequence struct {
	next int
}

func NewSequence(start int) Sequence {
	return Sequence{next: start}
}

// Peek returns the number the next qualifying group will receive.
func (s Sequence) Peek() int { return s.next }

// Take returns the current number and the advanced sequence.
func (s Sequence) Take() (int, Sequence) {
	return s.next, Sequence{next: s.next + 1}
}

// Token builds the suffix for the record at offset in group seq.
// seq is padded to two digits and grows past 99 untruncated.
func Token(seq, offset int) string {
	return fmt.Sprintf("(m%02d%d)", seq, offset)
}
