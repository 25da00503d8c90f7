package diagfmt

import (
	"fmt"
	"io"

	"exclist/internal/order"
)

// Short writes one stable line per group: category, count, mode and sequence.
//
//	error_ALPHA 2 numbered m10
//	error_BETA 1 singleton -
func Short(w io.Writer, plan order.Plan) error {
	for _, g := range plan.Groups {
		seq := "-"
		if g.Seq >= 0 {
			seq = fmt.Sprintf("m%02d", g.Seq)
		}
		if _, err := fmt.Fprintf(w, "%s %d %s %s\n", g.Category, len(g.Entries), g.Mode, seq); err != nil {
			return err
		}
	}
	return nil
}
