package diagfmt

import (
	"bytes"
	"io"

	"exclist/internal/order"
)

// ReportLine renders one entry of the sorted report.
//
//	<file>:<position>: --<category>
//	<file>:<position>: --<category>--    <token>:
func ReportLine(e order.Entry) string {
	r := e.Record
	if e.Token == "" {
		return r.File + ":" + r.Position + ": --" + string(r.Category) + "\n"
	}
	return r.File + ":" + r.Position + ": --" + string(r.Category) + "--    " + e.Token + ":\n"
}

// Report writes the plan as report lines: groups in order, entries in
// insertion order, no header or footer.
func Report(w io.Writer, plan order.Plan) error {
	_, err := w.Write(ReportBytes(plan))
	return err
}

// ReportBytes renders the whole report in memory.
func ReportBytes(plan order.Plan) []byte {
	var buf bytes.Buffer
	for _, g := range plan.Groups {
		for _, e := range g.Entries {
			buf.WriteString(ReportLine(e))
		}
	}
	return buf.Bytes()
}
