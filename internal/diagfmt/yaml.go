package diagfmt

import (
	"io"

	"gopkg.in/yaml.v3"

	"exclist/internal/order"
)

// YAML writes the plan in the same shape as JSON, two-space indented.
func YAML(w io.Writer, plan order.Plan, opts JSONOpts) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(BuildPlanOutput(plan, opts)); err != nil {
		return err
	}
	return enc.Close()
}
