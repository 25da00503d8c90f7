package diagfmt

import (
	"encoding/json"
	"io"

	"exclist/internal/order"
)

// EntryJSON is one record of a group.
type EntryJSON struct {
	File     string `json:"file" yaml:"file"`
	Position string `json:"position" yaml:"position"`
	Token    string `json:"token,omitempty" yaml:"token,omitempty"`
	Line     uint32 `json:"line,omitempty" yaml:"line,omitempty"`
}

// GroupJSON is one category group.
type GroupJSON struct {
	Category string      `json:"category" yaml:"category"`
	Mode     string      `json:"mode" yaml:"mode"`
	Seq      *int        `json:"seq,omitempty" yaml:"seq,omitempty"`
	Count    int         `json:"count" yaml:"count"`
	Entries  []EntryJSON `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// PlanOutput is the root of the JSON and YAML output.
type PlanOutput struct {
	Groups       []GroupJSON `json:"groups" yaml:"groups"`
	Records      int         `json:"records" yaml:"records"`
	Numbered     int         `json:"numbered_groups" yaml:"numbered_groups"`
	NextSequence int         `json:"next_sequence" yaml:"next_sequence"`
}

// BuildPlanOutput converts a plan to its serialisable shape.
func BuildPlanOutput(plan order.Plan, opts JSONOpts) PlanOutput {
	out := PlanOutput{
		Groups:       make([]GroupJSON, 0, len(plan.Groups)),
		Records:      plan.Records(),
		Numbered:     plan.Numbered(),
		NextSequence: plan.Next.Peek(),
	}
	for _, g := range plan.Groups {
		gj := GroupJSON{
			Category: string(g.Category),
			Mode:     g.Mode.String(),
			Count:    len(g.Entries),
		}
		if g.Seq >= 0 {
			seq := g.Seq
			gj.Seq = &seq
		}
		if opts.IncludeEntries {
			gj.Entries = make([]EntryJSON, len(g.Entries))
			for i, e := range g.Entries {
				ej := EntryJSON{File: e.Record.File, Position: e.Record.Position, Token: e.Token}
				if opts.IncludeLines {
					ej.Line = e.Record.Line
				}
				gj.Entries[i] = ej
			}
		}
		out.Groups = append(out.Groups, gj)
	}
	return out
}

// JSON writes the plan as indented JSON.
func JSON(w io.Writer, plan order.Plan, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildPlanOutput(plan, opts))
}
