package diagfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLRoundTripsPlanOutput(t *testing.T) {
	plan := examplePlan()
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, plan, JSONOpts{IncludeEntries: true}))

	var got PlanOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, BuildPlanOutput(plan, JSONOpts{IncludeEntries: true}), got)
	require.Contains(t, buf.String(), "numbered_groups: 1\n")
	require.Contains(t, buf.String(), "token: (m100)\n")
}
