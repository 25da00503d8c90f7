package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"exclist/internal/diagfmt"
	"exclist/internal/driver"
)

var statsCmd = &cobra.Command{
	Use:   "stats [logs...]",
	Short: "Summarise one or more diagnostics logs",
	Long: `Analyse each log independently and print one row per log: records kept,
distinct categories, numbered groups and diagnostics dropped for lack of a
preceding file path. Arguments may be globs, including ** (quote them so the
shell leaves them alone). Without arguments the configured input is used.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Int("jobs", 0, "max parallel analyses (0=auto)")
}

func runStats(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 0 {
		return fmt.Errorf("--jobs must be >= 0")
	}
	colored, err := useColor(cmd)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.cleanup()

	paths := []string{s.opts.Input}
	if len(args) > 0 {
		paths, err = expandLogArgs(args)
		if err != nil {
			return err
		}
	}

	results, err := driver.AnalyzeMany(cmd.Context(), paths, s.opts, jobs)
	if err != nil {
		return err
	}

	rows, failed := statsRows(results)
	if err := diagfmt.Stats(cmd.OutOrStdout(), rows, colored); err != nil {
		return err
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

func statsRows(results []driver.ManyResult) ([]diagfmt.StatsRow, int) {
	rows := make([]diagfmt.StatsRow, 0, len(results))
	failed := 0
	for _, r := range results {
		row := diagfmt.StatsRow{Log: r.Path, Err: r.Err}
		if r.Err != nil {
			failed++
			rows = append(rows, row)
			continue
		}
		row.Records = r.Analysis.Plan.Records()
		row.Categories = len(r.Analysis.Plan.Groups)
		row.Numbered = r.Analysis.Plan.Numbered()
		row.Unattributed = r.Analysis.Stats.Unattributed
		rows = append(rows, row)
	}
	return rows, failed
}

// expandLogArgs resolves glob arguments and drops duplicates, keeping
// argument order. Plain paths are passed through even if they do not exist.
func expandLogArgs(args []string) ([]string, error) {
	seen := make(map[string]struct{}, len(args))
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, arg := range args {
		if !hasGlobMeta(arg) {
			add(arg)
			continue
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return nil, fmt.Errorf("invalid glob %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no logs match %q", arg)
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
