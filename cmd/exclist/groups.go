package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"exclist/internal/diagfmt"
	"exclist/internal/driver"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [log]",
	Short: "Show how a log would be grouped and numbered",
	Long: `Analyse a diagnostics log and print the ordering plan without writing the
report. Formats: pretty (default), json, yaml, short, or report (the exact report
bytes on stdout).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|short|report)")
	groupsCmd.Flags().Bool("entries", false, "list every entry under its group (pretty) or include entries (json, yaml)")
	groupsCmd.Flags().Bool("lines", false, "include log line numbers of entries (json, yaml)")
	groupsCmd.Flags().String("path-mode", "absolute", "display paths as absolute|relative|basename (pretty)")
	groupsCmd.Flags().Int("width", 0, "maximum category column width (pretty, 0 = unlimited)")
}

func runGroups(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	entries, err := cmd.Flags().GetBool("entries")
	if err != nil {
		return fmt.Errorf("failed to get entries flag: %w", err)
	}
	lines, err := cmd.Flags().GetBool("lines")
	if err != nil {
		return fmt.Errorf("failed to get lines flag: %w", err)
	}
	pathModeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "pretty", "json", "yaml", "short", "report":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json, yaml, short or report)", format)
	}
	pathMode, ok := diagfmt.ParsePathMode(pathModeStr)
	if !ok {
		return fmt.Errorf("invalid --path-mode value %q (expected absolute|relative|basename)", pathModeStr)
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

	input := s.opts.Input
	if len(args) == 1 {
		input = args[0]
	}

	a, err := driver.Analyze(cmd.Context(), input, s.opts)
	if err != nil {
		printFailure(cmd.ErrOrStderr(), input, err)
		return errReported
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.JSON(out, a.Plan, diagfmt.JSONOpts{IncludeEntries: entries, IncludeLines: lines})
	case "yaml":
		return diagfmt.YAML(out, a.Plan, diagfmt.JSONOpts{IncludeEntries: entries, IncludeLines: lines})
	case "short":
		return diagfmt.Short(out, a.Plan)
	case "report":
		return diagfmt.Report(out, a.Plan)
	default:
		baseDir, _ := os.Getwd()
		return diagfmt.Pretty(out, a.Plan, diagfmt.PrettyOpts{
			Color:    colored,
			PathMode: pathMode,
			BaseDir:  baseDir,
			Entries:  entries,
			Width:    width,
		})
	}
}
