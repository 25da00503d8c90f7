package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"exclist/internal/diagfmt"
	"exclist/internal/driver"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the sorted exception report",
	Long: `Read the diagnostics log, group its diagnostics by category and write the
sorted report. The previous report is only replaced once the new one is
complete.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var successColor = color.New(color.FgGreen)

func init() {
	for _, c := range []*cobra.Command{rootCmd, buildCmd} {
		c.Flags().Bool("diff", false, "print a unified diff against the report being replaced")
	}
}

// session is what every command needs before touching a log: the merged
// options plus a cleanup for the tracer and profilers.
type session struct {
	opts    driver.Options
	cleanup func()
}

func openSession(cmd *cobra.Command) (*session, error) {
	m, err := manifestFor(cmd)
	if err != nil {
		return nil, err
	}
	opts, err := reportOptions(cmd, m)
	if err != nil {
		return nil, err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return nil, err
	}
	stopTracing, err := setupTracing(cmd, m)
	if err != nil {
		stopProfiling()
		return nil, err
	}
	cleanup := func() {
		stopTracing()
		stopProfiling()
	}
	return &session{opts: opts, cleanup: cleanup}, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.cleanup()

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return fmt.Errorf("failed to get diff flag: %w", err)
	}
	s.opts.KeepPrevious = showDiff
	colored, err := useColor(cmd)
	if err != nil {
		return err
	}

	res, err := driver.Build(cmd.Context(), s.opts)
	if err != nil {
		printFailure(cmd.ErrOrStderr(), s.opts.Input, err)
		return errReported
	}

	if res.Timings != nil {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timings.Summary())
	}
	if !quiet {
		printSuccess(cmd.OutOrStdout(), res.Output, colored)
	}
	if showDiff {
		from := res.Output + " (previous)"
		if !res.HadPrevious {
			from = "/dev/null"
		}
		_, err := diagfmt.ReportDiff(cmd.OutOrStdout(), res.Previous, res.Report, diagfmt.DiffOpts{
			FromFile: from,
			ToFile:   res.Output,
			Color:    colored,
		})
		return err
	}
	return nil
}

func printSuccess(out io.Writer, output string, colored bool) {
	msg := "Processed lines written to " + output
	if colored {
		successColor.EnableColor()
		msg = successColor.Sprint(msg)
	}
	fmt.Fprintln(out, msg)
}

// printFailure writes the status line for a failed run.
func printFailure(out io.Writer, input string, err error) {
	if driver.IsInputNotFound(err) {
		fmt.Fprintf(out, "Error: File '%s' not found.\n", input)
		return
	}
	fmt.Fprintf(out, "An error occurred: %v\n", err)
}
