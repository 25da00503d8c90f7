package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"exclist/internal/driver"
	"exclist/internal/version"
)

// errReported means the command already printed its own status line.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "exclist",
	Short: "Sort a diagnostics log into a numbered exception report",
	Long: `exclist reads a compiler/linter diagnostics log, groups the diagnostics by
error category and writes a sorted report in which duplicate categories carry
stable (mNNk) identifiers. Without a subcommand it runs "build".`,
	Args:          cobra.NoArgs,
	RunE:          runBuild,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to exclist.toml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().String("input", "", "diagnostics log to read (default "+driver.DefaultInput+")")
	rootCmd.PersistentFlags().String("output", "", "report file to write (default "+driver.DefaultOutput+")")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
}

// main executes the root command. Any error exits with status 1.
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
