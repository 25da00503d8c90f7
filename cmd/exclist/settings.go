package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exclist/internal/driver"
)

// reportOptions merges flags, the manifest and the compile-time defaults, in
// that order of precedence.
func reportOptions(cmd *cobra.Command, m *projectManifest) (driver.Options, error) {
	flags := cmd.Root().PersistentFlags()
	input, err := flags.GetString("input")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get input flag: %w", err)
	}
	output, err := flags.GetString("output")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get output flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get timings flag: %w", err)
	}

	opts := driver.Options{
		Input:         input,
		Output:        output,
		EnableTimings: timings,
	}
	if m != nil {
		if opts.Input == "" {
			opts.Input = m.resolve(m.Config.Report.Input)
		}
		if opts.Output == "" {
			opts.Output = m.resolve(m.Config.Report.Output)
		}
		opts.SequenceStart = m.Config.Report.SequenceStart
	}
	if opts.Input == "" {
		opts.Input = driver.DefaultInput
	}
	if opts.Output == "" {
		opts.Output = driver.DefaultOutput
	}
	return opts, nil
}
