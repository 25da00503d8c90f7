package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"exclist/internal/driver"
	"exclist/internal/order"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default exclist.toml",
	Long: `Create an exclist.toml in dir (default: the current directory) naming the
default input log, report file and trace level. The directory is created if
needed; an existing manifest is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, manifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(defaultManifest()), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", manifestPath)
	return nil
}

// defaultManifest spells out the built-in defaults so they can be edited.
func defaultManifest() string {
	return `# exclist configuration
[report]
input = ` + strconv.Quote(driver.DefaultInput) + `
output = ` + strconv.Quote(driver.DefaultOutput) + `
sequence_start = ` + strconv.Itoa(order.DefaultSequenceStart) + `

[trace]
level = "off"
`
}
