package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"exclist/internal/version"
)

// buildMetadata is the JSON shape of `exclist version --format json`.
// Optional fields stay empty unless their flag asked for them.
type buildMetadata struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show exclist build metadata",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("message", false, "include git commit message")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "show all build metadata")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	want := map[string]bool{}
	for _, name := range []string{"hash", "message", "date", "full"} {
		on, err := cmd.Flags().GetBool(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		want[name] = on
	}
	full := want["full"]

	meta := buildMetadata{Tool: "exclist", Version: orDefault(version.Version, "dev")}
	if want["hash"] || full {
		meta.GitCommit = orDefault(version.GitCommit, "unknown")
	}
	if want["message"] || full {
		meta.GitMessage = orDefault(version.GitMessage, "unknown")
	}
	if want["date"] || full {
		meta.BuildDate = orDefault(version.BuildDate, "unknown")
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}
	colored, err := useColor(cmd)
	if err != nil {
		return err
	}
	writeVersionPretty(out, meta, colored)
	return nil
}

func writeVersionPretty(w io.Writer, meta buildMetadata, colored bool) {
	v := meta.Version
	if colored {
		v = version.Colored(v)
	}
	fmt.Fprintf(w, "%s %s\n", meta.Tool, v)
	for _, row := range [...]struct{ label, value string }{
		{"commit:", meta.GitCommit},
		{"message:", meta.GitMessage},
		{"built:", meta.BuildDate},
	} {
		if row.value != "" {
			fmt.Fprintf(w, "%-8s %s\n", row.label, row.value)
		}
	}
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}
