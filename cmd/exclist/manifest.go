package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"exclist/internal/trace"
)

const manifestName = "exclist.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Report reportConfig `toml:"report"`
	Trace  traceConfig  `toml:"trace"`
}

type reportConfig struct {
	Input         string `toml:"input"`
	Output        string `toml:"output"`
	SequenceStart int    `toml:"sequence_start"`
}

type traceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(path string) (*projectManifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	cfg, err := loadProjectConfig(abs)
	if err != nil {
		return nil, err
	}
	return &projectManifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return projectConfig{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("report", "input") && strings.TrimSpace(cfg.Report.Input) == "" {
		return projectConfig{}, fmt.Errorf("%s: [report].input is empty", path)
	}
	if meta.IsDefined("report", "output") && strings.TrimSpace(cfg.Report.Output) == "" {
		return projectConfig{}, fmt.Errorf("%s: [report].output is empty", path)
	}
	if meta.IsDefined("report", "sequence_start") && cfg.Report.SequenceStart <= 0 {
		return projectConfig{}, fmt.Errorf("%s: [report].sequence_start must be positive", path)
	}
	if meta.IsDefined("trace", "level") {
		if _, err := trace.ParseLevel(cfg.Trace.Level); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [trace].level: %w", path, err)
		}
	}
	if meta.IsDefined("trace", "format") {
		if _, err := trace.ParseFormat(cfg.Trace.Format); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [trace].format: %w", path, err)
		}
	}
	return cfg, nil
}

// resolve makes a manifest-relative path absolute. Empty stays empty.
func (m *projectManifest) resolve(p string) string {
	p = strings.TrimSpace(p)
	if m == nil || p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, filepath.FromSlash(p))
}

// manifestFor loads the manifest named by --config, or the nearest
// exclist.toml above the working directory. A missing manifest is not an error.
func manifestFor(cmd *cobra.Command) (*projectManifest, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return loadManifest(path)
	}
	path, ok, err := findManifest(".")
	if err != nil || !ok {
		return nil, err
	}
	return loadManifest(path)
}
