// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chemreg/internal/resolve"
	"github.com/pdiddy/chemreg/pkg/types"
)

// RunFile is the on-disk representation of one batch run: the input
// names, the configuration that produced the table, the table itself, and
// summary counters. The researcher can keep it next to the CSV as a
// record of where each row came from.
type RunFile struct {
	Names   []string          `yaml:"names"`
	Config  RunFileConfig     `yaml:"config"`
	Rows    []types.OutputRow `yaml:"rows"`
	Summary RunSummary        `yaml:"summary"`
}

// RunFileConfig stores the run configuration in a serializable form.
type RunFileConfig struct {
	Timeout    string `yaml:"timeout"`
	UserAgent  string `yaml:"user_agent"`
	OutputPath string `yaml:"output_path"`
}

// RunSummary stores resolution statistics and a timestamp.
type RunSummary struct {
	Substances  int       `yaml:"substances"`
	Rows        int       `yaml:"rows"`
	ViaPrimary  int       `yaml:"via_primary"`
	ViaFallback int       `yaml:"via_fallback"`
	Unresolved  int       `yaml:"unresolved"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the run report to a YAML file.
func WriteRunFile(path string, names []string, cfg types.ResolveConfig, result resolve.BatchResult) error {
	rf := RunFile{
		Names: names,
		Config: RunFileConfig{
			Timeout:    cfg.Timeout.String(),
			UserAgent:  cfg.UserAgent,
			OutputPath: cfg.OutputPath,
		},
		Rows: result.Rows,
		Summary: RunSummary{
			Substances:  result.Total(),
			Rows:        len(result.Rows),
			ViaPrimary:  result.ViaPrimary,
			ViaFallback: result.ViaFallback,
			Unresolved:  result.Empty,
			Timestamp:   time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run file: %w", err)
	}
	return nil
}

// ReadRunFile loads a previously saved run report.
func ReadRunFile(path string) (RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunFile{}, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return RunFile{}, fmt.Errorf("parsing run file: %w", err)
	}
	return rf, nil
}
