package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chemreg/internal/export"
	"github.com/pdiddy/chemreg/internal/httputil"
	"github.com/pdiddy/chemreg/internal/resolve"
	"github.com/pdiddy/chemreg/internal/store"
	"github.com/pdiddy/chemreg/pkg/types"
)

const (
	defaultTimeout = 30 * time.Second
	defaultOutput  = "substances.csv"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [substance names...]",
	Short: "Resolve substance names to CAS numbers and synonyms",
	Long: `Resolve queries PubChem for each substance name; names PubChem cannot
identify fall back to the Wikipedia article infobox. One output row is
written per (substance, synonym) pair. Substances neither source can
resolve contribute no rows and never fail the run.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("input", "", "file of substance names, one per line ('#' comments skipped)")
	resolveCmd.Flags().String("output", defaultOutput, "destination CSV file")
	resolveCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	resolveCmd.Flags().String("save", "", "also save a YAML run report to this path")
	resolveCmd.Flags().String("db", "", "also record the run in this SQLite archive")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	names := args
	if inputPath, _ := cmd.Flags().GetString("input"); inputPath != "" {
		fromFile, err := readNames(inputPath)
		if err != nil {
			return err
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return fmt.Errorf("provide one or more substance names (as arguments or via --input)")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	output, _ := cmd.Flags().GetString("output")
	savePath, _ := cmd.Flags().GetString("save")
	dbPath, _ := cmd.Flags().GetString("db")

	cfg := types.ResolveConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent(),
		},
		OutputPath:  output,
		ReportPath:  savePath,
		ArchivePath: dbPath,
	}

	client := httputil.NewClient(cfg.HTTPConfig)
	primary := &resolve.PubChemResolver{Client: client}
	fallback := &resolve.WikipediaResolver{Client: client}

	startedAt := time.Now()
	result := resolve.ResolveBatch(cmd.Context(), primary, fallback, names, os.Stdout)

	if err := export.WriteCSV(result.Rows, cfg.OutputPath); err != nil {
		return err
	}
	fmt.Printf("Results saved to %s\n", cfg.OutputPath)

	if cfg.ReportPath != "" {
		if err := export.WriteRunFile(cfg.ReportPath, names, cfg, result); err != nil {
			return err
		}
		fmt.Printf("Run report saved to %s\n", cfg.ReportPath)
	}

	if cfg.ArchivePath != "" {
		s, err := store.Open(types.StoreConfig{ArchivePath: cfg.ArchivePath})
		if err != nil {
			return err
		}
		defer s.Close()
		if _, err := s.RecordRun(startedAt, result.Total(), result.Rows); err != nil {
			return err
		}
		fmt.Printf("Run recorded in %s\n", cfg.ArchivePath)
	}

	// Resolution failures are sentinel data, not errors: the run exits
	// zero even when every name came back empty.
	return nil
}

// readNames loads substance names from a file, one per line. Blank lines
// and lines starting with '#' are skipped.
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return names, nil
}
