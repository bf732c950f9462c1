// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes resolved result tables to disk: the CSV table
// itself and an optional YAML run report.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/chemreg/pkg/types"
)

// csvHeader is the fixed column order of the output table.
var csvHeader = []string{"Substance Name", "CAS Number", "Synonym", "Compound Source", "Synonym Source"}

// WriteCSV writes the result table to path: one header row, then one
// record per output row. The file is written to a temporary file in the
// destination directory and renamed into place, so an existing file is
// replaced atomically. Two runs over identical data produce byte-identical
// files.
func WriteCSV(rows []types.OutputRow, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".export-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	w := csv.NewWriter(tmpFile)
	writeErr := w.Write(csvHeader)
	for _, row := range rows {
		if writeErr != nil {
			break
		}
		writeErr = w.Write([]string{row.Substance, row.CAS, row.Synonym, row.CompoundSource, row.SynonymSource})
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing CSV: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
