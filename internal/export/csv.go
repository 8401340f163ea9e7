// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes converted tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/etnolekt/dwarconv/pkg/types"
)

// WriteCSV writes the table to w: column names first, then data rows.
func WriteCSV(w io.Writer, t *types.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to a file at path.
func WriteCSVFile(path string, t *types.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
