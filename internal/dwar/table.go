// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dwar

import (
	"fmt"

	"github.com/etnolekt/dwarconv/pkg/types"
)

// assembleTable builds a Table from the located header and data rows.
// Row width is the widest row; shorter rows pad with empty cells, since
// the format carries no column count. Header names apply only when the
// header width matches the row width; otherwise names are synthesized as
// Column_0..Column_{n-1}. Rows empty across all cells are dropped.
func assembleTable(header []string, rows [][]string) *types.Table {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]string, width)
	if header != nil && len(header) == width {
		copy(columns, header)
	} else {
		for i := range columns {
			columns[i] = fmt.Sprintf("Column_%d", i)
		}
	}

	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		if allEmpty(cells) {
			continue
		}
		kept = append(kept, cells)
	}

	return &types.Table{Columns: columns, Rows: kept}
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
