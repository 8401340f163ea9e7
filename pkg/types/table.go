// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model: tables, column metadata,
// file info, and stage configuration.
package types

// Table is an ordered set of string rows with one name per column position.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Columns)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no data rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the positional index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the cell values of the named column in row order.
// An unknown name yields nil.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// AddColumn appends a column with the given values. Missing values pad
// with the empty string; extra values are dropped.
func (t *Table) AddColumn(name string, values []string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		t.Rows[i] = append(t.Rows[i], v)
	}
}

// DropColumns removes the named columns from the table. Names not present
// are ignored; duplicate names collapse.
func (t *Table) DropColumns(names []string) {
	if len(names) == 0 {
		return
	}
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	keep := make([]int, 0, len(t.Columns))
	for i, c := range t.Columns {
		if !drop[c] {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(t.Columns) {
		return
	}

	columns := make([]string, len(keep))
	for i, idx := range keep {
		columns[i] = t.Columns[idx]
	}
	t.Columns = columns

	for r, row := range t.Rows {
		next := make([]string, len(keep))
		for i, idx := range keep {
			next[i] = row[idx]
		}
		t.Rows[r] = next
	}
}
