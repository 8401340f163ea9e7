// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"sort"
	"strings"
)

// SpecialTypeIDCode marks a column whose cells hold encoded chemical
// structure identifiers that can be decoded into SMILES.
const SpecialTypeIDCode = "idcode"

// ColumnMeta holds the typing attributes declared for one column in the
// document's column-properties block.
type ColumnMeta struct {
	// Type is the declared value type. Defaults to "string".
	Type string `json:"type" yaml:"type"`

	// SpecialType identifies non-plain columns, e.g. "idcode" for
	// structure identifiers or "idcoordinates2D" for atom coordinates.
	SpecialType string `json:"special_type,omitempty" yaml:"special_type,omitempty"`

	// Parent names the column this one is derived from, e.g. a
	// coordinate column's parent is its structure column.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// IsStructure reports whether the column holds structure identifiers.
func (m ColumnMeta) IsStructure() bool {
	return strings.EqualFold(m.SpecialType, SpecialTypeIDCode)
}

// ColumnProperties maps column names to their declared metadata. A name
// appears at most once; a redeclaration in the source overwrites the
// earlier entry.
type ColumnProperties map[string]ColumnMeta

// FileInfo holds document-level metadata extracted without building the
// full table.
type FileInfo struct {
	Version  string           `json:"version,omitempty" yaml:"version,omitempty"`
	Created  string           `json:"created,omitempty" yaml:"created,omitempty"`
	RowCount int              `json:"rowcount" yaml:"rowcount"`
	Columns  ColumnProperties `json:"columns" yaml:"columns"`
}

// StructureColumns returns the names of columns declared as structure
// identifiers, sorted for stable output.
func (i *FileInfo) StructureColumns() []string {
	var names []string
	for name, meta := range i.Columns {
		if meta.IsStructure() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
