// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dwar parses DataWarrior (.dwar) documents: a tab-separated body
// annotated with an XML-like column-properties block. The format carries no
// row or column counts, so the body boundaries are recovered heuristically.
package dwar

import (
	"regexp"
	"strings"

	"github.com/etnolekt/dwarconv/pkg/types"
)

const (
	columnPropsOpen  = "<column properties>"
	columnPropsClose = "</column properties>"
	fileInfoMarker   = "<datawarrior-fileinfo>"

	defaultColumnType = "string"
)

var (
	columnNameRe = regexp.MustCompile(`<columnName="([^"]+)">`)
	columnPropRe = regexp.MustCompile(`<columnProperty="([^"]+)">`)
)

// IsDWAR reports whether content carries either of the two file markers
// that identify a DataWarrior document.
func IsDWAR(content string) bool {
	return strings.Contains(content, fileInfoMarker) ||
		strings.Contains(content, columnPropsOpen)
}

// ExtractColumnProperties reads the column-properties block and returns
// the declared metadata per column. Lines outside the block are ignored,
// as are property lines that precede any column declaration or fail their
// expected pattern. A document without the block yields an empty map.
// When a column name is declared twice, the later declaration wins.
func ExtractColumnProperties(content string) types.ColumnProperties {
	props := types.ColumnProperties{}

	inBlock := false
	current := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch line {
		case columnPropsOpen:
			inBlock = true
			continue
		case columnPropsClose:
			inBlock = false
			continue
		}
		if !inBlock {
			continue
		}

		if strings.HasPrefix(line, "<columnName=") {
			if m := columnNameRe.FindStringSubmatch(line); m != nil {
				current = m[1]
				props[current] = types.ColumnMeta{Type: defaultColumnType}
			}
			continue
		}

		if strings.HasPrefix(line, "<columnProperty=") && current != "" {
			m := columnPropRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			prop := m[1]
			meta := props[current]
			if idx := strings.Index(prop, "specialType"); idx >= 0 {
				meta.SpecialType = strings.TrimSpace(prop[idx+len("specialType"):])
			} else if idx := strings.Index(prop, "parent"); idx >= 0 {
				meta.Parent = strings.TrimSpace(prop[idx+len("parent"):])
			}
			props[current] = meta
		}
	}

	return props
}
