// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dwar

import (
	"reflect"
	"strings"
	"testing"
)

func TestTabHeuristicLocate(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		minFields  int
		wantHeader []string
		wantRows   [][]string
	}{
		{
			name: "header and data after metadata block",
			lines: []string{
				"<column properties>",
				`<columnName="Structure">`,
				"</column properties>",
				"ID\tStructure\tActivity",
				"1\tABC\t5.2",
				"2\tDEF\t6.1",
			},
			wantHeader: []string{"ID", "Structure", "Activity"},
			wantRows: [][]string{
				{"1", "ABC", "5.2"},
				{"2", "DEF", "6.1"},
			},
		},
		{
			name: "settings lines are not data",
			lines: []string{
				"</column properties>",
				"ID\tStructure\tActivity",
				"1\tABC\t5.2",
				"settings=width\t120\theight",
				"2\tDEF\t6.1",
			},
			wantHeader: []string{"ID", "Structure", "Activity"},
			wantRows: [][]string{
				{"1", "ABC", "5.2"},
				{"2", "DEF", "6.1"},
			},
		},
		{
			name: "markup lines after the body are skipped",
			lines: []string{
				"</column properties>",
				"ID\tStructure\tActivity",
				"1\tABC\t5.2",
				"<datawarrior properties>",
				"<axisColumn_2D View_0\t\"ID\">",
				"</datawarrior properties>",
			},
			wantHeader: []string{"ID", "Structure", "Activity"},
			wantRows:   [][]string{{"1", "ABC", "5.2"}},
		},
		{
			name: "no closing sentinel means no header and no rows",
			lines: []string{
				"ID\tStructure\tActivity",
				"1\tABC\t5.2",
			},
			wantHeader: nil,
			wantRows:   nil,
		},
		{
			name: "two-field line is not a header",
			lines: []string{
				"</column properties>",
				"ID\tStructure",
				"1\tABC",
			},
			wantHeader: nil,
			wantRows:   nil,
		},
		{
			name: "two-field header accepted with lower threshold",
			lines: []string{
				"</column properties>",
				"ID\tStructure",
				"1\tABC",
			},
			minFields:  2,
			wantHeader: []string{"ID", "Structure"},
			wantRows:   [][]string{{"1", "ABC"}},
		},
		{
			name: "untabbed lines are never body content",
			lines: []string{
				"</column properties>",
				"some stray comment",
				"ID\tStructure\tActivity",
				"another stray line",
				"1\tABC\t5.2",
			},
			wantHeader: []string{"ID", "Structure", "Activity"},
			wantRows:   [][]string{{"1", "ABC", "5.2"}},
		},
		{
			name: "narrow line before header is not collected as data",
			lines: []string{
				"</column properties>",
				"a\tb",
				"ID\tStructure\tActivity",
				"1\tABC\t5.2",
			},
			wantHeader: []string{"ID", "Structure", "Activity"},
			wantRows:   [][]string{{"1", "ABC", "5.2"}},
		},
		{
			name:       "empty document",
			lines:      nil,
			wantHeader: nil,
			wantRows:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TabHeuristic{MinHeaderFields: tt.minFields}
			header, rows := s.Locate(strings.Join(tt.lines, "\n"))

			if !reflect.DeepEqual(header, tt.wantHeader) {
				t.Errorf("header = %#v, want %#v", header, tt.wantHeader)
			}
			if !reflect.DeepEqual(rows, tt.wantRows) {
				t.Errorf("rows = %#v, want %#v", rows, tt.wantRows)
			}
		})
	}
}
