// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dwar

import (
	"reflect"
	"strings"
	"testing"

	"github.com/etnolekt/dwarconv/pkg/types"
)

func TestExtractColumnProperties(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  types.ColumnProperties
	}{
		{
			name: "structure column with special type and parent",
			lines: []string{
				"<column properties>",
				`<columnName="Structure">`,
				"<columnProperty=\"specialType\tidcode\">",
				`<columnName="coords">`,
				"<columnProperty=\"specialType\tidcoordinates2D\">",
				"<columnProperty=\"parent\tStructure\">",
				"</column properties>",
			},
			want: types.ColumnProperties{
				"Structure": {Type: "string", SpecialType: "idcode"},
				"coords":    {Type: "string", SpecialType: "idcoordinates2D", Parent: "Structure"},
			},
		},
		{
			name: "no block yields empty map",
			lines: []string{
				`<columnName="Structure">`,
				"<columnProperty=\"specialType\tidcode\">",
			},
			want: types.ColumnProperties{},
		},
		{
			name: "property before any column declaration is ignored",
			lines: []string{
				"<column properties>",
				"<columnProperty=\"specialType\tidcode\">",
				`<columnName="Structure">`,
				"</column properties>",
			},
			want: types.ColumnProperties{
				"Structure": {Type: "string"},
			},
		},
		{
			name: "lines outside the block are ignored",
			lines: []string{
				`<columnName="Before">`,
				"<column properties>",
				`<columnName="Inside">`,
				"</column properties>",
				`<columnName="After">`,
				"<columnProperty=\"specialType\tidcode\">",
			},
			want: types.ColumnProperties{
				"Inside": {Type: "string"},
			},
		},
		{
			name: "redeclared column keeps the last declaration",
			lines: []string{
				"<column properties>",
				`<columnName="Structure">`,
				"<columnProperty=\"specialType\tidcode\">",
				`<columnName="Structure">`,
				"</column properties>",
			},
			want: types.ColumnProperties{
				"Structure": {Type: "string"},
			},
		},
		{
			name: "malformed lines leave attributes untouched",
			lines: []string{
				"<column properties>",
				`<columnName="Structure">`,
				"<columnProperty=\"specialType\tidcode\">",
				`<columnProperty=unquoted>`,
				`<columnName=missing-quotes>`,
				"</column properties>",
			},
			want: types.ColumnProperties{
				"Structure": {Type: "string", SpecialType: "idcode"},
			},
		},
		{
			name:  "empty document",
			lines: nil,
			want:  types.ColumnProperties{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractColumnProperties(strings.Join(tt.lines, "\n"))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestIsDWAR(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"fileinfo marker", "<datawarrior-fileinfo>\nversion 5.1\n", true},
		{"column properties marker", "<column properties>\n</column properties>\n", true},
		{"both markers", "<datawarrior-fileinfo>\n<column properties>\n", true},
		{"plain TSV", "ID\tName\tValue\n1\ta\t2\n", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDWAR(tt.content); got != tt.want {
				t.Errorf("IsDWAR = %v, want %v", got, tt.want)
			}
		})
	}
}
