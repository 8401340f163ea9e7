// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dwar

import "strings"

// BodyStrategy locates the header row and the ordered data rows inside raw
// document text. The default TabHeuristic can be swapped for a stricter
// grammar without touching the rest of the pipeline.
type BodyStrategy interface {
	// Locate returns the header fields (nil when no qualifying line was
	// found) and the data rows, each already split on tab.
	Locate(content string) (header []string, rows [][]string)
}

// TabHeuristic recovers the body by shape: the header is the first
// non-markup, tab-delimited line with at least MinHeaderFields fields after
// the column-properties block closes; every later non-markup tabbed line
// that is not a settings line is a data row. Without a recognized header
// the body cannot be segmented and no rows are returned.
type TabHeuristic struct {
	// MinHeaderFields is the minimum field count for a header candidate.
	// Zero means the default of 3.
	MinHeaderFields int
}

const settingsPrefix = "settings="

// Locate implements BodyStrategy.
func (s TabHeuristic) Locate(content string) ([]string, [][]string) {
	minFields := s.MinHeaderFields
	if minFields <= 0 {
		minFields = 3
	}

	var (
		header []string
		rows   [][]string

		metadataClosed bool
		headerFound    bool
	)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		// Sentinel lines toggle state but are never body content.
		if strings.Contains(line, columnPropsOpen) {
			continue
		}
		if strings.Contains(line, columnPropsClose) {
			metadataClosed = true
			continue
		}

		if line == "" || !strings.Contains(line, "\t") {
			continue
		}
		if strings.HasPrefix(line, "<") || strings.HasPrefix(line, ">") {
			continue
		}

		if metadataClosed && !headerFound {
			if parts := strings.Split(line, "\t"); len(parts) >= minFields {
				header = parts
				headerFound = true
				continue
			}
		}

		if headerFound && !strings.HasPrefix(line, settingsPrefix) {
			rows = append(rows, strings.Split(line, "\t"))
		}
	}

	return header, rows
}
