// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dwar

import "github.com/etnolekt/dwarconv/pkg/types"

// Plan names the columns whose cells are structure identifiers. Decode
// lists them in table order; Remove lists the originals to drop once
// their decoded counterpart exists. Detection is metadata-driven only:
// a column without recorded metadata is never a candidate.
type Plan struct {
	Decode []string
	Remove []string
}

// PlanDecode matches the table's columns against the declared metadata
// and returns the decode plan.
func PlanDecode(columns []string, props types.ColumnProperties) Plan {
	var plan Plan
	for _, name := range columns {
		meta, ok := props[name]
		if !ok {
			continue
		}
		if meta.IsStructure() {
			plan.Decode = append(plan.Decode, name)
			plan.Remove = append(plan.Remove, name)
		}
	}
	return plan
}
