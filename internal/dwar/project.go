// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dwar

import "strings"

// coordinatePatterns mark columns holding atom coordinate data, which is
// structural by-product with no tabular value.
var coordinatePatterns = []string{"coordinate", "coord", "atomcoord", "scaffoldatom"}

// fingerprintSuffix marks precomputed fingerprint columns.
const fingerprintSuffix = "Fp"

// structureColumns returns the columns to drop after decoding: the plan's
// originals plus coordinate columns and columns named exactly "Smiles"
// (any case). The result is duplicate-free.
func structureColumns(columns []string, remove []string) []string {
	drop := make(map[string]bool, len(remove))
	for _, name := range remove {
		drop[name] = true
	}

	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, name := range columns {
		lower := strings.ToLower(name)
		switch {
		case drop[name]:
			add(name)
		case lower == "smiles":
			add(name)
		default:
			for _, pat := range coordinatePatterns {
				if strings.Contains(lower, pat) {
					add(name)
					break
				}
			}
		}
	}
	return out
}

// fingerprintColumns returns the columns ending in the fingerprint suffix.
// These are dropped unconditionally, decode outcome notwithstanding.
func fingerprintColumns(columns []string) []string {
	var out []string
	for _, name := range columns {
		if strings.HasSuffix(name, fingerprintSuffix) {
			out = append(out, name)
		}
	}
	return out
}
