// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decode resolves batches of structure identifiers (idcodes) into
// SMILES notation through an external decoder. Different backends (local
// node script, remote HTTP service) implement the Backend interface.
package decode

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Backend submits one batch of idcodes to an external decoder and returns
// its raw line-oriented output. Each output line has the shape
// "<index>:<result>" where index addresses the submitted batch and a
// result starting with "ERROR:" is a per-item failure.
type Backend interface {
	// Name identifies the backend for diagnostics.
	Name() string

	// Decode runs one batch. The batch is never empty.
	Decode(ctx context.Context, idcodes []string) (string, error)
}

// Cache memoizes successful decodes across runs. Implementations must
// treat misses as absent map entries, not errors.
type Cache interface {
	// Lookup returns the cached SMILES for any of the given idcodes.
	Lookup(ctx context.Context, idcodes []string) (map[string]string, error)

	// Put records successful decodes.
	Put(ctx context.Context, decoded map[string]string) error
}

// errorPrefix marks a per-item decode failure in backend output.
const errorPrefix = "ERROR:"

// Resolver turns idcode column values into SMILES strings, consulting an
// optional cache before calling the backend. All failures degrade to
// absent results; a Resolver never returns an error.
type Resolver struct {
	Backend Backend

	// Cache is optional. Cache errors degrade to uncached operation.
	Cache Cache

	// Log receives warning lines. Nil discards them.
	Log io.Writer
}

// ResolveColumn decodes one column's cell values. The result has the same
// length and order as values; an empty string means no decoded value.
// Blank values are never submitted, duplicates are submitted once, and a
// successful decode is assigned to every original position holding that
// identifier. An all-blank column returns without any external call.
func (r *Resolver) ResolveColumn(ctx context.Context, values []string) []string {
	out := make([]string, len(values))
	log := r.Log
	if log == nil {
		log = io.Discard
	}

	// Batch order is first occurrence; the multimap remembers every
	// original position per identifier so duplicates share one decode.
	var batch []string
	positions := make(map[string][]int)
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, seen := positions[v]; !seen {
			batch = append(batch, v)
		}
		positions[v] = append(positions[v], i)
	}
	if len(batch) == 0 {
		return out
	}

	assign := func(decoded map[string]string) {
		for idcode, smiles := range decoded {
			for _, i := range positions[idcode] {
				out[i] = smiles
			}
		}
	}

	pending := batch
	if r.Cache != nil {
		hits, err := r.Cache.Lookup(ctx, batch)
		switch {
		case err != nil:
			fmt.Fprintf(log, "warning: decode cache lookup failed: %v\n", err)
		case len(hits) > 0:
			assign(hits)
			var miss []string
			for _, idcode := range batch {
				if _, ok := hits[idcode]; !ok {
					miss = append(miss, idcode)
				}
			}
			pending = miss
		}
	}
	if len(pending) == 0 {
		return out
	}

	raw, err := r.Backend.Decode(ctx, pending)
	if err != nil {
		fmt.Fprintf(log, "warning: %s decode failed: %v\n", r.Backend.Name(), err)
		return out
	}

	decoded := ParseBatchOutput(raw, pending)
	assign(decoded)

	if r.Cache != nil && len(decoded) > 0 {
		if err := r.Cache.Put(ctx, decoded); err != nil {
			fmt.Fprintf(log, "warning: decode cache store failed: %v\n", err)
		}
	}

	return out
}

// ParseBatchOutput maps the backend's "<index>:<result>" lines back onto
// the submitted batch. Lines without a colon, indexes outside the batch,
// and ERROR results are skipped. Line order is not significant; results
// are position-addressed.
func ParseBatchOutput(raw string, batch []string) map[string]string {
	decoded := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		idxStr, result, ok := strings.Cut(line, ":")
		if !ok || strings.HasPrefix(result, errorPrefix) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
		if err != nil || idx < 0 || idx >= len(batch) {
			continue
		}
		decoded[batch[idx]] = result
	}
	return decoded
}
