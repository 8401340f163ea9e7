// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dwar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/etnolekt/dwarconv/pkg/types"
)

// ErrNotDWAR reports that a file carries neither of the DataWarrior
// markers. It is the only parse failure surfaced to the caller.
var ErrNotDWAR = errors.New("not a DataWarrior file")

// smilesSuffix names the decoded counterpart of a structure column.
const smilesSuffix = "_SMILES"

// ColumnResolver resolves one column of structure identifiers into SMILES
// strings. The result has the same length and order as values; an empty
// string means no decoded value is available.
type ColumnResolver interface {
	ResolveColumn(ctx context.Context, values []string) []string
}

// LoadOptions configures one Load call.
type LoadOptions struct {
	// KeepStructureColumns retains the original idcode, coordinate, and
	// Smiles columns instead of dropping them after decode.
	KeepStructureColumns bool

	// Strategy locates the body. Nil means the default TabHeuristic.
	Strategy BodyStrategy

	// Resolver decodes structure columns. Nil skips decoding entirely.
	Resolver ColumnResolver

	// Log receives progress and warning lines. Nil discards them.
	Log io.Writer
}

// Load reads a .dwar file and returns its tabular content, with structure
// identifier columns resolved to <name>_SMILES counterparts. A document
// with no locatable data rows yields an empty table, not an error.
func Load(ctx context.Context, path string, opts LoadOptions) (*types.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	table, err := LoadContent(ctx, string(data), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadContent parses raw document text. See Load.
func LoadContent(ctx context.Context, content string, opts LoadOptions) (*types.Table, error) {
	log := opts.Log
	if log == nil {
		log = io.Discard
	}

	if !IsDWAR(content) {
		return nil, ErrNotDWAR
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = TabHeuristic{}
	}

	header, rows := strategy.Locate(content)
	if len(rows) == 0 {
		fmt.Fprintln(log, "warning: no data rows found")
		return &types.Table{}, nil
	}

	props := ExtractColumnProperties(content)
	table := assembleTable(header, rows)
	fmt.Fprintf(log, "loaded %d rows, %d columns\n", table.RowCount(), table.Width())

	plan := PlanDecode(table.Columns, props)
	decodeStructures(ctx, table, plan, opts.Resolver, log)

	if !opts.KeepStructureColumns {
		if drop := structureColumns(table.Columns, plan.Remove); len(drop) > 0 {
			fmt.Fprintf(log, "dropping structure columns: %s\n", strings.Join(drop, ", "))
			table.DropColumns(drop)
		}
	}

	// Fingerprint columns never survive, decoded or not.
	if fp := fingerprintColumns(table.Columns); len(fp) > 0 {
		fmt.Fprintf(log, "dropping fingerprint columns: %s\n", strings.Join(fp, ", "))
		table.DropColumns(fp)
	}

	return table, nil
}

// decodeStructures adds a <name>_SMILES column beside every planned
// structure column. Decode failures leave empty cells; they never abort
// the load.
func decodeStructures(ctx context.Context, table *types.Table, plan Plan, resolver ColumnResolver, log io.Writer) {
	if len(plan.Decode) == 0 {
		fmt.Fprintln(log, "no structure columns to decode")
		return
	}
	if resolver == nil {
		fmt.Fprintf(log, "warning: no decoder configured, leaving %d structure column(s) unresolved\n", len(plan.Decode))
		return
	}

	for _, name := range plan.Decode {
		values := table.Column(name)
		smiles := resolver.ResolveColumn(ctx, values)

		decoded := 0
		for _, s := range smiles {
			if s != "" {
				decoded++
			}
		}
		fmt.Fprintf(log, "decoded %d/%d structures in column %s\n", decoded, countNonBlank(values), name)

		table.AddColumn(name+smilesSuffix, smiles)
	}
}

func countNonBlank(values []string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

var (
	versionRe = regexp.MustCompile(`version\s+(\S+)`)
	createdRe = regexp.MustCompile(`created\s+(.+)`)
)

// GetInfo extracts document-level metadata without assembling the table:
// version and creation date by pattern search, row count from the body
// locator, and the declared column properties.
func GetInfo(path string) (*types.FileInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	info := &types.FileInfo{Columns: ExtractColumnProperties(content)}

	if m := versionRe.FindStringSubmatch(content); m != nil {
		info.Version = m[1]
	}
	if m := createdRe.FindStringSubmatch(content); m != nil {
		info.Created = strings.TrimSpace(m[1])
	}

	_, rows := TabHeuristic{}.Locate(content)
	info.RowCount = len(rows)

	return info, nil
}
