// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/etnolekt/dwarconv/internal/dwar"
	"github.com/etnolekt/dwarconv/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info <input.dwar>",
	Short: "Show DataWarrior file metadata without converting",
	Long: `Info extracts document-level metadata: format version, creation date,
data row count, and the declared column properties. No table is built and
no decoding is performed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	input := args[0]
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file %s: %w", input, err)
	}

	info, err := dwar.GetInfo(input)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "":
		printInfoText(input, info)
		return nil
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		os.Stdout.Write(data)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

func printInfoText(input string, info *types.FileInfo) {
	fmt.Printf("File:    %s\n", input)
	if info.Version != "" {
		fmt.Printf("Version: %s\n", info.Version)
	}
	if info.Created != "" {
		fmt.Printf("Created: %s\n", info.Created)
	}
	fmt.Printf("Rows:    %d\n", info.RowCount)
	fmt.Printf("Columns: %d\n", len(info.Columns))

	if structures := info.StructureColumns(); len(structures) > 0 {
		fmt.Printf("Structure columns: %s\n", strings.Join(structures, ", "))
	}

	names := make([]string, 0, len(info.Columns))
	for name := range info.Columns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		meta := info.Columns[name]
		line := "  " + name
		if meta.SpecialType != "" {
			line += " (specialType=" + meta.SpecialType + ")"
		}
		if meta.Parent != "" {
			line += " (parent=" + meta.Parent + ")"
		}
		fmt.Println(line)
	}
}
