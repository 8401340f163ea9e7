// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/etnolekt/dwarconv/internal/cache"
	"github.com/etnolekt/dwarconv/internal/decode"
	"github.com/etnolekt/dwarconv/internal/dwar"
	"github.com/etnolekt/dwarconv/internal/export"
	"github.com/etnolekt/dwarconv/internal/noderun"
	"github.com/etnolekt/dwarconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.dwar>",
	Short: "Convert a DataWarrior file to CSV",
	Long: `Convert parses a .dwar file, resolves structure identifier columns to
SMILES through the configured decode backend, drops structural by-product
columns, and writes the result as CSV.

The node backend runs the bundled decode script locally; the http backend
posts batches to a decoder service. Successful decodes are cached in a
SQLite database so repeated conversions skip the external call.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output CSV path (default: input with .csv extension)")
	convertCmd.Flags().Bool("keep-structures", false, "keep original structure columns in the output")
	convertCmd.Flags().String("backend", "node", "decode backend: node, http, or none")
	convertCmd.Flags().String("script", "decode.mjs", "decode script for the node backend")
	convertCmd.Flags().String("service-url", "", "decoder service endpoint for the http backend")
	convertCmd.Flags().Duration("timeout", types.DefaultDecodeTimeout, "timeout per decode batch")
	convertCmd.Flags().Bool("no-cache", false, "disable the decode result cache")
	convertCmd.Flags().String("cache-path", "", "decode cache database (default: user cache dir)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file %s: %w", input, err)
	}

	keep, _ := cmd.Flags().GetBool("keep-structures")

	resolver, cleanup, err := buildResolver(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	table, err := dwar.Load(context.Background(), input, dwar.LoadOptions{
		KeepStructureColumns: keep,
		Resolver:             resolver,
		Log:                  os.Stderr,
	})
	if err != nil {
		return err
	}

	// An empty result is a distinct failure from an unreadable file.
	if table.IsEmpty() {
		return fmt.Errorf("no data found in %s", input)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
	}

	if err := export.WriteCSVFile(output, table); err != nil {
		return err
	}

	fmt.Printf("Successfully converted %d rows to %s\n", table.RowCount(), output)
	return nil
}

// buildResolver assembles the decode resolver from flags and config. The
// returned cleanup releases the cache connection, if any.
func buildResolver(cmd *cobra.Command) (dwar.ColumnResolver, func(), error) {
	cleanup := func() {}

	backend := types.DecodeBackend(setting(cmd, "backend", "decode.backend"))

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if !cmd.Flags().Changed("timeout") && viper.IsSet("decode.timeout") {
		timeout = viper.GetDuration("decode.timeout")
	}

	var b decode.Backend
	switch backend {
	case types.BackendNone:
		return nil, cleanup, nil

	case types.BackendNode:
		rt, err := noderun.Detect()
		if err != nil {
			return nil, cleanup, err
		}
		nb, err := decode.NewNodeBackend(rt, setting(cmd, "script", "decode.script_path"), timeout)
		if err != nil {
			return nil, cleanup, err
		}
		b = nb

	case types.BackendHTTP:
		url := setting(cmd, "service-url", "decode.service_url")
		if url == "" {
			return nil, cleanup, fmt.Errorf("http backend requires --service-url or decode.service_url")
		}
		b = &decode.HTTPBackend{
			URL:       url,
			Client:    &http.Client{Timeout: timeout},
			UserAgent: "dwarconv/" + version,
		}

	default:
		return nil, cleanup, fmt.Errorf("unknown decode backend %q: use node, http, or none", backend)
	}

	resolver := &decode.Resolver{Backend: b, Log: os.Stderr}

	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		path := setting(cmd, "cache-path", "cache.path")
		if path == "" {
			path = defaultCachePath()
		}
		if path != "" {
			store, err := cache.Open(path)
			if err != nil {
				// A broken cache degrades to uncached operation.
				fmt.Fprintf(os.Stderr, "warning: decode cache unavailable: %v\n", err)
			} else {
				resolver.Cache = store
				cleanup = func() { store.Close() }
			}
		}
	}

	return resolver, cleanup, nil
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dwarconv", "decodes.db")
}
