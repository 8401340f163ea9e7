// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dwarconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dwarconv CLI.
var rootCmd = &cobra.Command{
	Use:   "dwarconv",
	Short: "Convert DataWarrior files to CSV with SMILES decoding",
	Long: `dwarconv parses DataWarrior (.dwar) files into tabular records. Structure
identifier columns declared in the document's column-properties block are
resolved to SMILES through an external decoder, and structural by-product
columns (coordinates, fingerprints) are dropped from the output.

Use convert to produce a CSV file and info to inspect a document's
metadata without converting it.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dwarconv.yaml or ~/.config/dwarconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dwarconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dwarconv"))
		}
	}

	viper.SetEnvPrefix("DWARCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setting returns the flag value when set on the command line, then the
// viper config value, then the flag default.
func setting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
