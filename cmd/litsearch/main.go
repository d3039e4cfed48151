// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litsearch CLI: an interactive
// literature-search tool over a local bibliographic JSON corpus. Each
// surface is a subcommand: search runs one query, export writes a
// saved-records document, serve hosts per-session state over HTTP.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the litsearch CLI.
var rootCmd = &cobra.Command{
	Use:   "litsearch",
	Short: "Keyword search over a local bibliographic corpus",
	Long: `litsearch loads a JSON document of bibliographic records and filters it
by free-text keyword match, year range, and DOI presence. Records can be
marked as saved and exported back out in the source document's shape.

The corpus is read once per invocation and never modified. Saved state is
session-scoped: the serve command keeps one independent session per client,
and the export command builds its save set from explicit ids.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litsearch.yaml or ~/.config/litsearch/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "path to the bibliographic source document")
	rootCmd.PersistentFlags().String("key", "", "top-level field holding the record array")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litsearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litsearch"))
		}
	}

	viper.SetEnvPrefix("LITSEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
