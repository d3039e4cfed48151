// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litsearch/internal/index"
	"github.com/pdiddy/litsearch/pkg/types"
)

// Configuration defaults. Flags override config-file and environment values.
func init() {
	viper.SetDefault("source.path", "references.json")
	viper.SetDefault("source.key", index.DefaultKey)
	viper.SetDefault("display.max_shown", 30)
	viper.SetDefault("server.port", 8080)
}

// appConfig assembles the validated configuration for a command,
// applying persistent-flag overrides.
func appConfig(cmd *cobra.Command) (types.Config, error) {
	cfg := types.Config{
		Source: types.SourceConfig{
			Path: viper.GetString("source.path"),
			Key:  viper.GetString("source.key"),
		},
		Display: types.DisplayConfig{
			MaxShown: viper.GetInt("display.max_shown"),
		},
		Server: types.ServerConfig{
			Port: viper.GetInt("server.port"),
		},
	}

	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.Source.Path = data
	}
	if key, _ := cmd.Flags().GetString("key"); key != "" {
		cfg.Source.Key = key
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadIndex loads the corpus for a command. Any load failure is fatal to
// the command; there is no partial-index recovery.
func loadIndex(cfg types.Config) (*index.Index, error) {
	ix, err := index.Load(cfg.Source.Path, cfg.Source.Key)
	if err != nil {
		return nil, fmt.Errorf("loading corpus from %s: %w", cfg.Source.Path, err)
	}
	return ix, nil
}
