// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package cli provides the Cobra command structure for jlazy.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/creachadair/jlazy/internal/config"
	"github.com/creachadair/jlazy/internal/logging"
	"github.com/creachadair/jlazy/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globals holds the settings shared by all subcommands, resolved from the
// configuration file, the environment, and the global flags.
type globals struct {
	debug      bool
	configPath string
	color      string
	hujson     bool

	cfg    *config.Config
	styles *pretty.Styles
}

// NewRootCommand creates the root jlazy command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	g := new(globals)

	rootCmd := &cobra.Command{
		Use:   "jlazy",
		Short: "Inspect large JSON documents without decoding them",
		Long: `jlazy indexes the text of a JSON document lazily, scanning only the
containers needed to answer each request. Use it to examine the shape of a
document, page through its keys and elements, and extract single values.

Paths are written in a small subset of JSONPath, for example
  $.episodes[0].airDate
  $["key with spaces"][-1]`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&g.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&g.hujson, "hujson", false,
		"accept comments and trailing commas in the input")

	rootCmd.AddCommand(newInfoCommand(g))
	rootCmd.AddCommand(newKeysCommand(g))
	rootCmd.AddCommand(newLsCommand(g))
	rootCmd.AddCommand(newGetCommand(g))
	rootCmd.AddCommand(newPathsCommand(g))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// setup loads the configuration and applies the global flags over it. Flags
// given explicitly take precedence over the file and the environment.
func (g *globals) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = g.color
	}
	if flags.Changed("hujson") {
		cfg.HuJSON = g.hujson
	}
	if g.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	if path != "" {
		logger.Debug("loaded config", logging.FieldConfig, path)
	}

	g.cfg = cfg
	g.styles = pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.OutOrStdout()))
	return nil
}
