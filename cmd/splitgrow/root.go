package main

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitgrow/catalog"
	"github.com/katalvlaran/splitgrow/common"
	"github.com/katalvlaran/splitgrow/config"
)

// app carries the state shared by every subcommand: global flags and the
// configuration resolved from them.
type app struct {
	ctx context.Context
	out io.Writer
	cfg config.Config

	configPath  string
	catalogPath string
	verbose     bool
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) error {
	rootCmd := newRootCmd(ctx, os.Stdout)
	rootCmd.Version = version

	return rootCmd.Execute()
}

func newRootCmd(ctx context.Context, out io.Writer) *cobra.Command {
	a := &app{ctx: ctx, out: out, cfg: config.Default()}
	rootCmd := &cobra.Command{
		Use:               "splitgrow",
		Short:             "Generate and solve split/grow grid-tree puzzles",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newSolveCmd(a),
		newVerifyCmd(a),
		newCatalogCmd(a),
	)

	return rootCmd
}

// setup loads the config, applies flag overrides and attaches a logger to
// the app context.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.catalogPath != "" {
		a.cfg.Catalog.Path = a.catalogPath
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(a.cfg.LogLevel())
	if a.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	a.ctx = common.WithLogger(a.ctx, logger)

	return nil
}

// openCatalog opens the configured catalog. An unset path yields an
// in-memory catalog, which only lives for the current command.
func (a *app) openCatalog() (*catalog.Catalog, error) {
	if a.cfg.Catalog.Path == "" {
		common.Logger(a.ctx).Warn("no catalog path configured, using an in-memory catalog")
	}

	return catalog.Open(catalog.Options{Path: a.cfg.Catalog.Path})
}
