// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/wbe/internal/logging"
	"github.com/katalvlaran/wbe/schema"
)

var (
	errNoSchema   = errors.New("wbe: no schema: set --schema or schema in the config file")
	errNoGenotype = errors.New("wbe: no genotype: set --genotype or --seed")
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	out io.Writer

	configPath string
	cfg        Config
	logger     *slog.Logger

	// flag values; applied over cfg only when set on the command line
	logLevel  string
	logFormat string
	schema    string
	level     int
	family    string
	order     int
	theta     []float64
	workers   int
	lenient   bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:          "wbe",
		Short:        "Wavelet-based genotype to phenotype encoding",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags(), errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text|json")

	root.AddCommand(a.newDimCmd(), a.newFilterCmd(), a.newDecodeCmd())

	return root
}

// setup loads the config file, applies flag overrides, validates and builds the logger.
func (a *app) setup(fs *pflag.FlagSet, errOut io.Writer) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		var err error
		if cfg, err = LoadConfig(a.configPath); err != nil {
			return err
		}
	}
	a.override(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: errOut})
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

func (a *app) override(fs *pflag.FlagSet, cfg *Config) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("log-level", func() { cfg.Log.Level = a.logLevel })
	set("log-format", func() { cfg.Log.Format = a.logFormat })
	set("schema", func() { cfg.Schema = a.schema })
	set("level", func() { cfg.Level = a.level })
	set("family", func() { cfg.Filter.Family = a.family })
	set("order", func() { cfg.Filter.Order = a.order })
	set("theta", func() { cfg.Filter.Theta = a.theta })
	set("workers", func() { cfg.Workers = a.workers })
	set("lenient", func() { cfg.Lenient = a.lenient })
}

// Flag helpers shared by subcommands.

func (a *app) schemaFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.schema, "schema", "", "schema file (YAML or JSON nested shape descriptor)")
	fs.IntVar(&a.level, "level", 1, "decomposition level L")
}

func (a *app) bankFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.family, "family", "daubechies", "filter family: daubechies|lattice")
	fs.IntVar(&a.order, "order", 2, "Daubechies order 1..3")
	fs.Float64SliceVar(&a.theta, "theta", nil, "lattice angles in radians, comma separated")
}

// loadSchema parses the configured schema file.
func (a *app) loadSchema() (schema.Schema, error) {
	if a.cfg.Schema == "" {
		return schema.Schema{}, errNoSchema
	}
	data, err := os.ReadFile(a.cfg.Schema)
	if err != nil {
		return schema.Schema{}, err
	}
	s, err := schema.Parse(data)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("schema %s: %w", a.cfg.Schema, err)
	}

	return s, nil
}
