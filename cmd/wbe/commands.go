// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wbe/codec"
	"github.com/katalvlaran/wbe/filter"
)

// orthogonalityTolerance accepts the ten-digit table coefficients.
const orthogonalityTolerance = 1e-8

func (a *app) newDimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dim",
		Short: "Print the number of genes a schema needs at a level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema()
			if err != nil {
				return err
			}
			n, err := s.Dimensionality(a.cfg.Level)
			if err != nil {
				return err
			}
			a.logger.Debug("dimensionality", "schema", s.String(), "level", a.cfg.Level, "genes", n)
			_, err = fmt.Fprintln(a.out, n)

			return err
		},
	}
	a.schemaFlags(cmd.Flags())

	return cmd
}

// bankReport is the YAML form of a filter bank.
type bankReport struct {
	Family     string         `yaml:"family"`
	Order      int            `yaml:"order"`
	Orthogonal bool           `yaml:"orthogonal"`
	Low        []float64      `yaml:"low,flow"`
	High       []float64      `yaml:"high,flow"`
	Taps       [][2][]float64 `yaml:"taps"`
}

func newBankReport(family string, b filter.Bank) bankReport {
	c, d := b.Classic()
	r := bankReport{
		Family:     family,
		Order:      b.Order(),
		Orthogonal: b.IsOrthogonal(orthogonalityTolerance),
		Low:        c,
		High:       d,
	}
	for _, t := range b.Taps() {
		r.Taps = append(r.Taps, [2][]float64{t[0][:], t[1][:]})
	}

	return r
}

func (a *app) newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the polyphase taps and classic coefficients of a filter bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bank, err := a.cfg.Bank()
			if err != nil {
				return err
			}
			family, _ := filter.ParseFamily(a.cfg.Filter.Family)

			return a.writeYAML(newBankReport(family.String(), bank))
		},
	}
	a.bankFlags(cmd.Flags())

	return cmd
}

func (a *app) newDecodeCmd() *cobra.Command {
	var (
		genotypePath string
		seed         int64
	)
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a genotype into a YAML phenotype",
		Long: `Decode reads a genotype (a YAML or JSON list of numbers, "-" for stdin)
or draws one from a standard normal distribution with --seed, decodes it
under the schema and writes the phenotype as YAML to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema()
			if err != nil {
				return err
			}
			bank, err := a.cfg.Bank()
			if err != nil {
				return err
			}
			opts := []codec.Option{
				codec.WithLogger(a.logger),
				codec.WithWorkers(a.cfg.Workers),
			}
			if a.cfg.Lenient {
				opts = append(opts, codec.WithLenientLength())
			}
			dec, err := codec.NewDecoder(bank, a.cfg.Level, opts...)
			if err != nil {
				return err
			}

			var genes []float64
			switch {
			case genotypePath != "":
				genes, err = readGenotype(cmd, genotypePath)
			case cmd.Flags().Changed("seed"):
				var n int
				if n, err = dec.Dimensionality(s); err == nil {
					genes = randomGenotype(seed, n)
				}
			default:
				err = errNoGenotype
			}
			if err != nil {
				return err
			}

			ph, err := dec.Decode(genes, s)
			if err != nil {
				return err
			}

			return a.writeYAML(ph)
		},
	}
	fs := cmd.Flags()
	a.schemaFlags(fs)
	a.bankFlags(fs)
	fs.StringVar(&genotypePath, "genotype", "", `genotype file, "-" for stdin`)
	fs.Int64Var(&seed, "seed", 0, "draw a standard normal genotype from this seed")
	fs.IntVar(&a.workers, "workers", 1, "goroutines per transform sweep")
	fs.BoolVar(&a.lenient, "lenient", false, "ignore genes beyond the schema's dimensionality")

	return cmd
}

func readGenotype(cmd *cobra.Command, path string) ([]float64, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var genes []float64
	if err = yaml.Unmarshal(data, &genes); err != nil {
		return nil, fmt.Errorf("genotype %s: %w", path, err)
	}

	return genes, nil
}

// randomGenotype draws n standard normal genes.
func randomGenotype(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	genes := make([]float64, n)
	for i := range genes {
		genes[i] = rng.NormFloat64()
	}

	return genes
}

func (a *app) writeYAML(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
