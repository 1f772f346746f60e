// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wbe/filter"
)

// configValidate is shared by every Config.Validate call.
var configValidate = validator.New()

// Config is the file form of the command-line settings. Flags given on the
// command line override the corresponding file values.
//
//	schema: net.yaml
//	level: 2
//	workers: 4
//	filter:
//	  family: lattice
//	  theta: [0.4, 1.2]
//	log:
//	  level: debug
//	  format: json
type Config struct {
	Schema  string       `yaml:"schema"`
	Level   int          `yaml:"level" validate:"gte=0,lte=30"`
	Workers int          `yaml:"workers" validate:"gte=1,lte=1024"`
	Lenient bool         `yaml:"lenient"`
	Filter  FilterConfig `yaml:"filter"`
	Log     LogConfig    `yaml:"log"`
}

// FilterConfig selects the filter bank.
type FilterConfig struct {
	Family string    `yaml:"family" validate:"required,oneof=daubechies db lattice"`
	Order  int       `yaml:"order" validate:"gte=0,lte=3"`
	Theta  []float64 `yaml:"theta"`
}

// LogConfig mirrors internal/logging.Config.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// DefaultConfig returns the settings used when no file is given:
// Daubechies-2 at level 1 on one worker, info logs as text.
func DefaultConfig() Config {
	return Config{
		Level:   1,
		Workers: 1,
		Filter:  FilterConfig{Family: "daubechies", Order: 2},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads a YAML config over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Bank builds the configured filter bank.
func (c Config) Bank() (filter.Bank, error) {
	family, err := filter.ParseFamily(c.Filter.Family)
	if err != nil {
		return filter.Bank{}, err
	}
	if family == filter.FamilyLattice {
		return filter.Lattice(c.Filter.Theta, 1)
	}

	return filter.Daubechies(c.Filter.Order)
}
