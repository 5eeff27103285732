// Package config loads the YAML configuration shared by the splitgrow CLI
// commands and translates it into generator and solver options.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/splitgrow/generator"
	"github.com/katalvlaran/splitgrow/solver"
)

// ErrInvalid is returned by Validate and Load for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration document.
type Config struct {
	Generator GeneratorConfig `yaml:"generator" json:"generator"`
	Solver    SolverConfig    `yaml:"solver" json:"solver"`
	Catalog   CatalogConfig   `yaml:"catalog" json:"catalog"`
	Log       LogConfig       `yaml:"log" json:"log"`
}

// GeneratorConfig configures puzzle generation.
type GeneratorConfig struct {
	// Nodes is the target puzzle size.
	Nodes int `yaml:"nodes" json:"nodes"`
	// Seed fixes the RNG; 0 seeds from the clock.
	Seed int64 `yaml:"seed" json:"seed"`
	// MaxAttempts is the consecutive-failure budget.
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts"`
	// GrowProbability is the chance of attempting Grow over Split.
	GrowProbability float64 `yaml:"grow_probability" json:"grow_probability"`
}

// SolverConfig configures the reverse search.
type SolverConfig struct {
	// MaxIterations caps expansions per spanning tree.
	MaxIterations int `yaml:"max_iterations" json:"max_iterations"`
	// MaxTotalIterations caps expansions per solve; 0 is unlimited.
	MaxTotalIterations int `yaml:"max_total_iterations" json:"max_total_iterations"`
	// Timeout bounds a single solve; 0 disables it.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// CatalogConfig locates the puzzle catalog.
type CatalogConfig struct {
	// Path is the database directory; empty keeps the catalog in memory.
	Path string `yaml:"path" json:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is a logrus level name.
	Level string `yaml:"level" json:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			Nodes:           8,
			MaxAttempts:     generator.DefaultMaxAttempts,
			GrowProbability: generator.DefaultGrowProbability,
		},
		Solver: SolverConfig{
			MaxIterations: solver.DefaultMaxIterations,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Generator.Nodes < 1:
		return fmt.Errorf("%w: generator.nodes=%d", ErrInvalid, c.Generator.Nodes)
	case c.Generator.MaxAttempts < 1:
		return fmt.Errorf("%w: generator.max_attempts=%d", ErrInvalid, c.Generator.MaxAttempts)
	case c.Generator.GrowProbability < 0 || c.Generator.GrowProbability > 1:
		return fmt.Errorf("%w: generator.grow_probability=%g", ErrInvalid, c.Generator.GrowProbability)
	case c.Solver.MaxIterations < 1:
		return fmt.Errorf("%w: solver.max_iterations=%d", ErrInvalid, c.Solver.MaxIterations)
	case c.Solver.MaxTotalIterations < 0:
		return fmt.Errorf("%w: solver.max_total_iterations=%d", ErrInvalid, c.Solver.MaxTotalIterations)
	case c.Solver.Timeout < 0:
		return fmt.Errorf("%w: solver.timeout=%s", ErrInvalid, c.Solver.Timeout)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	return nil
}

// LogLevel returns the parsed log level, or info when it cannot be parsed.
func (c Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// GeneratorOptions translates the generator section. ctx is passed through
// WithContext and also carries the logger.
func (c Config) GeneratorOptions(ctx context.Context) []generator.Option {
	opts := []generator.Option{
		generator.WithContext(ctx),
		generator.WithMaxAttempts(c.Generator.MaxAttempts),
		generator.WithGrowProbability(c.Generator.GrowProbability),
	}
	if c.Generator.Seed != 0 {
		opts = append(opts, generator.WithSeed(c.Generator.Seed))
	}

	return opts
}

// SolverOptions translates the solver section. When a timeout is set the
// returned context carries the deadline; the caller must call cancel.
func (c Config) SolverOptions(ctx context.Context) ([]solver.Option, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if c.Solver.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.Solver.Timeout)
	}

	return []solver.Option{
		solver.WithContext(ctx),
		solver.WithMaxIterations(c.Solver.MaxIterations),
		solver.WithMaxTotalIterations(c.Solver.MaxTotalIterations),
	}, cancel
}
