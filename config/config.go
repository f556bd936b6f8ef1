// SPDX-License-Identifier: MIT

// Package config holds the lvpca command settings: a YAML file read with
// gopkg.in/yaml.v3, overridden field by field from the command line, then
// validated and turned into pca options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpca/pca"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full command configuration. Zero numeric values in a file
// mean "use the pca default" except Components, which must be ≥ 1.
type Config struct {
	Input         string  `yaml:"input"`
	LabelColumn   string  `yaml:"label_column"`
	Output        string  `yaml:"output"`
	Components    int     `yaml:"components"`
	Standardize   bool    `yaml:"standardize"`
	ZeroStdPolicy string  `yaml:"zero_std_policy"`
	StdEpsilon    float64 `yaml:"std_epsilon"`
	Solver        string  `yaml:"solver"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	SignPolicy    string  `yaml:"sign_policy"`
	PlotRaw       string  `yaml:"plot_raw"`
	PlotProjected string  `yaml:"plot_projected"`
	LogLevel      string  `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Components:    2,
		Standardize:   pca.DefaultStandardize,
		ZeroStdPolicy: pca.DefaultZeroStdPolicy.String(),
		StdEpsilon:    pca.DefaultStdEpsilon,
		Solver:        pca.DefaultSolver.String(),
		Tolerance:     pca.DefaultTolerance,
		MaxIterations: pca.DefaultMaxIterations,
		SignPolicy:    pca.DefaultSignPolicy.String(),
		LogLevel:      "info",
	}
}

// Load reads path over Default(); keys absent from the file keep their defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(raw)
}

// Parse decodes YAML bytes over Default().
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if c.Components < 1 {
		return fmt.Errorf("%w: components must be >= 1, got %d", ErrInvalid, c.Components)
	}
	if _, err := pca.ParseZeroStdPolicy(c.ZeroStdPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := pca.ParseSolver(c.Solver); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := pca.ParseSignPolicy(c.SignPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !positiveOrZero(c.StdEpsilon) {
		return fmt.Errorf("%w: std_epsilon must be finite and >= 0, got %g", ErrInvalid, c.StdEpsilon)
	}
	if !positiveOrZero(c.Tolerance) {
		return fmt.Errorf("%w: tolerance must be finite and >= 0, got %g", ErrInvalid, c.Tolerance)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations must be >= 0, got %d", ErrInvalid, c.MaxIterations)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// PCAOptions converts a validated Config into pca options.
func (c Config) PCAOptions() ([]pca.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	zs, _ := pca.ParseZeroStdPolicy(c.ZeroStdPolicy)
	solver, _ := pca.ParseSolver(c.Solver)
	sign, _ := pca.ParseSignPolicy(c.SignPolicy)

	opts := []pca.Option{
		pca.WithStandardization(c.Standardize),
		pca.WithZeroStdPolicy(zs),
		pca.WithSolver(solver),
		pca.WithMaxIterations(c.MaxIterations),
		pca.WithSignPolicy(sign),
	}
	if c.StdEpsilon > 0 {
		opts = append(opts, pca.WithStdEpsilon(c.StdEpsilon))
	}
	if c.Tolerance > 0 {
		opts = append(opts, pca.WithTolerance(c.Tolerance))
	}

	return opts, nil
}

// Level parses LogLevel (debug, info, warn, error; case-insensitive).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}

func positiveOrZero(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
