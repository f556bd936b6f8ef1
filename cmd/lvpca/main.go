// SPDX-License-Identifier: MIT

// Command lvpca reduces a CSV table to its leading principal components.
//
// Usage:
//
//	lvpca -in iris.csv -label species -k 2 -out pcs.csv -plot pcs.png
//
// Settings come from the defaults, then an optional YAML file (-config), then
// any flag given explicitly on the command line. The projected table goes to
// -out (stdout when empty or "-"); explained variance per component is logged
// to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/lvpca/config"
	"github.com/katalvlaran/lvpca/dataset"
	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/pca"
	"github.com/katalvlaran/lvpca/scatter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit; it returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "lvpca:", err)
		return 2
	}
	lvl, _ := cfg.Level() // validated in parseConfig
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	if err = execute(cfg, logger, stdout); err != nil {
		logger.Error("lvpca failed", "err", err)
		return 1
	}

	return 0
}

// parseConfig layers defaults, the optional YAML file and explicitly set flags.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("lvpca", flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := config.Default()

	cfgPath := fs.String("config", "", "YAML configuration file")
	in := fs.String("in", def.Input, "input CSV with a header row")
	label := fs.String("label", def.LabelColumn, "label column name (empty: none)")
	k := fs.Int("k", def.Components, "number of principal components to keep")
	out := fs.String("out", def.Output, `projected CSV output ("-" or empty: stdout)`)
	plotRaw := fs.String("plot-raw", def.PlotRaw, "scatter of the first two raw features (png, svg, pdf)")
	plotPCs := fs.String("plot", def.PlotProjected, "scatter of PC1 against PC2 (png, svg, pdf)")
	standardize := fs.Bool("standardize", def.Standardize, "scale features to unit variance before PCA")
	solver := fs.String("solver", def.Solver, "eigensolver: jacobi or gonum")
	zeroStd := fs.String("zero-std", def.ZeroStdPolicy, "constant feature policy: error or epsilon-substitute")
	sign := fs.String("sign", def.SignPolicy, "eigenvector sign: as-solved or canonical")
	maxIter := fs.Int("max-iter", def.MaxIterations, "Jacobi rotation budget (0: derived from d)")
	logLevel := fs.String("log-level", def.LogLevel, "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	if fs.NArg() > 0 {
		return config.Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return config.Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *in
		case "label":
			cfg.LabelColumn = *label
		case "k":
			cfg.Components = *k
		case "out":
			cfg.Output = *out
		case "plot-raw":
			cfg.PlotRaw = *plotRaw
		case "plot":
			cfg.PlotProjected = *plotPCs
		case "standardize":
			cfg.Standardize = *standardize
		case "solver":
			cfg.Solver = *solver
		case "zero-std":
			cfg.ZeroStdPolicy = *zeroStd
		case "sign":
			cfg.SignPolicy = *sign
		case "max-iter":
			cfg.MaxIterations = *maxIter
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if cfg.Input == "" {
		return config.Config{}, errors.New("no input: set -in or input in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func execute(cfg config.Config, logger *slog.Logger, stdout io.Writer) error {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	tab, err := dataset.ReadCSV(f, cfg.LabelColumn)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	logger.Info("table loaded", "path", cfg.Input, "samples", tab.Samples(), "features", len(tab.Features))

	if cfg.PlotRaw != "" {
		view := scatter.Options{Title: "raw features", X: 0, Y: 1, XLabel: tab.Features[0]}
		if len(tab.Features) > 1 {
			view.YLabel = tab.Features[1]
		}
		if err = savePlot(tab.X, tab.Labels, view, cfg.PlotRaw); err != nil {
			return err
		}
		logger.Info("plot written", "path", cfg.PlotRaw)
	}

	opts, err := cfg.PCAOptions()
	if err != nil {
		return err
	}
	res, err := pca.Run(tab.X, cfg.Components, append(opts, pca.WithLogger(logger))...)
	if err != nil {
		return err
	}
	comps := res.Model.Components
	for i, p := range comps.Ordered {
		logger.Info("component",
			"pc", i+1,
			"eigenvalue", p.Value,
			"explained", comps.ExplainedVarianceRatio[i],
			"cumulative", comps.CumulativeVarianceRatio[i],
			"kept", i < comps.K(),
		)
	}
	logger.Info("variance retained", "k", comps.K(), "ratio", strconv.FormatFloat(comps.Retained(), 'f', 4, 64))

	if err = writeProjection(cfg.Output, stdout, res, tab.Labels); err != nil {
		return err
	}

	if cfg.PlotProjected != "" {
		names := dataset.ComponentNames(comps.K())
		view := scatter.Options{Title: "principal components", X: 0, Y: 1, XLabel: names[0]}
		if len(names) > 1 {
			view.YLabel = names[1]
		}
		if err = savePlot(res.Projected, tab.Labels, view, cfg.PlotProjected); err != nil {
			return err
		}
		logger.Info("plot written", "path", cfg.PlotProjected)
	}

	return nil
}

func writeProjection(path string, stdout io.Writer, res *pca.Result, labels []string) error {
	if path == "" || path == "-" {
		return dataset.WriteCSV(stdout, res.Projected, nil, labels)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = dataset.WriteCSV(f, res.Projected, nil, labels); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func savePlot(m matrix.Matrix, labels []string, opts scatter.Options, path string) error {
	p, err := scatter.Plot(m, labels, opts)
	if err != nil {
		return err
	}

	return scatter.Save(p, path, 0, 0)
}
