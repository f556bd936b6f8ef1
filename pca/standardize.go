// SPDX-License-Identifier: MIT

package pca

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvpca/matrix"
)

// FeatureStats holds the per-feature statistics the Standardizer divides by.
// Std is the denominator actually used: the population standard deviation,
// StdEpsilon for Substituted columns, or 1 when standardization is disabled.
type FeatureStats struct {
	Mean        []float64
	Std         []float64
	Substituted []bool
}

// Features returns d.
func (s FeatureStats) Features() int { return len(s.Mean) }

// Standardize rescales every column of X to zero mean and unit population variance.
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty, finite).
//   - Stage 2: Per column, mean and population std via stat.PopMeanStdDev.
//   - Stage 3: Resolve degenerate columns under the ZeroStdPolicy.
//   - Stage 4: X_std[i,j] = (X[i,j] − mean[j]) / std[j] into a fresh Dense.
//
// With WithoutStandardization the columns are only centered and Std is all ones.
//
// Errors:
//   - *InvalidDimensionError (nil X, d == 0, NaN/Inf cell),
//   - *InsufficientSamplesError (n == 0),
//   - *DegenerateFeatureError (constant column under ZeroStdError).
//
// Complexity:
//   - Time O(n·d), Space O(n·d).
func Standardize(X matrix.Matrix, opts ...Option) (*matrix.Dense, FeatureStats, error) {
	o := gatherOptions(opts...)

	return standardize(X, o)
}

func standardize(X matrix.Matrix, o Options) (*matrix.Dense, FeatureStats, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, FeatureStats{}, &InvalidDimensionError{Stage: StageStandardize, What: "input", Err: err}
	}
	n, d := X.Rows(), X.Cols()
	if n == 0 {
		return nil, FeatureStats{}, &InsufficientSamplesError{Stage: StageStandardize, Samples: n}
	}
	if d == 0 {
		return nil, FeatureStats{}, &InvalidDimensionError{
			Stage: StageStandardize, What: "feature count", Want: 1, Got: 0, AtLeast: true,
		}
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, FeatureStats{}, &InvalidDimensionError{Stage: StageStandardize, What: "input values", Err: err}
	}
	src, err := matrix.DenseCopyOf(X)
	if err != nil {
		return nil, FeatureStats{}, &InvalidDimensionError{Stage: StageStandardize, What: "input", Err: err}
	}

	stats := FeatureStats{
		Mean:        make([]float64, d),
		Std:         make([]float64, d),
		Substituted: make([]bool, d),
	}
	var col []float64
	var mean, std float64
	for j := 0; j < d; j++ {
		col, _ = src.Col(j) // j < d by construction
		mean, std = stat.PopMeanStdDev(col, nil)
		if math.IsNaN(std) {
			std = 0 // compensated variance can round to a tiny negative on constant columns
		}
		stats.Mean[j] = mean
		if !o.standardize {
			stats.Std[j] = 1
			continue
		}
		if degenerate(col, mean, std) {
			if o.zeroStd == ZeroStdError {
				return nil, FeatureStats{}, &DegenerateFeatureError{Stage: StageStandardize, Feature: j, Std: std}
			}
			std = o.stdEps
			stats.Substituted[j] = true
			o.logger.Debug("pca: substituted std", "stage", StageStandardize, "feature", j, "epsilon", std)
		}
		stats.Std[j] = std
	}

	out := applyStats(src, stats)
	o.logger.Debug("pca: stage done", "stage", StageStandardize,
		"samples", n, "features", d, "standardize", o.standardize)

	return out, stats, nil
}

// degenerate reports a column with no usable spread: every value equal, a std
// that underflowed to 0, or a std lost in round-off relative to |mean|.
// Small but genuine spreads are kept at any magnitude.
func degenerate(col []float64, mean, std float64) bool {
	if std == 0 || floats.Max(col) == floats.Min(col) {
		return true
	}

	return std <= DegenerateStdTolerance*math.Abs(mean)
}

// applyStats writes (X − mean)/std into src and returns it; src must be a private copy.
func applyStats(src *matrix.Dense, stats FeatureStats) *matrix.Dense {
	n, d := src.Rows(), src.Cols()
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			v, _ = src.At(i, j) // in range by construction
			_ = src.Set(i, j, (v-stats.Mean[j])/stats.Std[j])
		}
	}

	return src
}
