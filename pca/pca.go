// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/katalvlaran/lvpca/matrix"
)

// Model is a fitted PCA: everything stages 1–4 produced for one dataset.
// A Model is read-only after Fit and safe for concurrent Transform calls.
type Model struct {
	Stats      FeatureStats
	Covariance *matrix.Dense
	Eigen      Eigensystem
	Components Components
}

// Result is the output of Run: the fitted Model, the standardized training
// table and its projection (n×k).
type Result struct {
	Model        *Model
	Standardized *matrix.Dense
	Projected    *matrix.Dense
}

// Fit runs Standardize → Covariance → Eigendecompose → Select on X.
// Any stage failure aborts the fit; no partial Model is returned.
func Fit(X matrix.Matrix, k int, opts ...Option) (*Model, error) {
	m, _, err := fit(X, k, gatherOptions(opts...))

	return m, err
}

// Run is Fit followed by projecting the training data.
func Run(X matrix.Matrix, k int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	m, Xstd, err := fit(X, k, o)
	if err != nil {
		return nil, err
	}
	proj, err := Project(Xstd, m.Components.Vectors)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("pca: stage done", "stage", StageProject,
		"samples", proj.Rows(), "components", proj.Cols())

	return &Result{Model: m, Standardized: Xstd, Projected: proj}, nil
}

func fit(X matrix.Matrix, k int, o Options) (*Model, *matrix.Dense, error) {
	Xstd, stats, err := standardize(X, o)
	if err != nil {
		return nil, nil, err
	}
	// k is checked up front so a bad k does not pay for the eigensolver.
	if d := stats.Features(); k < 1 || k > d {
		return nil, nil, &InvalidComponentCountError{Stage: StageSelect, K: k, Features: d}
	}
	cov, err := Covariance(Xstd)
	if err != nil {
		return nil, nil, err
	}
	o.logger.Debug("pca: stage done", "stage", StageCovariance, "features", cov.Rows())

	sys, err := eigendecompose(cov, o)
	if err != nil {
		return nil, nil, err
	}
	comps, err := Select(sys, k)
	if err != nil {
		return nil, nil, err
	}
	o.logger.Debug("pca: stage done", "stage", StageSelect,
		"k", k, "retained", comps.Retained())

	return &Model{Stats: stats, Covariance: cov, Eigen: sys, Components: comps}, Xstd, nil
}

// Transform standardizes X with the fitted FeatureStats and projects it onto
// the fitted components. X must have the same feature count as the training data.
//
// Errors:
//   - *InvalidDimensionError (nil model or X, feature count mismatch, NaN/Inf).
func (m *Model) Transform(X matrix.Matrix) (*matrix.Dense, error) {
	if m == nil {
		return nil, &InvalidDimensionError{Stage: StageTransform, What: "model", Err: matrix.ErrNilMatrix}
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, &InvalidDimensionError{Stage: StageTransform, What: "input", Err: err}
	}
	if d := m.Stats.Features(); X.Cols() != d {
		return nil, &InvalidDimensionError{
			Stage: StageTransform, What: "feature count", Want: d, Got: X.Cols(),
			Err: matrix.ErrDimensionMismatch,
		}
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, &InvalidDimensionError{Stage: StageTransform, What: "input values", Err: err}
	}
	src, err := matrix.DenseCopyOf(X)
	if err != nil {
		return nil, &InvalidDimensionError{Stage: StageTransform, What: "input", Err: err}
	}

	return Project(applyStats(src, m.Stats), m.Components.Vectors)
}
