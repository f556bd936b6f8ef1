// SPDX-License-Identifier: MIT
// Package pca: error taxonomy.
// Every stage fails with one of the typed errors below. Each type matches its
// package sentinel through errors.Is, so callers can branch on the category
// and still read the offending stage and parameters via errors.As.

package pca

import (
	"errors"
	"fmt"
)

// Stage names used in error messages and log records.
const (
	StageStandardize = "standardize"
	StageCovariance  = "covariance"
	StageEigen       = "eigendecompose"
	StageSelect      = "select"
	StageProject     = "project"
	StageTransform   = "transform"
)

var (
	// ErrDegenerateFeature: a feature has zero variance under ZeroStdError.
	ErrDegenerateFeature = errors.New("pca: degenerate feature")

	// ErrInsufficientSamples: fewer than 2 samples where a sample statistic is required.
	ErrInsufficientSamples = errors.New("pca: insufficient samples")

	// ErrConvergence: the eigensolver exhausted its budget.
	ErrConvergence = errors.New("pca: eigensolver did not converge")

	// ErrInvalidComponentCount: k outside [1, d].
	ErrInvalidComponentCount = errors.New("pca: invalid component count")

	// ErrInvalidDimension: shape contract between stages violated (caller bug).
	ErrInvalidDimension = errors.New("pca: invalid dimension")
)

// DegenerateFeatureError reports a constant feature column.
type DegenerateFeatureError struct {
	Stage   string
	Feature int     // zero-based column index
	Std     float64 // observed population standard deviation
}

func (e *DegenerateFeatureError) Error() string {
	return fmt.Sprintf("pca: %s: feature %d has zero variance (std=%g)", e.Stage, e.Feature, e.Std)
}

// Is matches ErrDegenerateFeature.
func (e *DegenerateFeatureError) Is(target error) bool { return target == ErrDegenerateFeature }

// InsufficientSamplesError reports a sample count below 2.
type InsufficientSamplesError struct {
	Stage   string
	Samples int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("pca: %s: need at least 2 samples, got %d", e.Stage, e.Samples)
}

// Is matches ErrInsufficientSamples.
func (e *InsufficientSamplesError) Is(target error) bool { return target == ErrInsufficientSamples }

// ConvergenceError reports an eigensolver that ran out of budget.
// MaxIterations is 0 for solvers that manage their own budget (SolverGonum).
type ConvergenceError struct {
	Stage         string
	Solver        Solver
	MaxIterations int
	Err           error
}

func (e *ConvergenceError) Error() string {
	msg := fmt.Sprintf("pca: %s: %s solver did not converge", e.Stage, e.Solver)
	if e.MaxIterations > 0 {
		msg += fmt.Sprintf(" within %d iterations", e.MaxIterations)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is matches ErrConvergence.
func (e *ConvergenceError) Is(target error) bool { return target == ErrConvergence }

// Unwrap exposes the solver error (matrix.ErrEigenFailed for Jacobi).
func (e *ConvergenceError) Unwrap() error { return e.Err }

// InvalidComponentCountError reports k outside [1, Features].
type InvalidComponentCountError struct {
	Stage    string
	K        int
	Features int
}

func (e *InvalidComponentCountError) Error() string {
	return fmt.Sprintf("pca: %s: k=%d out of range [1, %d]", e.Stage, e.K, e.Features)
}

// Is matches ErrInvalidComponentCount.
func (e *InvalidComponentCountError) Is(target error) bool { return target == ErrInvalidComponentCount }

// InvalidDimensionError reports a shape contract violation.
// What names the checked quantity; AtLeast marks Want as a lower bound.
type InvalidDimensionError struct {
	Stage   string
	What    string
	Want    int
	Got     int
	AtLeast bool
	Err     error
}

func (e *InvalidDimensionError) Error() string {
	msg := fmt.Sprintf("pca: %s: %s", e.Stage, e.What)
	if e.Want != 0 || e.Got != 0 {
		if e.AtLeast {
			msg += fmt.Sprintf(": want at least %d, got %d", e.Want, e.Got)
		} else {
			msg += fmt.Sprintf(": want %d, got %d", e.Want, e.Got)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is matches ErrInvalidDimension.
func (e *InvalidDimensionError) Is(target error) bool { return target == ErrInvalidDimension }

// Unwrap exposes the underlying matrix sentinel, if any.
func (e *InvalidDimensionError) Unwrap() error { return e.Err }
