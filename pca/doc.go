// SPDX-License-Identifier: MIT

// Package pca implements Principal Component Analysis as a five-stage
// pipeline of pure functions over matrix.Matrix tables.
//
// What & Why
//
//   - PCA projects an n×d table onto the k orthogonal directions that
//     capture the most variance. Standardizing first keeps features with a
//     large magnitude from dominating the result.
//
// Stages
//
//	Standardize    X (n×d)        → Xstd (n×d), FeatureStats
//	Covariance     Xstd           → C (d×d, symmetric, PSD)
//	Eigendecompose C              → Eigensystem (d pairs, solver order)
//	Select         Eigensystem, k → Components (d×k axes + variance ratios)
//	Project        Xstd, W        → Y (n×k)
//
// Each stage allocates its output and never mutates its input. Fit runs the
// first four stages and returns a Model; Run adds the projection of the
// training data; Model.Transform projects new samples with the fitted
// statistics.
//
// Non-determinism (documented, not "fixed")
//
//   - Eigenvector sign: v and −v are both valid. SignAsSolved (default)
//     reports the solver's choice; SignCanonical makes the largest loading
//     positive and records the flip in Eigensystem.Flipped.
//   - Equal eigenvalues: the selector sorts stably, so tied pairs keep solver
//     order. For an already diagonal covariance the Jacobi solver performs no
//     rotation and tied axes come out in feature order.
//
// Errors
//
// Every failure is one of *DegenerateFeatureError, *InsufficientSamplesError,
// *ConvergenceError, *InvalidComponentCountError or *InvalidDimensionError,
// each matching its Err* sentinel through errors.Is. A failure in any stage
// aborts the run.
//
// Complexity
//
//   - Standardize O(n·d), Covariance O(n·d²), Jacobi O(d²) per rotation,
//     Select O(d log d + d·k), Project O(n·d·k).
package pca
