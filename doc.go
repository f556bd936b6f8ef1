// SPDX-License-Identifier: MIT

// Package lvpca is a small, dependable Principal Component Analysis toolkit:
// take an n×d table, find the directions of largest variance, keep the top k
// and project every sample onto them.
//
// 🚀 What is inside?
//
//	• pca/      — the five-stage pipeline: Standardize → Covariance →
//	              Eigendecompose → Select → Project, plus Fit/Run/Transform
//	• matrix/   — row-major Dense, validators, Mul/Transpose/Symmetrize,
//	              column statistics and a Jacobi eigensolver
//	• dataset/  — CSV ⇄ matrix through gota DataFrames, with class labels
//	• scatter/  — gonum/plot scatter views of raw features and components
//	• config/   — YAML settings for the lvpca command
//	• cmd/lvpca — the command-line front end
//
// ✨ Guarantees
//
//   - Every stage returns a typed error (degenerate feature, too few samples,
//     no convergence, bad k, shape mismatch); nothing panics on user data.
//   - Inputs are never mutated; every result is freshly allocated.
//   - Eigenvalues come out non-increasing and every eigenvector has unit norm.
//     The sign of each component is solver-dependent unless SignCanonical
//     is requested.
//
// Quick example:
//
//	X, _ := matrix.NewDenseFromRows(rows)
//	res, err := pca.Run(X, 2)
//	if err != nil { ... }
//	fmt.Println(res.Model.Components.ExplainedVarianceRatio)
//	fmt.Println(res.Projected) // n×2
package lvpca
