// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels the PCA pipeline is
// built on.
//
// The matrix package provides:
//
//   - Matrix, a minimal row/column/At/Set/Clone interface, and Dense, its
//     row-major flat-slice implementation.
//   - Kernels that never mutate their operands: Mul, Transpose, Scale and
//     Symmetrize.
//   - Column statistics: CenterColumns and the sample Covariance (n−1).
//   - Eigen, a classical Jacobi eigensolver for real symmetric matrices.
//   - Validators shared by every kernel (ValidateNotNil, ValidateSquare,
//     ValidateSymmetric, ValidateFinite, ...).
//   - Copies to and from gonum (ToGonumSym, FromGonum).
//
// Every error is one of the package sentinels (ErrNilMatrix, ErrNonSquare,
// ErrEigenFailed, ...), wrapped with the failing operation's name; match
// them with errors.Is.
//
// *Dense operands take flat-slice fast paths; any other Matrix goes through
// At/Set with full error propagation and yields the same numbers.
package matrix
