// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/matrix"
)

// EigenPair is one eigenvalue with its unit-length eigenvector (length d).
// The sign of Vector is solver-dependent: v and −v are equally valid.
type EigenPair struct {
	Value  float64
	Vector []float64
}

// Eigensystem is the unordered result of the Eigensolver.
// Pairs are in solver order. Flipped[i] is true when SignCanonical negated
// pair i relative to the solver output; it is always false under SignAsSolved.
type Eigensystem struct {
	Pairs   []EigenPair
	Flipped []bool
	Solver  Solver
}

// Features returns d.
func (s Eigensystem) Features() int { return len(s.Pairs) }

// Eigendecompose computes the d eigenpairs of a symmetric covariance matrix.
// Implementation:
//   - Stage 1: Validate square, non-empty, symmetric within
//     DefaultSymmetryTolerance·scale; symmetrize the accepted input.
//   - Stage 2: Solve with the configured backend (Jacobi or gonum EigenSym).
//   - Stage 3: Re-normalize every eigenvector to unit L2 norm.
//   - Stage 4: Apply the SignPolicy, recording flips.
//
// Both tolerances are relative to scale = max|cov[i,j]| (1 for an all-zero matrix).
//
// Errors:
//   - *InvalidDimensionError (nil, non-square, empty, asymmetric),
//   - *ConvergenceError (budget exhausted / gonum factorization failed).
//
// Complexity:
//   - Jacobi: O(d²) per rotation, at most maxIterations rotations. Gonum: O(d³).
func Eigendecompose(cov matrix.Matrix, opts ...Option) (Eigensystem, error) {
	o := gatherOptions(opts...)

	return eigendecompose(cov, o)
}

func eigendecompose(cov matrix.Matrix, o Options) (Eigensystem, error) {
	if err := matrix.ValidateSquare(cov); err != nil {
		return Eigensystem{}, &InvalidDimensionError{Stage: StageEigen, What: "covariance shape", Err: err}
	}
	d := cov.Rows()
	if d == 0 {
		return Eigensystem{}, &InvalidDimensionError{
			Stage: StageEigen, What: "covariance order", Want: 1, Got: 0, AtLeast: true,
		}
	}
	scale, err := maxAbs(cov)
	if err != nil {
		return Eigensystem{}, &InvalidDimensionError{Stage: StageEigen, What: "covariance", Err: err}
	}
	if err = matrix.ValidateSymmetric(cov, DefaultSymmetryTolerance*scale); err != nil {
		return Eigensystem{}, &InvalidDimensionError{Stage: StageEigen, What: "covariance symmetry", Err: err}
	}
	sym, err := matrix.Symmetrize(cov)
	if err != nil {
		return Eigensystem{}, &InvalidDimensionError{Stage: StageEigen, What: "covariance", Err: err}
	}

	var (
		values  []float64
		vectors matrix.Matrix
	)
	switch o.solver {
	case SolverGonum:
		values, vectors, err = solveGonum(sym)
	default:
		values, vectors, err = solveJacobi(sym, o.tol*scale, o.maxIterationsFor(d))
	}
	if err != nil {
		var ce *ConvergenceError
		if errors.As(err, &ce) {
			ce.MaxIterations = 0
			if o.solver == SolverJacobi {
				ce.MaxIterations = o.maxIterationsFor(d)
			}
			ce.Solver = o.solver
		}
		return Eigensystem{}, err
	}

	sys := Eigensystem{
		Pairs:   make([]EigenPair, d),
		Flipped: make([]bool, d),
		Solver:  o.solver,
	}
	var i, r int
	var v float64
	for i = 0; i < d; i++ {
		vec := make([]float64, d)
		for r = 0; r < d; r++ {
			v, _ = vectors.At(r, i) // in range by construction
			vec[r] = v
		}
		if norm := floats.Norm(vec, 2); norm > 0 {
			floats.Scale(1/norm, vec)
		}
		if o.sign == SignCanonical && vec[floats.MaxIdx(absCopy(vec))] < 0 {
			floats.Scale(-1, vec)
			sys.Flipped[i] = true
		}
		sys.Pairs[i] = EigenPair{Value: values[i], Vector: vec}
	}
	o.logger.Debug("pca: stage done", "stage", StageEigen, "solver", o.solver.String(),
		"features", d, "sign", o.sign.String())

	return sys, nil
}

func solveJacobi(sym *matrix.Dense, tol float64, maxIter int) ([]float64, matrix.Matrix, error) {
	values, Q, err := matrix.Eigen(sym, tol, maxIter)
	if err != nil {
		if errors.Is(err, matrix.ErrEigenFailed) {
			return nil, nil, &ConvergenceError{Stage: StageEigen, Err: err}
		}
		return nil, nil, &InvalidDimensionError{Stage: StageEigen, What: "covariance", Err: err}
	}

	return values, Q, nil
}

func solveGonum(sym *matrix.Dense) ([]float64, matrix.Matrix, error) {
	g, err := matrix.ToGonumSym(sym, 0)
	if err != nil {
		return nil, nil, &InvalidDimensionError{Stage: StageEigen, What: "covariance", Err: err}
	}
	var es mat.EigenSym
	if ok := es.Factorize(g, true); !ok {
		return nil, nil, &ConvergenceError{Stage: StageEigen}
	}
	values := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)
	Q, err := matrix.FromGonum(&ev)
	if err != nil {
		return nil, nil, &InvalidDimensionError{Stage: StageEigen, What: "eigenvectors", Err: err}
	}

	return values, Q, nil
}

// maxAbs returns max|m[i,j]|, or 1 when every entry is zero, and rejects
// non-finite entries.
func maxAbs(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateFinite(m); err != nil {
		return 0, err
	}
	out := 0.0
	r, c := m.Rows(), m.Cols()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			out = math.Max(out, math.Abs(v))
		}
	}
	if out == 0 {
		return 1, nil
	}

	return out, nil
}

func absCopy(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Abs(x)
	}

	return out
}
