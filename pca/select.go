// SPDX-License-Identifier: MIT

package pca

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvpca/matrix"
)

// Components is the output of the Component Selector.
//
// Ordered holds all d pairs by descending eigenvalue. Ties keep solver order
// (stable sort); which of two equal-variance directions comes first is not
// part of the contract. Flipped is reordered alongside Ordered.
//
// Vectors is d×k: column i is the i-th principal axis. Values are the k
// leading eigenvalues. ExplainedVarianceRatio and CumulativeVarianceRatio
// cover all d components, not only the selected k.
type Components struct {
	Vectors                 *matrix.Dense
	Values                  []float64
	Ordered                 []EigenPair
	Flipped                 []bool
	ExplainedVarianceRatio  []float64
	CumulativeVarianceRatio []float64
}

// K returns the number of selected components.
func (c Components) K() int { return len(c.Values) }

// Features returns d.
func (c Components) Features() int { return len(c.Ordered) }

// Retained returns the fraction of total variance kept by the k selected components.
func (c Components) Retained() float64 {
	if c.K() == 0 {
		return 0
	}

	return c.CumulativeVarianceRatio[c.K()-1]
}

// Select orders the eigenpairs by descending eigenvalue and keeps the top k.
// Implementation:
//   - Stage 1: Validate 1 ≤ k ≤ d and that every eigenvector has length d.
//   - Stage 2: Stable sort of pair indices by eigenvalue, descending.
//   - Stage 3: Explained-variance ratios over all d pairs.
//   - Stage 4: Copy the first k eigenvectors into the columns of a d×k Dense.
//
// Negative eigenvalues are round-off on a PSD matrix; they count as 0 in the
// ratios (Values keeps the raw numbers). Zero total variance yields all-zero ratios.
//
// Errors:
//   - *InvalidComponentCountError,
//   - *InvalidDimensionError (eigenvector length ≠ d).
//
// Complexity:
//   - Time O(d log d + d·k), Space O(d²) for the ordered copies.
func Select(sys Eigensystem, k int) (Components, error) {
	d := sys.Features()
	if k < 1 || k > d {
		return Components{}, &InvalidComponentCountError{Stage: StageSelect, K: k, Features: d}
	}
	for _, p := range sys.Pairs {
		if len(p.Vector) != d {
			return Components{}, &InvalidDimensionError{
				Stage: StageSelect, What: "eigenvector length", Want: d, Got: len(p.Vector),
				Err: matrix.ErrDimensionMismatch,
			}
		}
	}

	order := make([]int, d)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sys.Pairs[order[a]].Value > sys.Pairs[order[b]].Value
	})

	out := Components{
		Values:                  make([]float64, k),
		Ordered:                 make([]EigenPair, d),
		Flipped:                 make([]bool, d),
		ExplainedVarianceRatio:  make([]float64, d),
		CumulativeVarianceRatio: make([]float64, d),
	}
	clamped := make([]float64, d)
	for i, idx := range order {
		p := sys.Pairs[idx]
		vec := make([]float64, len(p.Vector))
		copy(vec, p.Vector)
		out.Ordered[i] = EigenPair{Value: p.Value, Vector: vec}
		if idx < len(sys.Flipped) {
			out.Flipped[i] = sys.Flipped[idx]
		}
		clamped[i] = max(p.Value, 0)
	}

	if total := floats.Sum(clamped); total > 0 {
		floats.ScaleTo(out.ExplainedVarianceRatio, 1/total, clamped)
	}
	floats.CumSum(out.CumulativeVarianceRatio, out.ExplainedVarianceRatio)

	vectors, err := matrix.NewDense(d, k)
	if err != nil {
		return Components{}, &InvalidDimensionError{Stage: StageSelect, What: "components", Err: err}
	}
	var r int
	for j := 0; j < k; j++ {
		out.Values[j] = out.Ordered[j].Value
		for r = 0; r < d; r++ {
			_ = vectors.Set(r, j, out.Ordered[j].Vector[r]) // in range by construction
		}
	}
	out.Vectors = vectors

	return out, nil
}
