// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonumSym copies a symmetric m into a gonum *mat.SymDense (upper triangle is read).
// Complexity: O(n²).
func ToGonumSym(m Matrix, tol float64) (*mat.SymDense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf("ToGonumSym", err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("ToGonumSym", err)
	}
	n := src.r
	if n == 0 {
		return nil, matrixErrorf("ToGonumSym", ErrInvalidDimensions)
	}
	data := make([]float64, len(src.data))
	copy(data, src.data)

	return mat.NewSymDense(n, data), nil
}

// FromGonum copies any gonum mat.Matrix into a fresh *Dense.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", fmt.Errorf("%dx%d: %w", r, c, err))
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}
