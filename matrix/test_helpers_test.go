// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
)

const epsTight = 1e-12

// hide wraps a Matrix so kernels cannot take the *Dense fast path.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return d
}

// MustAt returns m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose fails unless a and b have equal shape and |a−b| ≤ tol element-wise.
func CompareClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > tol {
				t.Fatalf("(%d,%d): got %g, want %g (tol %g)", i, j, av, bv, tol)
			}
		}
	}
}

// CompareRows compares m to the literal rows.
func CompareRows(t testing.TB, m matrix.Matrix, want [][]float64, tol float64) {
	t.Helper()
	CompareClose(t, m, MustRows(t, want), tol)
}

func sliceClose(t testing.TB, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("[%d]: got %g, want %g", i, got[i], want[i])
		}
	}
}
