// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/matrix"
)

const (
	epsTight = 1e-9
	epsLoose = 1e-6
)

// hide wraps a Matrix so the *Dense fast paths cannot see the concrete type.
type hide struct{ matrix.Matrix }

// square is the 4×2 "plus sign" dataset with equal variance on both axes.
var square = [][]float64{{2, 0}, {0, 2}, {-2, 0}, {0, -2}}

// mustDense builds a Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// correlated builds an n×d table with mixed scales and a strong shared factor,
// so all eigenvalues are distinct. Fixed seed keeps it reproducible.
func correlated(t testing.TB, n, d int, seed int64) *matrix.Dense {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		f := r.NormFloat64()
		g := r.NormFloat64()
		row := make([]float64, d)
		for j := range row {
			scale := math.Pow(10, float64(j%3))
			row[j] = scale * (float64(j+1)*f + 0.5*float64(j%2)*g + 0.3*r.NormFloat64())
		}
		rows[i] = row
	}

	return mustDense(t, rows)
}

// scaled returns f·m as a new Dense.
func scaled(t testing.TB, m matrix.Matrix, f float64) *matrix.Dense {
	t.Helper()
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	require.NoError(t, err)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.NoError(t, out.Set(i, j, f*v))
		}
	}

	return out
}

// toGonum copies m into a gonum *mat.Dense for cross-checks against gonum/stat.
func toGonum(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out.Set(i, j, v)
		}
	}

	return out
}

// requireAllClose asserts a and b have equal shape and |a−b| ≤ tol element-wise.
func requireAllClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for j := 0; j < a.Cols(); j++ {
		require.InDeltaSlice(t, column(t, a, j), column(t, b, j), tol, "column %d", j)
	}
}

// column extracts column j through the Matrix interface.
func column(t testing.TB, m matrix.Matrix, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// requireColumnsEqualUpToSign asserts every column of a equals ±the same column of b.
func requireColumnsEqualUpToSign(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for j := 0; j < a.Cols(); j++ {
		ca, cb := column(t, a, j), column(t, b, j)
		sign := 1.0
		if dot(ca, cb) < 0 {
			sign = -1.0
		}
		for i := range ca {
			require.InDelta(t, ca[i], sign*cb[i], tol, "column %d row %d", j, i)
		}
	}
}
