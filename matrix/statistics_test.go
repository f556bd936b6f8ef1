// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
)

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := MustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})

	Yf, meansF, err := matrix.CenterColumns(X)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}

	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0)
	sliceClose(t, meansS, want, 0)
	CompareClose(t, Yf, Ys, 0)
	CompareRows(t, Yf, [][]float64{{-4.5, -9, -13.5}, {4.5, 9, 13.5}}, epsTight)

	if MustAt(t, X, 0, 0) != 1 {
		t.Fatal("CenterColumns mutated its input")
	}
}

func TestCenterColumns_ZeroSize(t *testing.T) {
	t.Parallel()

	empty, err := matrix.NewDense(0, 3)
	if err != nil {
		t.Fatal(err)
	}
	Y, means, err := matrix.CenterColumns(empty)
	if err != nil {
		t.Fatal(err)
	}
	if Y.Rows() != 0 || len(means) != 3 {
		t.Fatalf("got %dx%d, %d means", Y.Rows(), Y.Cols(), len(means))
	}
}

func TestCovariance_Known(t *testing.T) {
	t.Parallel()

	// y = 2x exactly: var(x)=2.5, var(y)=10, cov=5 (n−1 denominator).
	X := MustRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}, {4, 8}, {5, 10}})
	for _, in := range []matrix.Matrix{X, hide{X}} {
		cov, means, err := matrix.Covariance(in)
		if err != nil {
			t.Fatal(err)
		}
		sliceClose(t, means, []float64{3, 6}, epsTight)
		CompareRows(t, cov, [][]float64{{2.5, 5}, {5, 10}}, epsTight)
	}
}

func TestCovariance_Edges(t *testing.T) {
	t.Parallel()

	if _, _, err := matrix.Covariance(MustRows(t, [][]float64{{1, 2}})); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("r<2: %v", err)
	}
	if _, _, err := matrix.Covariance(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil: %v", err)
	}
	noCols, err := matrix.NewDense(4, 0)
	if err != nil {
		t.Fatal(err)
	}
	cov, _, err := matrix.Covariance(noCols)
	if err != nil || cov.Rows() != 0 || cov.Cols() != 0 {
		t.Fatalf("c=0: %v %v", cov, err)
	}

	// Diagonal entries are sample variances.
	X := MustRows(t, [][]float64{{1, 0}, {-1, 3}, {4, 1}})
	cov, _, err = matrix.Covariance(X)
	if err != nil {
		t.Fatal(err)
	}
	// col0 mean 4/3: squares sum = (1/9+49/9+64/9) = 114/9 → /2
	if got, want := MustAt(t, cov, 0, 0), 114.0/18; math.Abs(got-want) > epsTight {
		t.Fatalf("var0=%g, want %g", got, want)
	}
}
