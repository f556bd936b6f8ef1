// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
)

func benchTable(b *testing.B, n, d int) *matrix.Dense {
	b.Helper()
	r := rand.New(rand.NewSource(1))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, d)
		for j := range rows[i] {
			rows[i][j] = r.NormFloat64()
		}
	}

	return MustRows(b, rows)
}

func BenchmarkCovariance_500x20(b *testing.B) {
	X := benchTable(b, 500, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := matrix.Covariance(X); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEigen_20(b *testing.B) {
	cov, _, err := matrix.Covariance(benchTable(b, 200, 20))
	if err != nil {
		b.Fatal(err)
	}
	sym, err := matrix.Symmetrize(cov)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = matrix.Eigen(sym, 1e-12, 32*20*20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul_Dense_100(b *testing.B) {
	A := benchTable(b, 100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(A, A); err != nil {
			b.Fatal(err)
		}
	}
}
