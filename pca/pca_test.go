// SPDX-License-Identifier: MIT

package pca_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/pca"
)

func TestRun_SquareScenario(t *testing.T) {
	t.Parallel()

	res, err := pca.Run(mustDense(t, square), 1)
	require.NoError(t, err)

	comps := res.Model.Components
	// Both eigenvalues equal 4/3: a tie. Observed winner under Jacobi is the
	// first feature axis because the covariance is already diagonal.
	assert.InDelta(t, 4.0/3, comps.Ordered[0].Value, epsTight)
	assert.InDelta(t, 4.0/3, comps.Ordered[1].Value, epsTight)
	assert.Equal(t, []float64{1, 0}, column(t, comps.Vectors, 0))
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, comps.ExplainedVarianceRatio, epsTight)

	require.Equal(t, 4, res.Projected.Rows())
	require.Equal(t, 1, res.Projected.Cols())
	assert.InDeltaSlice(t, []float64{math.Sqrt2, 0, -math.Sqrt2, 0}, column(t, res.Projected, 0), epsTight)
}

func TestRun_ShapeForEveryK(t *testing.T) {
	t.Parallel()

	const n, d = 25, 5
	X := correlated(t, n, d, 2)
	for k := 1; k <= d; k++ {
		res, err := pca.Run(X, k)
		require.NoError(t, err, "k=%d", k)
		assert.Equal(t, n, res.Projected.Rows())
		assert.Equal(t, k, res.Projected.Cols())
		assert.Equal(t, d, res.Model.Components.Vectors.Rows())
		assert.Equal(t, k, res.Model.Components.Vectors.Cols())
	}
}

func TestRun_PropertiesOnCorrelatedData(t *testing.T) {
	t.Parallel()

	const n, d = 60, 6
	res, err := pca.Run(correlated(t, n, d, 13), d)
	require.NoError(t, err)
	comps := res.Model.Components

	// Non-increasing eigenvalues.
	for i := 1; i < d; i++ {
		assert.GreaterOrEqual(t, comps.Ordered[i-1].Value, comps.Ordered[i].Value)
	}

	// Ratios over all d components sum to 1.
	sum := 0.0
	for _, r := range comps.ExplainedVarianceRatio {
		sum += r
	}
	assert.InDelta(t, 1, sum, epsTight)
	assert.InDelta(t, 1, comps.Retained(), epsTight)

	// Σλ equals the trace: d·n/(n−1) for population-standardized columns.
	total := 0.0
	for _, p := range comps.Ordered {
		total += p.Value
	}
	assert.InDelta(t, float64(d)*n/(n-1), total, epsLoose)

	// With k = d the projected columns carry all the variance, one eigenvalue each.
	projected := 0.0
	for j := 0; j < d; j++ {
		v := stat.Variance(column(t, res.Projected, j), nil)
		assert.InDelta(t, comps.Values[j], v, epsLoose, "component %d", j)
		projected += v
	}
	assert.InDelta(t, total, projected, epsLoose)
}

func TestRun_RepeatableUpToSign(t *testing.T) {
	t.Parallel()

	X := correlated(t, 40, 4, 31)
	a, err := pca.Run(X, 3)
	require.NoError(t, err)
	b, err := pca.Run(X, 3)
	require.NoError(t, err)

	requireColumnsEqualUpToSign(t, a.Projected, b.Projected, epsTight)
}

func TestRun_SolversAgreeUpToSign(t *testing.T) {
	t.Parallel()

	X := correlated(t, 70, 5, 17)
	jac, err := pca.Run(X, 3)
	require.NoError(t, err)
	gon, err := pca.Run(X, 3, pca.WithSolver(pca.SolverGonum))
	require.NoError(t, err)

	requireColumnsEqualUpToSign(t, jac.Projected, gon.Projected, epsLoose)
}

func TestRun_MatchesGonumPC(t *testing.T) {
	t.Parallel()

	res, err := pca.Run(correlated(t, 45, 4, 23), 4)
	require.NoError(t, err)

	g := toGonum(t, res.Standardized)
	var pc stat.PC
	require.True(t, pc.PrincipalComponents(g, nil))
	vars := pc.VarsTo(nil)

	assert.InDeltaSlice(t, vars, res.Model.Components.Values, epsLoose)
}

func TestRun_ZeroStdPolicies(t *testing.T) {
	t.Parallel()

	X := mustDense(t, [][]float64{{1, 7, 2}, {2, 7, 1}, {3, 7, 5}, {5, 7, 4}})

	_, err := pca.Run(X, 2)
	require.ErrorIs(t, err, pca.ErrDegenerateFeature)

	res, err := pca.Run(X, 2, pca.WithZeroStdPolicy(pca.ZeroStdEpsilon))
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		for _, v := range column(t, res.Projected, j) {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}
	assert.True(t, res.Model.Stats.Substituted[1])
}

func TestRun_InvalidK(t *testing.T) {
	t.Parallel()

	X := correlated(t, 10, 3, 1)
	for _, k := range []int{0, 4} {
		res, err := pca.Run(X, k)
		require.ErrorIs(t, err, pca.ErrInvalidComponentCount)
		assert.Nil(t, res)
	}
}

func TestRun_WithoutStandardization(t *testing.T) {
	t.Parallel()

	// Feature 1 has 100× the spread; without standardization it dominates PC1.
	X := mustDense(t, [][]float64{{1, 100}, {2, -300}, {3, 200}, {4, -100}, {5, 50}})
	res, err := pca.Run(X, 1, pca.WithoutStandardization())
	require.NoError(t, err)

	axis := column(t, res.Model.Components.Vectors, 0)
	assert.Greater(t, math.Abs(axis[1]), 0.99)
}

func TestRun_SolversAgreeOnSmallScaleData(t *testing.T) {
	t.Parallel()

	tiny := scaled(t, mustDense(t, [][]float64{{1, 1}, {2, 2.1}, {3, 2.9}, {4, 4.2}}), 1e-7)
	jac, err := pca.Run(tiny, 1, pca.WithoutStandardization(), pca.WithSignPolicy(pca.SignCanonical))
	require.NoError(t, err)
	gon, err := pca.Run(tiny, 1, pca.WithoutStandardization(), pca.WithSignPolicy(pca.SignCanonical),
		pca.WithSolver(pca.SolverGonum))
	require.NoError(t, err)

	// The two features are strongly correlated: PC1 mixes both axes.
	axis := column(t, jac.Model.Components.Vectors, 0)
	assert.InDelta(t, 0.6917, axis[0], 1e-3)
	assert.InDelta(t, 0.7222, axis[1], 1e-3)
	assert.Greater(t, jac.Model.Components.ExplainedVarianceRatio[0], 0.99)
	requireColumnsEqualUpToSign(t, jac.Model.Components.Vectors, gon.Model.Components.Vectors, epsLoose)
	assert.InDeltaSlice(t, gon.Model.Components.ExplainedVarianceRatio,
		jac.Model.Components.ExplainedVarianceRatio, epsLoose)

	X := scaled(t, correlated(t, 50, 4, 19), 1e-7)
	jac, err = pca.Run(X, 2, pca.WithoutStandardization())
	require.NoError(t, err)
	gon, err = pca.Run(X, 2, pca.WithoutStandardization(), pca.WithSolver(pca.SolverGonum))
	require.NoError(t, err)

	requireColumnsEqualUpToSign(t, jac.Model.Components.Vectors, gon.Model.Components.Vectors, epsLoose)
	assert.InDeltaSlice(t, gon.Model.Components.ExplainedVarianceRatio,
		jac.Model.Components.ExplainedVarianceRatio, epsLoose)
}

func TestModel_Transform(t *testing.T) {
	t.Parallel()

	X := correlated(t, 30, 4, 6)
	res, err := pca.Run(X, 2)
	require.NoError(t, err)

	again, err := res.Model.Transform(X)
	require.NoError(t, err)
	requireAllClose(t, res.Projected, again, epsTight)

	fallback, err := res.Model.Transform(hide{X})
	require.NoError(t, err)
	requireAllClose(t, res.Projected, fallback, epsTight)

	_, err = res.Model.Transform(mustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, pca.ErrInvalidDimension)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilModel *pca.Model
	_, err = nilModel.Transform(X)
	require.ErrorIs(t, err, pca.ErrInvalidDimension)
}

func TestFit_MatchesRun(t *testing.T) {
	t.Parallel()

	X := correlated(t, 20, 3, 44)
	m, err := pca.Fit(X, 2)
	require.NoError(t, err)
	res, err := pca.Run(X, 2)
	require.NoError(t, err)

	assert.Equal(t, res.Model.Stats, m.Stats)
	assert.Equal(t, res.Model.Components.Values, m.Components.Values)
}

func TestRun_LogsStages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := pca.Run(mustDense(t, square), 1, pca.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	for _, stage := range []string{
		pca.StageStandardize, pca.StageCovariance, pca.StageEigen, pca.StageSelect, pca.StageProject,
	} {
		assert.Contains(t, out, "stage="+stage)
	}
}
