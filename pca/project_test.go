// SPDX-License-Identifier: MIT

package pca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/pca"
)

func TestProject_Product(t *testing.T) {
	t.Parallel()

	X := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	W := mustDense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})

	for name, in := range map[string]matrix.Matrix{"dense": X, "fallback": hide{X}} {
		Y, err := pca.Project(in, W)
		require.NoError(t, err, name)
		require.Equal(t, 2, Y.Rows())
		require.Equal(t, 2, Y.Cols())
		assert.Equal(t, []float64{4, 10}, column(t, Y, 0), name)
		assert.Equal(t, []float64{5, 11}, column(t, Y, 1), name)
	}
}

func TestProject_DimensionMismatch(t *testing.T) {
	t.Parallel()

	X := mustDense(t, [][]float64{{1, 2, 3}})
	W := mustDense(t, [][]float64{{1}, {0}})

	_, err := pca.Project(X, W)
	require.ErrorIs(t, err, pca.ErrInvalidDimension)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var de *pca.InvalidDimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, pca.StageProject, de.Stage)
	assert.Equal(t, 3, de.Want)
	assert.Equal(t, 2, de.Got)

	_, err = pca.Project(nil, W)
	require.ErrorIs(t, err, pca.ErrInvalidDimension)
	_, err = pca.Project(X, nil)
	require.ErrorIs(t, err, pca.ErrInvalidDimension)
}
