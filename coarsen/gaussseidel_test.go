// SPDX-License-Identifier: Apache-2.0
package coarsen_test

import (
	"testing"

	"github.com/katalvlaran/lamg/coarsen"
	"github.com/katalvlaran/lamg/matrix"
	"github.com/stretchr/testify/require"
)

func diagMatrix(vals []float64) (*matrix.SparseCSC, error) {
	n := len(vals)
	colPtr := make([]int, n+1)
	rowIdx := make([]int, n)
	for i := 0; i < n; i++ {
		colPtr[i+1] = i + 1
		rowIdx[i] = i
	}
	return matrix.NewSparseCSC(n, n, colPtr, rowIdx, vals)
}

// TestGaussSeidel_SeedCase: A=diag(2,2), R=[2,4], X=[0,0], nu=1 yields
// X=[1,2], R=[0,0].
func TestGaussSeidel_SeedCase(t *testing.T) {
	t.Parallel()

	a, err := diagMatrix([]float64{2, 2})
	require.NoError(t, err)

	x, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	r, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.NoError(t, r.Set(0, 0, 2))
	require.NoError(t, r.Set(1, 0, 4))

	newX, newR, err := coarsen.GaussSeidel(a, x, r, 1)
	require.NoError(t, err)

	v0, err := newX.At(0, 0)
	require.NoError(t, err)
	v1, err := newX.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v0)
	require.Equal(t, 2.0, v1)

	rv0, err := newR.At(0, 0)
	require.NoError(t, err)
	rv1, err := newR.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, rv0)
	require.Equal(t, 0.0, rv1)
}

func TestGaussSeidel_ZeroSweepsNoOp(t *testing.T) {
	t.Parallel()

	a, err := diagMatrix([]float64{2, 2})
	require.NoError(t, err)

	x, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.NoError(t, x.Set(0, 0, 5))
	r, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.NoError(t, r.Set(0, 0, 7))

	newX, newR, err := coarsen.GaussSeidel(a, x, r, 0)
	require.NoError(t, err)

	v, err := newX.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
	rv, err := newR.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, rv)
}

func TestGaussSeidel_MissingDiagonal(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewEmptySparseCSC(2, 2)
	require.NoError(t, err)
	x, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	r, err := matrix.NewDense(2, 1)
	require.NoError(t, err)

	_, _, err = coarsen.GaussSeidel(a, x, r, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, matrix.ErrMissingDiagonal)
}
