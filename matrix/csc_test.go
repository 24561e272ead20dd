// SPDX-License-Identifier: Apache-2.0
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lamg/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewSparseCSC_Valid(t *testing.T) {
	t.Parallel()

	// 3x3 identity.
	a, err := matrix.NewSparseCSC(3, 3, []int{0, 1, 2, 3}, []int{0, 1, 2}, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 3, a.NNZ())

	v, err := a.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = a.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestNewSparseCSC_BadColPtr(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewSparseCSC(2, 2, []int{1, 1, 2}, []int{0, 1}, []float64{1, 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, matrix.ErrBadCSC))
}

func TestNewSparseCSC_UnsortedRows(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewSparseCSC(2, 1, []int{0, 2}, []int{1, 0}, []float64{1, 2})
	require.Error(t, err)
	require.True(t, errors.Is(err, matrix.ErrBadCSC))
}

func TestNewSparseCSC_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewSparseCSC(2, 2, []int{0, 1}, []int{0}, []float64{1})
	require.Error(t, err)
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestNewSparseCSCFromTriplets_SortsAndMerges(t *testing.T) {
	t.Parallel()

	entries := []matrix.Triplet{
		{Row: 2, Col: 0, Value: 1},
		{Row: 0, Col: 0, Value: 2},
		{Row: 0, Col: 0, Value: 3}, // duplicate, should sum with the entry above
	}
	a, err := matrix.NewSparseCSCFromTriplets(3, 1, entries)
	require.NoError(t, err)

	rows, vals, err := a.Column(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, rows)
	require.Equal(t, []float64{5, 1}, vals)
}

func TestSparseCSC_Diagonal(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewSparseCSC(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{4, 5})
	require.NoError(t, err)

	d, err := a.Diagonal(1)
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	_, err = matrix.NewSparseCSC(2, 2, []int{0, 0, 1}, []int{0}, []float64{9})
	require.NoError(t, err)
	b, err := matrix.NewSparseCSC(2, 2, []int{0, 0, 1}, []int{0}, []float64{9})
	require.NoError(t, err)
	_, err = b.Diagonal(0)
	require.Error(t, err)
	require.True(t, errors.Is(err, matrix.ErrMissingDiagonal))
}

func TestSparseCSC_Clone(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewSparseCSC(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{4, 5})
	require.NoError(t, err)
	clone := a.Clone()
	clone.Values[0] = 99

	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}
