// SPDX-License-Identifier: Apache-2.0
package matrix_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lamg/matrix"
	"github.com/stretchr/testify/require"
)

func TestWriteMatrixMarket_Format(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewSparseCSC(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1.5, 2.5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteMatrixMarket(&buf, a))

	want := "2 2 2\n1 1 1.500000\n2 2 2.500000\n"
	require.Equal(t, want, buf.String())
}

func TestMatrixMarket_RoundTrip(t *testing.T) {
	t.Parallel()

	entries := []matrix.Triplet{
		{Row: 0, Col: 0, Value: 4},
		{Row: 2, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 3},
		{Row: 0, Col: 2, Value: 7},
		{Row: 2, Col: 2, Value: 2},
	}
	a, err := matrix.NewSparseCSCFromTriplets(3, 3, entries)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteMatrixMarket(&buf, a))

	b, err := matrix.ReadMatrixMarket(&buf)
	require.NoError(t, err)

	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	require.Equal(t, a.RowIdx, b.RowIdx)
	require.Equal(t, a.Values, b.Values)
	require.Equal(t, a.ColPtr, b.ColPtr)
}
