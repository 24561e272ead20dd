// SPDX-License-Identifier: Apache-2.0
package coarsen_test

import (
	"testing"

	"github.com/katalvlaran/lamg/coarsen"
	"github.com/katalvlaran/lamg/matrix"
	"github.com/stretchr/testify/require"
)

// TestAffinityMatrix_SeedCase: n=3, X=[[1,0],[1,0],[0,1]], W full minus
// diagonal. Expected C[0,1]=1, C[0,2]=0, C[1,2]=0.
func TestAffinityMatrix_SeedCase(t *testing.T) {
	t.Parallel()

	x, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	rows := [][2]float64{{1, 0}, {1, 0}, {0, 1}}
	for i, row := range rows {
		require.NoError(t, x.Set(i, 0, row[0]))
		require.NoError(t, x.Set(i, 1, row[1]))
	}

	var wEntries []matrix.Triplet
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				wEntries = append(wEntries, matrix.Triplet{Row: i, Col: j, Value: 1})
			}
		}
	}
	w, err := matrix.NewSparseCSCFromTriplets(3, 3, wEntries)
	require.NoError(t, err)

	c, err := coarsen.AffinityMatrix(w, x)
	require.NoError(t, err)

	v01, err := c.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, v01, 1e-12)

	v02, err := c.At(0, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.0, v02, 1e-12)

	v12, err := c.At(1, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.0, v12, 1e-12)
}

func TestAffinityMatrix_SamePatternAsW(t *testing.T) {
	t.Parallel()

	x, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.NoError(t, x.Set(0, 0, 3))
	require.NoError(t, x.Set(1, 0, 4))

	w, err := matrix.NewSparseCSC(2, 2, []int{0, 1, 2}, []int{1, 0}, []float64{2, 2})
	require.NoError(t, err)

	c, err := coarsen.AffinityMatrix(w, x)
	require.NoError(t, err)
	require.Equal(t, w.ColPtr, c.ColPtr)
	require.Equal(t, w.RowIdx, c.RowIdx)
}
