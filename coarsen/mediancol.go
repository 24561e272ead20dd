// SPDX-License-Identifier: MIT
package coarsen

import (
	"sort"

	"github.com/katalvlaran/lamg/matrix"
)

// MedianCol computes, for each column j of A, the median of x restricted to
// the rows A stores a nonzero pattern entry for: y[j] = median({x[i] :
// A[i,j] != 0}). An empty column yields y[j] = 0.
//
// The median of a k-element set is its floor(k/2)-th order statistic
// (0-based) — the upper median for even k — matching the source's
// nth_element-based selection rather than an averaged-midpoint convention.
// Because it is an order statistic rather than an average, the result is
// invariant under any permutation of the rows within a column.
//
// Stage 1 (Validate): A square, len(x) == A.Rows().
// Stage 2 (Execute): for each column, gather x[row_idx] and select the
// floor(k/2)-th smallest value.
// Complexity: O(n + nnz log(max column degree)).
func MedianCol(a *matrix.SparseCSC, x []float64) ([]float64, error) {
	if a == nil {
		return nil, coarsenErrorf("MedianCol", ErrType)
	}
	if a.Rows() != a.Cols() {
		return nil, coarsenErrorf("MedianCol", ErrShape)
	}
	if len(x) != a.Rows() {
		return nil, coarsenErrorf("MedianCol", ErrShape)
	}

	n := a.Cols()
	y := make([]float64, n)

	for j := 0; j < n; j++ {
		rows, _, err := a.Column(j)
		if err != nil {
			return nil, coarsenErrorf("MedianCol", err)
		}
		if len(rows) == 0 {
			continue
		}
		z := make([]float64, len(rows))
		for p, r := range rows {
			z[p] = x[r]
		}
		sort.Float64s(z)
		y[j] = z[len(z)/2]
	}

	return y, nil
}
