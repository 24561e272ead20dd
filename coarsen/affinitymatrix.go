// SPDX-License-Identifier: MIT
package coarsen

import "github.com/katalvlaran/lamg/matrix"

// AffinityMatrix computes an edge-wise squared-cosine similarity over test
// vectors: for every entry (i,j) in W's sparsity pattern,
//
//	C[i,j] = <X_i,X_j>^2 / (||X_i||^2 * ||X_j||^2)
//
// where X_i is the i-th row of X. Row norms are precomputed once. The
// contract forbids rows of X with zero norm; passing one produces a
// division by zero rather than an error, matching the source.
//
// Stage 1 (Validate): W square, X.Rows() == W.Rows().
// Stage 2 (Prepare): precompute ||X_i||^2 for every row once.
// Stage 3 (Execute): for each stored (i,j), compute the squared cosine.
// Complexity: O(n*p + nnz*p).
func AffinityMatrix(w *matrix.SparseCSC, x *matrix.Dense) (*matrix.SparseCSC, error) {
	if w == nil || x == nil {
		return nil, coarsenErrorf("AffinityMatrix", ErrType)
	}
	if w.Rows() != w.Cols() {
		return nil, coarsenErrorf("AffinityMatrix", ErrShape)
	}
	n := w.Rows()
	if x.Rows() != n {
		return nil, coarsenErrorf("AffinityMatrix", ErrShape)
	}
	p := x.Cols()

	normSq := make([]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for k := 0; k < p; k++ {
			v, err := x.At(i, k)
			if err != nil {
				return nil, coarsenErrorf("AffinityMatrix", err)
			}
			s += v * v
		}
		normSq[i] = s
	}

	colPtr := make([]int, n+1)
	rowIdx := make([]int, 0, w.NNZ())
	values := make([]float64, 0, w.NNZ())

	for j := 0; j < n; j++ {
		rows, _, err := w.Column(j)
		if err != nil {
			return nil, coarsenErrorf("AffinityMatrix", err)
		}
		for _, i := range rows {
			var inner float64
			for k := 0; k < p; k++ {
				xi, err := x.At(i, k)
				if err != nil {
					return nil, coarsenErrorf("AffinityMatrix", err)
				}
				xj, err := x.At(j, k)
				if err != nil {
					return nil, coarsenErrorf("AffinityMatrix", err)
				}
				inner += xi * xj
			}
			cij := (inner * inner) / normSq[i] / normSq[j]
			rowIdx = append(rowIdx, i)
			values = append(values, cij)
		}
		colPtr[j+1] = len(rowIdx)
	}

	return matrix.NewSparseCSC(n, n, colPtr, rowIdx, values)
}
