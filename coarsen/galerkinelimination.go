// SPDX-License-Identifier: MIT
package coarsen

import (
	"sort"

	"github.com/katalvlaran/lamg/matrix"
)

// GalerkinElimination computes the Schur-complement-like coarse operator
// B = A(C,C) + R*A(F,C) under an elimination split: A is the fine operator,
// R is the restriction built by EliminationOperators (nc-positions x nf),
// status classifies every node (LowDegree marks F-nodes), c lists the
// 1-based node id at each 0-based position in C, and index maps every node
// (0-based) to its 1-based position in B (for C-nodes) or in F (for
// F-nodes, matching R's column ordering).
//
// For each coarse column cc (C-node j = c[cc]-1):
//   - every C-neighbor i of j contributes A[i,j] directly to B[index[i]-1,cc].
//   - every F-neighbor i of j (its F-position m = index[i]-1) is expanded
//     through R's column m: each stored (posInC, w) there names the C-node
//     c[posInC], contributing A[i,j]*w to B[index[c[posInC]-1]-1, cc].
//
// Stage 1 (Validate): A square, len(status)==len(index)==A.Rows(), R has
// len(c) rows.
// Stage 2 (Execute): for each coarse column, accumulate both contribution
// kinds into a dense length-nc scratch (SPA pattern).
// Stage 3 (Finalize): sort each column's touched rows ascending and emit.
// Complexity: O(nc * (maxDegree(A) + maxDegree(R))).
func GalerkinElimination(a *matrix.SparseCSC, r *matrix.SparseCSC, status []int, c []int, index []int) (*matrix.SparseCSC, error) {
	if a == nil || r == nil {
		return nil, coarsenErrorf("GalerkinElimination", ErrType)
	}
	n := a.Rows()
	if a.Cols() != n {
		return nil, coarsenErrorf("GalerkinElimination", ErrShape)
	}
	if len(status) != n || len(index) != n {
		return nil, coarsenErrorf("GalerkinElimination", ErrShape)
	}
	nc := len(c)
	if nc == 0 {
		return nil, coarsenErrorf("GalerkinElimination", ErrCount)
	}
	if r.Rows() != nc {
		return nil, coarsenErrorf("GalerkinElimination", ErrShape)
	}

	scratch := make([]float64, nc)
	inColumn := make([]bool, nc)
	var touched []int

	colPtr := make([]int, nc+1)
	var rowIdx []int
	var values []float64

	for cc := 0; cc < nc; cc++ {
		j := c[cc] - 1
		if j < 0 || j >= n {
			return nil, coarsenErrorf("GalerkinElimination", ErrCount)
		}
		rows, vals, err := a.Column(j)
		if err != nil {
			return nil, coarsenErrorf("GalerkinElimination", err)
		}
		for p, i := range rows {
			if status[i] != int(LowDegree) {
				bPos := index[i] - 1
				if bPos < 0 || bPos >= nc {
					return nil, coarsenErrorf("GalerkinElimination", ErrCount)
				}
				if !inColumn[bPos] {
					inColumn[bPos] = true
					touched = append(touched, bPos)
				}
				scratch[bPos] += vals[p]
				continue
			}

			m := index[i] - 1
			rRows, rVals, err := r.Column(m)
			if err != nil {
				return nil, coarsenErrorf("GalerkinElimination", err)
			}
			for rp, posInC := range rRows {
				if posInC < 0 || posInC >= nc {
					return nil, coarsenErrorf("GalerkinElimination", ErrCount)
				}
				nodeID := c[posInC]
				if nodeID < 1 || nodeID > n {
					return nil, coarsenErrorf("GalerkinElimination", ErrCount)
				}
				bPos := index[nodeID-1] - 1
				if bPos < 0 || bPos >= nc {
					return nil, coarsenErrorf("GalerkinElimination", ErrCount)
				}
				if !inColumn[bPos] {
					inColumn[bPos] = true
					touched = append(touched, bPos)
				}
				scratch[bPos] += vals[p] * rVals[rp]
			}
		}

		sort.Ints(touched)
		for _, row := range touched {
			rowIdx = append(rowIdx, row)
			values = append(values, scratch[row])
			scratch[row] = 0
			inColumn[row] = false
		}
		colPtr[cc+1] = len(rowIdx)
		touched = touched[:0]
	}

	return matrix.NewSparseCSC(nc, nc, colPtr, rowIdx, values)
}
