// SPDX-License-Identifier: MIT
package coarsen

import (
	"fmt"

	"github.com/katalvlaran/lamg/matrix"
)

// EliminationOperators builds the restriction matrix R (nc x nf) and the
// diagonal rescaling q (length nf) for an F/C split of A. f lists the
// 1-based fine-node ids to eliminate, in the column order they take in R;
// cIndex maps every node (0-based, length A.Rows()) to its 1-based position
// in C, or 0 if the node is in F; nc is the number of coarse nodes (len(C)).
//
// For each F-node j (R-column ff):
//   - q[ff] = 1/A[j,j]; the diagonal must be stored or ErrMissingDiagonal is
//     returned (per the design note, the diagonal is never assumed present
//     at a known offset).
//   - every off-diagonal A[i,j] with cIndex[i] > 0 contributes
//     R[cIndex[i]-1, ff] = A[i,j] * (-1/A[j,j]).
//   - entries with cIndex[i] == 0 (an F-neighbor of j) are dropped; callers
//     must choose F independent in A's graph for this to be lossless.
//
// Stage 1 (Validate): A square, len(cIndex) == A.Rows(), nc > 0.
// Stage 2 (Execute): for each F-node, read its diagonal and scan its column,
// collecting scaled entries for coarse neighbors.
// Stage 3 (Finalize): assemble R via NewSparseCSCFromTriplets.
// Complexity: O(nf * maxDegree).
func EliminationOperators(a *matrix.SparseCSC, f []int, cIndex []int, nc int) (*matrix.SparseCSC, []float64, error) {
	if a == nil {
		return nil, nil, coarsenErrorf("EliminationOperators", ErrType)
	}
	if a.Rows() != a.Cols() {
		return nil, nil, coarsenErrorf("EliminationOperators", ErrShape)
	}
	if len(cIndex) != a.Rows() {
		return nil, nil, coarsenErrorf("EliminationOperators", ErrShape)
	}
	if nc <= 0 {
		return nil, nil, coarsenErrorf("EliminationOperators", ErrRange)
	}

	nf := len(f)
	q := make([]float64, nf)
	entries := make([]matrix.Triplet, 0, nf*2)

	for ff, node1 := range f {
		j := node1 - 1
		if j < 0 || j >= a.Rows() {
			return nil, nil, coarsenErrorf("EliminationOperators", ErrCount)
		}
		ajj, err := a.Diagonal(j)
		if err != nil {
			return nil, nil, coarsenErrorf("EliminationOperators", fmt.Errorf("F-node %d: %w", node1, err))
		}
		q[ff] = 1 / ajj
		scale := -1 / ajj

		rows, vals, err := a.Column(j)
		if err != nil {
			return nil, nil, coarsenErrorf("EliminationOperators", err)
		}
		for p, i := range rows {
			if i == j {
				continue
			}
			ci := cIndex[i]
			if ci <= 0 {
				continue
			}
			entries = append(entries, matrix.Triplet{Row: ci - 1, Col: ff, Value: vals[p] * scale})
		}
	}

	r, err := matrix.NewSparseCSCFromTriplets(nc, nf, entries, matrix.WithSumDuplicates(false))
	if err != nil {
		return nil, nil, coarsenErrorf("EliminationOperators", err)
	}

	return r, q, nil
}
