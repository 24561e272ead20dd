// SPDX-License-Identifier: MIT
package coarsen

import "github.com/katalvlaran/lamg/matrix"

// LowDegreeSweep marks an independent set of low-degree nodes in A. For each
// candidate i (1-based) with status[i] == Unmarked, it scans A(:,i): if any
// neighbor already carries LowDegree, i is marked NotEliminated; otherwise i
// itself becomes LowDegree and every other neighbor is marked NotEliminated
// (overwriting whatever status it previously held). The result is that the
// set of LowDegree nodes forms an independent set in A's graph.
//
// A is read per the open question in the design notes as a plain
// adjacency-aware CSC matrix, not a dense array: it is expected to carry the
// same symmetric pattern the other kernels use, with "row i" read via
// column i.
//
// Stage 1 (Validate): A square, len(status) == A.Rows().
// Stage 2 (Execute): visit candidates in order, applying the marking rule.
// Complexity: O(numCandidates * maxDegree).
func LowDegreeSweep(a *matrix.SparseCSC, status []int, candidates []int) ([]int, error) {
	if a == nil {
		return nil, coarsenErrorf("LowDegreeSweep", ErrType)
	}
	if a.Rows() != a.Cols() {
		return nil, coarsenErrorf("LowDegreeSweep", ErrShape)
	}
	if len(status) != a.Rows() {
		return nil, coarsenErrorf("LowDegreeSweep", ErrShape)
	}

	newStatus := append([]int(nil), status...)

	for _, cand := range candidates {
		i := cand - 1
		if i < 0 || i >= a.Rows() {
			return nil, coarsenErrorf("LowDegreeSweep", ErrCount)
		}
		if newStatus[i] != int(Unmarked) {
			continue
		}

		rows, _, err := a.Column(i)
		if err != nil {
			return nil, coarsenErrorf("LowDegreeSweep", err)
		}

		hasLowDegreeNeighbor := false
		for _, j := range rows {
			if j != i && newStatus[j] == int(LowDegree) {
				hasLowDegreeNeighbor = true
				break
			}
		}

		if hasLowDegreeNeighbor {
			newStatus[i] = int(NotEliminated)
			continue
		}

		newStatus[i] = int(LowDegree)
		for _, j := range rows {
			if j != i {
				newStatus[j] = int(NotEliminated)
			}
		}
	}

	return newStatus, nil
}
