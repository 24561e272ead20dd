// SPDX-License-Identifier: MIT
package coarsen

import (
	"math"

	"github.com/katalvlaran/lamg/matrix"
)

// UndecidedNodes bins candidate nodes by the weight of their strongest open
// neighbor. candidates are 1-based node identifiers, matching the external
// boundary convention; isOpen has length A.Rows(). Bins are returned in
// increasing-strength order (bin 0 = weakest), each holding 1-based node ids
// in the order they appeared in candidates. A candidate with no open
// neighbor is dropped. If no candidate is retained, the returned slice is
// empty (it holds no bins at all).
//
// Stage 1 (Validate): A square, len(isOpen) == A.Rows(), numBins > 0.
// Stage 2 (Execute): for each candidate, scan its column for the strongest
// open neighbor, tracking the global min/max.
// Stage 3 (Execute): bucket retained candidates into numBins equal-width
// half-open intervals spanning [min,max], last bin closed.
// Complexity: O(numCandidates * maxDegree).
func UndecidedNodes(a *matrix.SparseCSC, candidates []int, isOpen []bool, numBins int) ([][]int, error) {
	if a == nil {
		return nil, coarsenErrorf("UndecidedNodes", ErrType)
	}
	if a.Rows() != a.Cols() {
		return nil, coarsenErrorf("UndecidedNodes", ErrShape)
	}
	if len(isOpen) != a.Rows() {
		return nil, coarsenErrorf("UndecidedNodes", ErrShape)
	}
	if numBins <= 0 {
		return nil, coarsenErrorf("UndecidedNodes", ErrRange)
	}

	type retained struct {
		id  int // 1-based
		max float64
	}
	var kept []retained
	minVal, maxVal := math.Inf(1), math.Inf(-1)

	for _, cand := range candidates {
		j := cand - 1
		if j < 0 || j >= a.Cols() {
			return nil, coarsenErrorf("UndecidedNodes", ErrCount)
		}
		rows, vals, err := a.Column(j)
		if err != nil {
			return nil, coarsenErrorf("UndecidedNodes", err)
		}
		found := false
		ajMax := math.Inf(-1)
		for p, i := range rows {
			if i < len(isOpen) && isOpen[i] {
				found = true
				if vals[p] > ajMax {
					ajMax = vals[p]
				}
			}
		}
		if !found {
			continue
		}
		kept = append(kept, retained{id: cand, max: ajMax})
		if ajMax < minVal {
			minVal = ajMax
		}
		if ajMax > maxVal {
			maxVal = ajMax
		}
	}

	if len(kept) == 0 {
		return [][]int{}, nil
	}
	bins := make([][]int, numBins)
	for i := range bins {
		bins[i] = []int{}
	}

	width := maxVal - minVal
	degenerate := math.Abs(width) < 1e-15
	for _, r := range kept {
		var idx int
		if degenerate {
			idx = 0
		} else {
			idx = int(math.Floor(float64(numBins) * (r.max - minVal) / width))
			if idx >= numBins {
				idx = numBins - 1
			}
			if idx < 0 {
				idx = 0
			}
		}
		bins[idx] = append(bins[idx], r.id)
	}

	return bins, nil
}
