// SPDX-License-Identifier: MIT
package coarsen

import (
	"math"

	"github.com/katalvlaran/lamg/matrix"
)

// AbsFlag selects whether FilterSmallEntries compares raw or absolute entry
// values against the threshold.
type AbsFlag int

const (
	// ValueFlag compares A[i,j] directly.
	ValueFlag AbsFlag = iota
	// AbsFlagAbs compares |A[i,j]|.
	AbsFlagAbs
)

// BoundType selects how FilterSmallEntries combines the two endpoints of an
// entry's bound vector.
type BoundType int

const (
	// MaxBound uses max(b_i, b_j) as the threshold multiplier.
	MaxBound BoundType = iota
	// MinBound uses min(b_i, b_j) as the threshold multiplier.
	MinBound
)

// absSelector resolves the AbsFlag enum to a function once at entry, per the
// design note against per-entry dynamic dispatch.
func absSelector(flag AbsFlag) (func(float64) float64, error) {
	switch flag {
	case ValueFlag:
		return func(v float64) float64 { return v }, nil
	case AbsFlagAbs:
		return math.Abs, nil
	default:
		return nil, ErrEnumeration
	}
}

// boundSelector resolves the BoundType enum to a function once at entry.
func boundSelector(bt BoundType) (func(x, y float64) float64, error) {
	switch bt {
	case MaxBound:
		return math.Max, nil
	case MinBound:
		return math.Min, nil
	default:
		return nil, ErrEnumeration
	}
}

// FilterSmallEntries prunes A's sparsity pattern, keeping only entries with
// f(A[i,j]) >= delta * g(b[j], b[i]), where f is selected by absFlag and g by
// boundType. The diagonal is treated identically to off-diagonal entries,
// and row ordering within each retained column is preserved from A.
//
// Stage 1 (Validate): A square, len(b) == A.Rows(), enum selectors resolve.
// Stage 2 (Execute): for each column, re-test each stored entry against the
// threshold and keep the ones that pass.
// Complexity: O(nnz).
func FilterSmallEntries(a *matrix.SparseCSC, b []float64, delta float64, absFlag AbsFlag, boundType BoundType) (*matrix.SparseCSC, error) {
	if a == nil {
		return nil, coarsenErrorf("FilterSmallEntries", ErrType)
	}
	if a.Rows() != a.Cols() {
		return nil, coarsenErrorf("FilterSmallEntries", ErrShape)
	}
	if len(b) != a.Rows() {
		return nil, coarsenErrorf("FilterSmallEntries", ErrShape)
	}
	f, err := absSelector(absFlag)
	if err != nil {
		return nil, coarsenErrorf("FilterSmallEntries", err)
	}
	g, err := boundSelector(boundType)
	if err != nil {
		return nil, coarsenErrorf("FilterSmallEntries", err)
	}

	n := a.Cols()
	colPtr := make([]int, n+1)
	var rowIdx []int
	var values []float64

	for j := 0; j < n; j++ {
		rows, vals, err := a.Column(j)
		if err != nil {
			return nil, coarsenErrorf("FilterSmallEntries", err)
		}
		for p, i := range rows {
			bound := g(b[j], b[i])
			if f(vals[p]) >= delta*bound {
				rowIdx = append(rowIdx, i)
				values = append(values, vals[p])
			}
		}
		colPtr[j+1] = len(rowIdx)
	}

	return matrix.NewSparseCSC(a.Rows(), n, colPtr, rowIdx, values)
}
