// SPDX-License-Identifier: MIT
package coarsen

import (
	"sort"

	"github.com/katalvlaran/lamg/matrix"
)

// Caliber1R is the restriction operator for a caliber-1 (piecewise-constant)
// aggregation: since every fine row has exactly one non-zero, it is stored
// as a per-fine-node coarse index plus a per-fine-node weight rather than a
// full SparseCSC.
type Caliber1R struct {
	// RowIdx[i] is the 0-based coarse index fine node i maps to.
	RowIdx []int
	// Values[i] is the restriction weight for fine node i (typically 1).
	Values []float64
}

// GalerkinCaliber1 computes the coarse Galerkin operator B = R*A*P (N x N)
// for a caliber-1 restriction R, by streaming: for each coarse column J, for
// each fine node j aggregated into J (from P(:,J)), for each fine neighbor i
// of j (from A(:,j)), accumulate R.Values[i]*A[i,j]*P[j,J] into B[R.RowIdx[i], J].
//
// Stage 1 (Validate): A square n x n, P has n rows, R has length n.
// Stage 2 (Execute): for each coarse column, accumulate contributions into a
// dense length-N scratch (the sparse accumulator / SPA pattern), tracking
// which rows were touched.
// Stage 3 (Finalize): sort each column's touched rows ascending and emit
// them, clearing the scratch for reuse by the next column.
// Complexity: O(nnz(P) * maxDegree(A)) amortized.
func GalerkinCaliber1(p *matrix.SparseCSC, a *matrix.SparseCSC, r *Caliber1R) (*matrix.SparseCSC, error) {
	if p == nil || a == nil || r == nil {
		return nil, coarsenErrorf("GalerkinCaliber1", ErrType)
	}
	n := a.Rows()
	if a.Cols() != n || p.Rows() != n {
		return nil, coarsenErrorf("GalerkinCaliber1", ErrShape)
	}
	if len(r.RowIdx) != n || len(r.Values) != n {
		return nil, coarsenErrorf("GalerkinCaliber1", ErrShape)
	}
	bigN := p.Cols()
	for _, ci := range r.RowIdx {
		if ci < 0 || ci >= bigN {
			return nil, coarsenErrorf("GalerkinCaliber1", ErrCount)
		}
	}

	scratch := make([]float64, bigN)
	inColumn := make([]bool, bigN)
	var touched []int

	colPtr := make([]int, bigN+1)
	var rowIdx []int
	var values []float64

	for bigJ := 0; bigJ < bigN; bigJ++ {
		fineRows, fineVals, err := p.Column(bigJ)
		if err != nil {
			return nil, coarsenErrorf("GalerkinCaliber1", err)
		}
		for pIdx, j := range fineRows {
			pVal := fineVals[pIdx]
			neighRows, neighVals, err := a.Column(j)
			if err != nil {
				return nil, coarsenErrorf("GalerkinCaliber1", err)
			}
			for aIdx, i := range neighRows {
				coarseI := r.RowIdx[i]
				contribution := r.Values[i] * neighVals[aIdx] * pVal
				if !inColumn[coarseI] {
					inColumn[coarseI] = true
					touched = append(touched, coarseI)
				}
				scratch[coarseI] += contribution
			}
		}

		sort.Ints(touched)
		for _, row := range touched {
			rowIdx = append(rowIdx, row)
			values = append(values, scratch[row])
			scratch[row] = 0
			inColumn[row] = false
		}
		colPtr[bigJ+1] = len(rowIdx)
		touched = touched[:0]
	}

	return matrix.NewSparseCSC(bigN, bigN, colPtr, rowIdx, values)
}
