// SPDX-License-Identifier: MIT
package coarsen

import "github.com/katalvlaran/lamg/matrix"

// GaussSeidel runs a forward sweep smoother on a symmetric sparse operator
// A, for every problem column k of X and its matching residual column in R,
// repeated nu times. Symmetry lets the smoother read "row i" by scanning
// column i: for each row i it first locates the stored diagonal a_ii (via
// SparseCSC.Diagonal, never assumed to sit at a known offset), then applies
// delta = R[i,k]/a_ii, updates X[i,k] += delta, zeroes R[i,k], and propagates
// -delta*A[m,i] into every other row m touched by column i.
//
// With nu == 0, X and R are returned unchanged. The smoother assumes every
// diagonal entry is non-zero; ErrMissingDiagonal is returned if a row has no
// stored diagonal.
//
// Stage 1 (Validate): A square, X and R share A's row count and each other's
// column count.
// Stage 2 (Execute): for each sweep, for each row (row-major, lexicographic
// order), find the diagonal and apply the update across every problem column.
// Complexity: O(nu * p * nnz), i.e. O(p * degree(i)) per row visited.
func GaussSeidel(a *matrix.SparseCSC, x, r *matrix.Dense, nu int) (*matrix.Dense, *matrix.Dense, error) {
	if a == nil || x == nil || r == nil {
		return nil, nil, coarsenErrorf("GaussSeidel", ErrType)
	}
	n := a.Rows()
	if a.Cols() != n {
		return nil, nil, coarsenErrorf("GaussSeidel", ErrShape)
	}
	if x.Rows() != n || r.Rows() != n || x.Cols() != r.Cols() {
		return nil, nil, coarsenErrorf("GaussSeidel", ErrShape)
	}

	newX := x.Clone().(*matrix.Dense)
	newR := r.Clone().(*matrix.Dense)

	p := x.Cols()

	for s := 0; s < nu; s++ {
		for i := 0; i < n; i++ {
			aii, err := a.Diagonal(i)
			if err != nil {
				return nil, nil, coarsenErrorf("GaussSeidel", err)
			}
			rows, vals, err := a.Column(i)
			if err != nil {
				return nil, nil, coarsenErrorf("GaussSeidel", err)
			}

			for k := 0; k < p; k++ {
				rik, err := newR.At(i, k)
				if err != nil {
					return nil, nil, coarsenErrorf("GaussSeidel", err)
				}
				delta := rik / aii

				xik, err := newX.At(i, k)
				if err != nil {
					return nil, nil, coarsenErrorf("GaussSeidel", err)
				}
				if err := newX.Set(i, k, xik+delta); err != nil {
					return nil, nil, coarsenErrorf("GaussSeidel", err)
				}

				for p2, m := range rows {
					if m == i {
						if err := newR.Set(i, k, 0); err != nil {
							return nil, nil, coarsenErrorf("GaussSeidel", err)
						}
						continue
					}
					rmk, err := newR.At(m, k)
					if err != nil {
						return nil, nil, coarsenErrorf("GaussSeidel", err)
					}
					if err := newR.Set(m, k, rmk-delta*vals[p2]); err != nil {
						return nil, nil, coarsenErrorf("GaussSeidel", err)
					}
				}
			}
		}
	}

	return newX, newR, nil
}
