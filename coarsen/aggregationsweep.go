// SPDX-License-Identifier: MIT
package coarsen

import "github.com/katalvlaran/lamg/matrix"

// AggregationResult holds the outputs of AggregationSweep: fresh copies of
// every buffer the sweep updates, leaving the caller's originals untouched.
type AggregationResult struct {
	Status         []int
	AggregateSize  []int
	X              *matrix.Dense
	X2             *matrix.Dense
	NumAggregates  int
}

// AggregationSweep greedily grows aggregates by pairing undecided nodes with
// admissible seeds, processing bins (as produced by UndecidedNodes) from the
// highest index to the lowest and, within a bin, in the order UndecidedNodes
// emitted its node ids.
//
// status holds, per 0-based node index, Undecided (-1), Seed (0), or
// AggregatedInto(seedIdx) for a node that joined seedIdx's aggregate.
// aggregateSize holds the current size of the aggregate a node is the seed
// of; it is only meaningful for nodes with status == Seed.
//
// Every energy computation reads from newX/newX2, the sweep's own evolving
// copies, not from the caller's x/x2: once a node is folded into a seed, its
// row is overwritten in place, and any later node sharing that node as a
// W-neighbor (in the same bin or a later-processed one) must see the
// post-aggregation value, exactly as the source mutates a single x/x2
// buffer across the whole sweep.
//
// Stage 1 (Validate): all buffers agree in length with c's dimension.
// Stage 2 (Execute): visit bins high-to-low; for each undecided node, build
// its candidate-seed set from C's pattern, compute fine energy once, test
// every candidate's coarse energy ratio, and commit the best admissible one.
// Stage 3 (Execute): after each bin, stop early once the aggregate count
// target is met.
// Complexity: O(sum over bins of (nodes * (candidateDegree * K))).
func AggregationSweep(
	bins [][]int,
	w, c *matrix.SparseCSC,
	d []float64,
	x, x2 *matrix.Dense,
	status []int,
	aggregateSize []int,
	numAggregates int,
	ratioMax, maxCoarseningRatio float64,
) (*AggregationResult, error) {
	if w == nil || c == nil || x == nil || x2 == nil {
		return nil, coarsenErrorf("AggregationSweep", ErrType)
	}
	n := w.Rows()
	if w.Cols() != n || c.Rows() != n || c.Cols() != n {
		return nil, coarsenErrorf("AggregationSweep", ErrShape)
	}
	if len(d) != n || len(status) != n || len(aggregateSize) != n {
		return nil, coarsenErrorf("AggregationSweep", ErrShape)
	}
	if x.Rows() != n || x2.Rows() != n || x.Cols() != x2.Cols() {
		return nil, coarsenErrorf("AggregationSweep", ErrShape)
	}
	k := x.Cols()

	newStatus := append([]int(nil), status...)
	newAggSize := append([]int(nil), aggregateSize...)
	newX := x.Clone().(*matrix.Dense)
	newX2 := x2.Clone().(*matrix.Dense)

	const epsilon = 1e-15

	for bi := len(bins) - 1; bi >= 0; bi-- {
		for _, cand := range bins[bi] {
			i := cand - 1
			if i < 0 || i >= n {
				return nil, coarsenErrorf("AggregationSweep", ErrCount)
			}
			if newStatus[i] >= 0 {
				continue
			}

			// Step 1: candidate seeds Ci from C(:,i) with status[j] <= 0.
			cRows, cVals, err := c.Column(i)
			if err != nil {
				return nil, coarsenErrorf("AggregationSweep", err)
			}
			var candSeeds []int
			var candAffinity []float64
			for p, j := range cRows {
				if IsUndecidedOrSeed(newStatus[j]) {
					candSeeds = append(candSeeds, j)
					candAffinity = append(candAffinity, cVals[p])
				}
			}
			if len(candSeeds) == 0 {
				continue
			}

			// Step 2: fine energy per test vector.
			wRows, wVals, err := w.Column(i)
			if err != nil {
				return nil, coarsenErrorf("AggregationSweep", err)
			}
			di := d[i]
			d2 := di / 2
			r := make([]float64, k)
			q := make([]float64, k)
			for p, j := range wRows {
				wj := wVals[p]
				for kk := 0; kk < k; kk++ {
					xjk, err := newX.At(j, kk)
					if err != nil {
						return nil, coarsenErrorf("AggregationSweep", err)
					}
					x2jk, err := newX2.At(j, kk)
					if err != nil {
						return nil, coarsenErrorf("AggregationSweep", err)
					}
					r[kk] += wj * xjk
					q[kk] += wj * x2jk
				}
			}
			e := make([]float64, k)
			for kk := 0; kk < k; kk++ {
				yk := r[kk] / di
				e[kk] = (d2*yk-r[kk])*yk + q[kk]
			}

			// Step 3+4: test each candidate seed, keep the best admissible one.
			best := -1
			bestAffinity := 0.0
			for ci, j := range candSeeds {
				admissible := true
				for kk := 0; kk < k; kk++ {
					xjk, err := newX.At(j, kk)
					if err != nil {
						return nil, coarsenErrorf("AggregationSweep", err)
					}
					ec := (d2*xjk-r[kk])*xjk + q[kk]
					mu := ec / (e[kk] + epsilon)
					if mu > ratioMax {
						admissible = false
						break
					}
				}
				if !admissible {
					continue
				}
				if best == -1 || candAffinity[ci] > bestAffinity {
					best = j
					bestAffinity = candAffinity[ci]
				}
			}
			if best == -1 {
				continue
			}

			// Step 5: commit the aggregation.
			for kk := 0; kk < k; kk++ {
				xv, err := newX.At(best, kk)
				if err != nil {
					return nil, coarsenErrorf("AggregationSweep", err)
				}
				x2v, err := newX2.At(best, kk)
				if err != nil {
					return nil, coarsenErrorf("AggregationSweep", err)
				}
				if err := newX.Set(i, kk, xv); err != nil {
					return nil, coarsenErrorf("AggregationSweep", err)
				}
				if err := newX2.Set(i, kk, x2v); err != nil {
					return nil, coarsenErrorf("AggregationSweep", err)
				}
			}
			newStatus[best] = int(Seed)
			newStatus[i] = AggregatedInto(best)
			newAggSize[best]++
			newAggSize[i] = newAggSize[best]
			numAggregates--
		}

		// Step 6: bin-granularity stop check.
		if float64(numAggregates) <= float64(n)*maxCoarseningRatio {
			break
		}
	}

	return &AggregationResult{
		Status:        newStatus,
		AggregateSize: newAggSize,
		X:             newX,
		X2:            newX2,
		NumAggregates: numAggregates,
	}, nil
}
