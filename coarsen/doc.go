// Package coarsen implements the numerical core of a lean algebraic
// multigrid graph-coarsening step: the nine sparse-graph kernels that turn a
// fine-level weighted adjacency matrix and its test vectors into a coarser
// graph, by either energy-bounded aggregation or low-degree elimination.
//
// What & Why:
//
//	Each kernel is a pure function over matrix.SparseCSC / matrix.Dense
//	inputs: it checks nil arguments, shapes, enum selectors and scalar
//	ranges up front, before allocating anything, and returns freshly
//	allocated output structures, never mutating a caller-supplied buffer.
//	Per-element checks (1-based node ids in candidate, bin, F and C lists,
//	index entries, stored diagonals) run while the kernel works, so a
//	kernel may already have allocated working copies when it returns one
//	of those errors; it then returns no partial result. None of them hold
//	package-level state; scratch buffers (the sparse accumulator used by
//	the two Galerkin kernels, the per-row diagonal scan in GaussSeidel) are
//	local to a single call.
//
// Two independent coarsening paths share this package:
//
//   - Aggregation: AffinityMatrix -> FilterSmallEntries -> UndecidedNodes ->
//     AggregationSweep, producing a Status/aggregate-size pair consumed by
//     GalerkinCaliber1 once the caller derives a caliber-1 P/R from it.
//   - Elimination: LowDegreeSweep -> EliminationOperators -> GalerkinElimination,
//     producing R, q and a Schur-complement-like coarse operator.
//
// GaussSeidel is independent of both paths; it smooths a test-vector block
// against a symmetric sparse operator and is typically invoked by an outer
// multigrid cycle between coarsening steps, not by the kernels above.
package coarsen
