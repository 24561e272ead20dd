// Package matrix provides the storage primitives shared by the coarsening
// kernels: a row-major Dense matrix for test-vector blocks, a compressed
// sparse column (SparseCSC) container for the fine and coarse operators, and
// a Matrix Market text codec for exchanging sparse matrices with external
// callers.
//
// SparseCSC is the workhorse type: col_ptr/row_idx/values triples with row
// indices kept strictly ascending within each column. Every kernel in the
// coarsen package is written against this layout; none of them assume the
// diagonal is stored, except GaussSeidel and EliminationOperators, which
// search for it explicitly via Diagonal and fail with ErrMissingDiagonal
// when it is absent.
//
// Dense backs the small generic Matrix interface used for shape-validated,
// random-access computations (test-vector storage, reference values in
// tests); SparseCSC intentionally does not implement Matrix, since its
// natural access pattern is column streaming rather than At/Set.
package matrix
