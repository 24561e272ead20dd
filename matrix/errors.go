// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).
package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., a CSC with mismatched col_ptr/row_idx/values lengths, or a dense
	// vector whose length disagrees with a matrix's row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadCSC indicates a CSC invariant violation: a non-monotone col_ptr, a
	// col_ptr that does not start at 0 or end at nnz, or a row_idx not
	// strictly ascending within a column.
	ErrBadCSC = errors.New("matrix: malformed CSC structure")

	// ErrMissingDiagonal indicates a kernel that requires a stored diagonal
	// entry (Gauss-Seidel, EliminationOperators) did not find one.
	ErrMissingDiagonal = errors.New("matrix: required diagonal entry absent")
)
