// SPDX-License-Identifier: MIT
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteMatrixMarket serializes a to w in the plain Matrix Market coordinate
// format used by the original solver's writer: a header line "m n nnz"
// followed by one "row col value" line per stored entry, 1-based indices,
// iterating columns outer and within-column entries inner, in storage order.
// Complexity: O(nnz).
func WriteMatrixMarket(w io.Writer, a *SparseCSC) error {
	if a == nil {
		return fmt.Errorf("WriteMatrixMarket: %w", ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d %d\n", a.Rows(), a.Cols(), a.NNZ()); err != nil {
		return fmt.Errorf("WriteMatrixMarket: header: %w", err)
	}

	for j := 0; j < a.Cols(); j++ {
		rows, vals, err := a.Column(j)
		if err != nil {
			return fmt.Errorf("WriteMatrixMarket: %w", err)
		}
		for p, r := range rows {
			if _, err := fmt.Fprintf(bw, "%d %d %f\n", r+1, j+1, vals[p]); err != nil {
				return fmt.Errorf("WriteMatrixMarket: entry (%d,%d): %w", r, j, err)
			}
		}
	}

	return bw.Flush()
}

// ReadMatrixMarket parses the format written by WriteMatrixMarket back into a
// SparseCSC. Entries must arrive already sorted in column-major order with
// ascending row indices per column, the same order WriteMatrixMarket
// produces; this is not a general-purpose Matrix Market parser.
// Stage 1 (Parse): read header line "m n nnz".
// Stage 2 (Parse): read nnz "row col value" lines, converting to 0-based.
// Stage 3 (Finalize): build ColPtr from column boundaries and validate via
// NewSparseCSC.
// Complexity: O(nnz).
func ReadMatrixMarket(r io.Reader) (*SparseCSC, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	if !scanner.Scan() {
		return nil, fmt.Errorf("ReadMatrixMarket: missing header: %w", ErrBadCSC)
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 3 {
		return nil, fmt.Errorf("ReadMatrixMarket: malformed header %q: %w", scanner.Text(), ErrBadCSC)
	}
	m, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("ReadMatrixMarket: row count: %w", err)
	}
	n, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("ReadMatrixMarket: col count: %w", err)
	}
	nnz, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, fmt.Errorf("ReadMatrixMarket: nnz: %w", err)
	}

	rowIdx := make([]int, 0, nnz)
	values := make([]float64, 0, nnz)
	colPtr := make([]int, n+1)
	lastCol := 0

	for i := 0; i < nnz; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("ReadMatrixMarket: expected %d entries, got %d: %w", nnz, i, ErrDimensionMismatch)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("ReadMatrixMarket: malformed entry %q: %w", scanner.Text(), ErrBadCSC)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ReadMatrixMarket: row: %w", err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("ReadMatrixMarket: col: %w", err)
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ReadMatrixMarket: value: %w", err)
		}

		row0, col0 := row-1, col-1
		if row0 < 0 || row0 >= m || col0 < 0 || col0 >= n {
			return nil, fmt.Errorf("ReadMatrixMarket: entry (%d,%d) out of %dx%d range: %w", row, col, m, n, ErrBadCSC)
		}
		for lastCol < col0 {
			lastCol++
			colPtr[lastCol] = len(rowIdx)
		}
		rowIdx = append(rowIdx, row0)
		values = append(values, val)
	}
	for lastCol < n {
		lastCol++
		colPtr[lastCol] = len(rowIdx)
	}

	return NewSparseCSC(m, n, colPtr, rowIdx, values)
}
