// SPDX-License-Identifier: MIT

// Package matrix - Dense snapshot (row-major) & safe accessors.
//
// Purpose:
//   - Provide the dense two-dimensional snapshot the cofactor kernel recurses
//     on: minors are cheap to slice out of a flat row-major buffer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//   - maxOrder bounds the cofactor kernels (Det, Cofactor, Adjugate).
type Dense struct {
	r, c           int       // row and column counts (>=0; zero only for internal zero-OK results)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
	maxOrder       int       // cofactor kernel order bound (DefaultMaxOrder)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Shape        = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and set the default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
		maxOrder:       DefaultMaxOrder,
	}, nil
}

// newDenseWithPolicy constructs Dense with strict shape validation, then takes
// the numeric policy and order bound from o (used by Matrix.Dense to carry the
// store configuration).
func newDenseWithPolicy(rows, cols int, o Options) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	d.validateNaNInf = o.validateNaNInf
	d.maxOrder = o.maxOrder

	return d, nil
}

// DenseFromRows builds a Dense from row-major data; rows must share one length.
// Only the numeric policy and the order bound of opts apply to a Dense.
func DenseFromRows(data [][]float64, opts ...Option) (*Dense, error) {
	if len(data) == 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := newDenseWithPolicy(len(data), len(data[0]), gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		if len(row) != d.c {
			return nil, fmt.Errorf("DenseFromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (d *Dense) Shape() (rows, cols int) { return d.r, d.c }

// MaxOrder returns the largest order the cofactor kernels accept for d.
func (d *Dense) MaxOrder() int { return d.maxOrder }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= d.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*d.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	off, err := d.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return d.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Errors: ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
// Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	off, err := d.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if d.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	d.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{r: d.r, c: d.c, data: cp, validateNaNInf: d.validateNaNInf, maxOrder: d.maxOrder}
}

// RawRows returns a [][]float64 copy of the data (handy for tests and printing).
func (d *Dense) RawRows() [][]float64 {
	out := make([][]float64, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = append([]float64(nil), d.data[i*d.c:(i+1)*d.c]...)
	}

	return out
}

// String is a human-readable dump of rows for diagnostics, "[a, b]\n" per row.
// Complexity: O(r*c).
func (d *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < d.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * d.c
		for j = 0; j < d.c; j++ {
			b.WriteString(fmt.Sprintf("%g", d.data[base+j]))
			if j+1 < d.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: handle zero-sized result (legal).
//   - Stage 2: allocate result via NewDense.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - Policy is preserved from the base (validateNaNInf, maxOrder).
//   - Minor() is Induced with one row and one column left out.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (d *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	if rp == 0 || cp == 0 {
		return &Dense{r: rp, c: cp, data: make([]float64, 0), validateNaNInf: d.validateNaNInf, maxOrder: d.maxOrder}, nil
	}

	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = d.validateNaNInf
	res.maxOrder = d.maxOrder

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= d.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= d.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = d.data[ri*d.c+cj]
		}
	}

	return res, nil
}

// ToMatrix copies d into a keyed Matrix built with opts.
// Errors: ErrNaNInf when a value violates the resulting numeric policy.
func (d *Dense) ToMatrix(opts ...Option) (*Matrix, error) {
	if d.r == 0 || d.c == 0 {
		return nil, ErrInvalidDimensions
	}

	return d.toMatrix(gatherOptions(opts...))
}

// toMatrix is ToMatrix with an already resolved configuration.
func (d *Dense) toMatrix(o Options) (*Matrix, error) {
	m := newWithOptions(d.r, d.c, o)
	var i, j int
	var v float64
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			v = d.data[i*d.c+j]
			if err := validateFinite(v, o.validateNaNInf); err != nil {
				return nil, denseErrorf("ToMatrix", i, j, err)
			}
			m.elements[Key{Row: i, Col: j}] = Val(v)
		}
	}

	return m, nil
}
