// SPDX-License-Identifier: MIT

// Package matrix - keyed element store (MatrixStore) & inspection.
//
// Purpose:
//   - Own the composite-key element mapping and the dimension metadata.
//   - Populate exactly one key per cell over [0,rows)×[0,cols); the whole
//     package uses this single 0-based convention.
//   - Keep traversal deterministic: every walk iterates rows then columns and
//     never depends on map iteration order.
//
// Concurrency:
//   - A Matrix is NOT safe for concurrent mutation; callers must serialize
//     access or keep a single owner.
//
// Complexity quicksheet:
//   - New: O(r*c); At/SetKey: O(1); Clone/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- error context tags ----------

const (
	opNew          = "New"
	opFromRows     = "FromRows"
	opGet          = "Get"
	opAt           = "At"
	opInsert       = "Insert"
	opDelete       = "Delete"
	opSetKey       = "SetKey"
	opSubmatrix    = "Submatrix"
	opSwapRows     = "SwapRows"
	opSwapColumns  = "SwapColumns"
	opFillRect     = "FillRect"
	opFillCirc     = "FillCirc"
	opFillDiagonal = "FillDiagonal"
	opAdd          = "Add"
	opMul          = "Mul"
	opScale        = "Scale"
	opHadamard     = "Hadamard"
	opTrace        = "Trace"
	opPower        = "Power"
	opNorm         = "Norm"
	opAllClose     = "AllClose"
	opDense        = "Dense"
	opDeterminant  = "Determinant"
	opMinor        = "Minor"
	opCofactor     = "Cofactor"
	opAdjugate     = "Adjugate"
	opInverse      = "Inverse"
	opFromGonum    = "FromGonum"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an error with the operation tag and the offending coordinates.
func cellErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", tag, row, col, err)
}

// Matrix is an arbitrarily sized matrix stored as a keyed mapping from
// (row, column) to Element.
//   - rows, cols hold dimensions (both > 0).
//   - elements holds exactly rows*cols keys; unset cells hold opts.empty.
//   - opts carries the sentinel, numeric policy and kernel order bound.
type Matrix struct {
	rows, cols int
	elements   map[Key]Element
	opts       Options
}

// Compile-time assertions for interface conformance.
var (
	_ Shape        = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// New creates a rows×cols matrix with every cell set to the empty sentinel.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and populate one key per cell.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	return newWithOptions(rows, cols, gatherOptions(opts...)), nil
}

// newWithOptions allocates a fully populated store with an already resolved
// configuration. Callers guarantee rows, cols > 0.
func newWithOptions(rows, cols int, o Options) *Matrix {
	m := &Matrix{
		rows:     rows,
		cols:     cols,
		elements: make(map[Key]Element, rows*cols),
		opts:     o,
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.elements[Key{Row: i, Col: j}] = o.empty
		}
	}

	return m
}

// FromRows builds a matrix from row-major data. All rows must share the
// same non-zero length.
//
// Errors:
//   - ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged
//     rows, ErrNaNInf for non-finite values under the numeric policy.
func FromRows(data [][]float64, opts ...Option) (*Matrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(data[0])
	o := gatherOptions(opts...)
	m := newWithOptions(len(data), cols, o)
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
		for j, v := range row {
			if err := validateFinite(v, o.validateNaNInf); err != nil {
				return nil, cellErrorf(opFromRows, i, j, err)
			}
			m.elements[Key{Row: i, Col: j}] = Val(v)
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of stored keys (always Rows()*Cols()).
func (m *Matrix) Len() int { return len(m.elements) }

// Options returns the configuration the matrix was built with.
func (m *Matrix) Options() Options { return m.opts }

// Keys returns every storage key in row-major order.
func (m *Matrix) Keys() []Key { return m.resolve(SelectAll()) }

// Middle returns the center cell. On a 1-based grid the center is
// ((rows+1)/2, (cols+1)/2); the result is that cell in 0-based form,
// so even extents round toward the top-left.
func (m *Matrix) Middle() Key {
	return Key{Row: (m.rows+1)/2 - 1, Col: (m.cols+1)/2 - 1}
}

// GetMiddle returns the element stored at Middle().
func (m *Matrix) GetMiddle() Element {
	return m.elements[m.Middle()]
}

// Clone returns a deep copy with the same options.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := make(map[Key]Element, len(m.elements))
	for k, e := range m.elements {
		cp[k] = e
	}

	return &Matrix{rows: m.rows, cols: m.cols, elements: cp, opts: m.opts}
}

// Equal reports whether other has the same dimensions and exactly the same
// element in every cell. Values are compared with ==.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.elements) != len(other.elements) {
		return false
	}
	for k, e := range m.elements {
		if oe, ok := other.elements[k]; !ok || oe != e {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b, c]\n"; unset cells render as "_".
// Intended for debugging; not a serialization format.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			b.WriteString(m.elements[Key{Row: i, Col: j}].String())
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Print writes the row-by-row dump of m to w.
func (m *Matrix) Print(w io.Writer) error {
	_, err := io.WriteString(w, m.String())

	return err
}

// number returns the numeric value of cell k, or ErrUnsetCell when it holds a
// non-numeric sentinel.
func (m *Matrix) number(k Key) (float64, error) {
	e := m.elements[k]
	if !e.Valid {
		return 0, ErrUnsetCell
	}

	return e.Value, nil
}

// Dense materializes a row-major snapshot of m. Every cell must be numeric.
//
// Errors:
//   - ErrUnsetCell wrapped with the first offending coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Dense() (*Dense, error) {
	d, err := newDenseWithPolicy(m.rows, m.cols, m.opts)
	if err != nil {
		return nil, matrixErrorf(opDense, err)
	}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			v, err := m.number(Key{Row: i, Col: j})
			if err != nil {
				return nil, cellErrorf(opDense, i, j, err)
			}
			d.data[i*m.cols+j] = v
		}
	}

	return d, nil
}
