// SPDX-License-Identifier: MIT

// Package matrix - structural operations (layout changes and fill patterns).
//
// Policy:
//   - Transpose and the swaps mutate the receiver; Submatrix returns a fresh,
//     independently owned Matrix carrying the receiver's options.
//   - Fills clip silently: cells outside [0,rows)×[0,cols) are skipped and
//     never reported. The only fill error is ErrNaNInf under the numeric policy.

package matrix

import (
	"fmt"
	"math"
	"math/bits"
)

// Transpose re-keys every cell (r,c) to (c,r) in place and swaps the
// dimensions. Element count is preserved; no value is lost or duplicated.
// Complexity: O(r*c) time, O(r*c) transient space for the new map.
func (m *Matrix) Transpose() {
	out := make(map[Key]Element, len(m.elements))
	for k, e := range m.elements {
		out[Key{Row: k.Col, Col: k.Row}] = e
	}
	m.elements = out
	m.rows, m.cols = m.cols, m.rows
}

// Submatrix copies the inclusive block [startRow..endRow]×[startCol..endCol]
// into a new (endRow-startRow+1)×(endCol-startCol+1) matrix keyed from 0.
//
// Errors:
//   - ErrOutOfRange when a bound is outside the matrix or end < start.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func (m *Matrix) Submatrix(startRow, startCol, endRow, endCol int) (*Matrix, error) {
	if startRow < 0 || startCol < 0 || endRow >= m.rows || endCol >= m.cols ||
		startRow > endRow || startCol > endCol {
		return nil, matrixErrorf(opSubmatrix,
			fmt.Errorf("rows %d..%d cols %d..%d of %dx%d: %w",
				startRow, endRow, startCol, endCol, m.rows, m.cols, ErrOutOfRange))
	}
	sub := newWithOptions(endRow-startRow+1, endCol-startCol+1, m.opts)
	var i, j int
	for i = startRow; i <= endRow; i++ {
		for j = startCol; j <= endCol; j++ {
			sub.elements[Key{Row: i - startRow, Col: j - startCol}] = m.elements[Key{Row: i, Col: j}]
		}
	}

	return sub, nil
}

// SwapRows exchanges every value of rows r1 and r2. r1 == r2 is a legal no-op.
// Errors: ErrOutOfRange for an index outside [0,rows).
func (m *Matrix) SwapRows(r1, r2 int) error {
	if r1 < 0 || r1 >= m.rows || r2 < 0 || r2 >= m.rows {
		return cellErrorf(opSwapRows, r1, r2, ErrOutOfRange)
	}
	if r1 == r2 {
		return nil
	}
	var a, b Key
	for j := 0; j < m.cols; j++ {
		a, b = Key{Row: r1, Col: j}, Key{Row: r2, Col: j}
		m.elements[a], m.elements[b] = m.elements[b], m.elements[a]
	}

	return nil
}

// SwapColumns exchanges every value of columns c1 and c2. c1 == c2 is a legal no-op.
// Errors: ErrOutOfRange for an index outside [0,cols).
func (m *Matrix) SwapColumns(c1, c2 int) error {
	if c1 < 0 || c1 >= m.cols || c2 < 0 || c2 >= m.cols {
		return cellErrorf(opSwapColumns, c1, c2, ErrOutOfRange)
	}
	if c1 == c2 {
		return nil
	}
	var a, b Key
	for i := 0; i < m.rows; i++ {
		a, b = Key{Row: i, Col: c1}, Key{Row: i, Col: c2}
		m.elements[a], m.elements[b] = m.elements[b], m.elements[a]
	}

	return nil
}

// inBounds reports whether (row, col) addresses a cell of m.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// FillRect sets every cell of the rectangle starting at pos with extent area
// to v. The zero Size means "the full matrix", so FillRect(v, Key{}, Size{})
// fills everything. Cells falling outside the matrix are skipped.
// Complexity: O(min(area, r*c)).
func (m *Matrix) FillRect(v float64, pos Key, area Size) error {
	if err := validateFinite(v, m.opts.validateNaNInf); err != nil {
		return cellErrorf(opFillRect, pos.Row, pos.Col, err)
	}
	if area == (Size{}) {
		area = Size{Rows: m.rows, Cols: m.cols}
	}
	i0, i1 := clipSpan(pos.Row, area.Rows, m.rows)
	j0, j1 := clipSpan(pos.Col, area.Cols, m.cols)
	val := Val(v)
	var i, j int
	for i = i0; i < i1; i++ {
		for j = j0; j < j1; j++ {
			m.elements[Key{Row: i, Col: j}] = val
		}
	}

	return nil
}

// clipSpan intersects [start, start+extent) with [0, limit) without
// overflowing int. An empty intersection returns lo >= hi.
func clipSpan(start, extent, limit int) (lo, hi int) {
	if extent <= 0 || start >= limit {
		return 0, 0
	}
	switch {
	case start < 0:
		hi = start + extent // negative plus positive cannot overflow
	case extent > limit-start:
		hi = limit
	default:
		hi = start + extent
	}

	return max(start, 0), min(hi, limit)
}

// Fill sets every cell to v.
func (m *Matrix) Fill(v float64) error {
	return m.FillRect(v, Key{}, Size{})
}

// FillCirc sets every cell whose squared Euclidean distance to center is at
// most radius² to v. Cells outside the matrix are skipped; a negative radius
// fills nothing. Distances are compared exactly for any int radius.
// Complexity: O(min(radius², r*c)).
func (m *Matrix) FillCirc(center Key, radius int, v float64) error {
	if err := validateFinite(v, m.opts.validateNaNInf); err != nil {
		return cellErrorf(opFillCirc, center.Row, center.Col, err)
	}
	if radius < 0 {
		return nil
	}
	i0, i1 := clipDisc(center.Row, radius, m.rows)
	j0, j1 := clipDisc(center.Col, radius, m.cols)
	val := Val(v)
	var i, j int
	for i = i0; i < i1; i++ {
		for j = j0; j < j1; j++ {
			if withinRadius(i-center.Row, j-center.Col, radius) {
				m.elements[Key{Row: i, Col: j}] = val
			}
		}
	}

	return nil
}

// clipDisc intersects [c-radius, c+radius] with [0, limit) and returns it as a
// half-open range, saturating instead of overflowing. radius >= 0.
func clipDisc(c, radius, limit int) (lo, hi int) {
	lo, hi = 0, limit
	if c >= 0 && c-radius > 0 { // c-radius cannot overflow when c >= 0
		lo = c - radius
	}
	if c < 0 || radius < math.MaxInt-c { // c+radius stays below MaxInt
		if end := c + radius + 1; end < hi {
			hi = end
		}
	}
	if lo >= hi {
		return 0, 0
	}

	return lo, hi
}

// withinRadius reports di² + dj² <= radius² using 128-bit arithmetic.
// |di| and |dj| never exceed radius for cells inside the clipped box.
func withinRadius(di, dj, radius int) bool {
	aHi, aLo := bits.Mul64(absU64(di), absU64(di))
	bHi, bLo := bits.Mul64(absU64(dj), absU64(dj))
	sLo, carry := bits.Add64(aLo, bLo, 0)
	sHi, _ := bits.Add64(aHi, bHi, carry)
	rHi, rLo := bits.Mul64(uint64(radius), uint64(radius))

	return sHi < rHi || (sHi == rHi && sLo <= rLo)
}

// absU64 returns |x| as uint64; x is never math.MinInt here.
func absU64(x int) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}

// FillDiagonal sets (i,i) to v for i in [0, min(rows, cols)).
func (m *Matrix) FillDiagonal(v float64) error {
	if err := validateFinite(v, m.opts.validateNaNInf); err != nil {
		return matrixErrorf(opFillDiagonal, err)
	}
	n := min(m.rows, m.cols)
	for i := 0; i < n; i++ {
		m.elements[Key{Row: i, Col: i}] = Val(v)
	}

	return nil
}
