// SPDX-License-Identifier: MIT

// Package matrix - addressing layer.
//
// Purpose:
//   - Translate a Selector (cell / row / column / all) into the set of live
//     storage keys it denotes.
//   - Provide the read and write primitives every public query and mutation
//     goes through.
//
// Contract:
//   - resolve never fails: a row or column with no live keys yields an empty
//     set. Only fully specified cell selectors turn "no key" into ErrOutOfRange
//     at the public surface.
//   - Reads branch on shape explicitly: At returns one Element for a
//     (row, column) pair, Get returns the full sequence for any selector.

package matrix

import "fmt"

// resolve returns the live keys denoted by sel in row-major order.
// Complexity: O(1) for a cell, O(c) for a row, O(r) for a column, O(r*c) for all.
func (m *Matrix) resolve(sel Selector) []Key {
	var (
		i, j int
		k    Key
		keys []Key
	)
	switch {
	case sel.hasRow && sel.hasCol:
		k = Key{Row: sel.row, Col: sel.col}
		if _, ok := m.elements[k]; ok {
			return []Key{k}
		}

		return nil
	case sel.hasRow:
		keys = make([]Key, 0, m.cols)
		for j = 0; j < m.cols; j++ {
			k = Key{Row: sel.row, Col: j}
			if _, ok := m.elements[k]; ok {
				keys = append(keys, k)
			}
		}
	case sel.hasCol:
		keys = make([]Key, 0, m.rows)
		for i = 0; i < m.rows; i++ {
			k = Key{Row: i, Col: sel.col}
			if _, ok := m.elements[k]; ok {
				keys = append(keys, k)
			}
		}
	default:
		keys = make([]Key, 0, len(m.elements))
		for i = 0; i < m.rows; i++ {
			for j = 0; j < m.cols; j++ {
				k = Key{Row: i, Col: j}
				if _, ok := m.elements[k]; ok {
					keys = append(keys, k)
				}
			}
		}
	}

	return keys
}

// read looks up every key resolved by sel.
func (m *Matrix) read(sel Selector) []Element {
	keys := m.resolve(sel)
	out := make([]Element, len(keys))
	for i, k := range keys {
		out[i] = m.elements[k]
	}

	return out
}

// write stores e under every key resolved by sel and reports how many cells
// were written.
func (m *Matrix) write(e Element, sel Selector) int {
	keys := m.resolve(sel)
	for _, k := range keys {
		m.elements[k] = e
	}

	return len(keys)
}

// cellMiss reports a fully specified selector that matched nothing.
func cellMiss(tag string, sel Selector) error {
	return cellErrorf(tag, sel.row, sel.col, ErrOutOfRange)
}

// Get returns every value selected by sel, in row-major order.
// A row, column or all query that matches nothing returns an empty slice;
// a cell query outside the matrix returns ErrOutOfRange.
func (m *Matrix) Get(sel Selector) ([]Element, error) {
	vals := m.read(sel)
	if len(vals) == 0 && sel.IsCell() {
		return nil, cellMiss(opGet, sel)
	}

	return vals, nil
}

// At returns the single element at (row, col).
// Errors: ErrOutOfRange outside [0,rows)×[0,cols).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (Element, error) {
	e, ok := m.elements[Key{Row: row, Col: col}]
	if !ok {
		return Element{}, cellErrorf(opAt, row, col, ErrOutOfRange)
	}

	return e, nil
}

// GetRow returns the whole row r (empty when r is outside the matrix).
func (m *Matrix) GetRow(r int) []Element { return m.read(SelectRow(r)) }

// GetColumn returns the whole column c (empty when c is outside the matrix).
func (m *Matrix) GetColumn(c int) []Element { return m.read(SelectColumn(c)) }

// Insert writes v into every cell selected by sel.
// Implementation:
//   - Stage 1: enforce the numeric policy on v.
//   - Stage 2: write through the addressing layer.
//
// Errors:
//   - ErrNaNInf for non-finite v while the policy is on.
//   - ErrOutOfRange for a cell selector outside the matrix.
func (m *Matrix) Insert(v float64, sel Selector) error {
	if err := validateFinite(v, m.opts.validateNaNInf); err != nil {
		return matrixErrorf(opInsert, fmt.Errorf("%s: %w", sel, err))
	}
	if m.write(Val(v), sel) == 0 && sel.IsCell() {
		return cellMiss(opInsert, sel)
	}

	return nil
}

// Delete resets every cell selected by sel to the empty sentinel.
// Errors: ErrOutOfRange for a cell selector outside the matrix.
func (m *Matrix) Delete(sel Selector) error {
	if m.write(m.opts.empty, sel) == 0 && sel.IsCell() {
		return cellMiss(opDelete, sel)
	}

	return nil
}

// SetKey stores e directly under k. Only live keys are accepted, so the key
// set of the store never grows.
func (m *Matrix) SetKey(k Key, e Element) error {
	if _, ok := m.elements[k]; !ok {
		return cellErrorf(opSetKey, k.Row, k.Col, ErrOutOfRange)
	}
	if e.Valid {
		if err := validateFinite(e.Value, m.opts.validateNaNInf); err != nil {
			return cellErrorf(opSetKey, k.Row, k.Col, err)
		}
	}
	m.elements[k] = e

	return nil
}

// Find returns the keys whose element equals e, in row-major order.
// Use Find(Empty) (or the configured sentinel) to list unset cells.
func (m *Matrix) Find(e Element) []Key {
	var out []Key
	for _, k := range m.resolve(SelectAll()) {
		if m.elements[k] == e {
			out = append(out, k)
		}
	}

	return out
}
