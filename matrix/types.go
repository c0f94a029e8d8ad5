// SPDX-License-Identifier: MIT

// Package matrix: domain types used by the keyed store and its queries.
// This file intentionally contains ONLY domain-facing types (keys, elements,
// selectors). Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "fmt"

// Key is the composite (row, column) storage key of a cell.
// Both coordinates are 0-based. Using ints keeps the key compact and
// hash-friendly, and the struct is comparable so it can key a map directly.
type Key struct {
	Row int // 0-based row index
	Col int // 0-based column index
}

// String renders the key as "r{row}c{col}".
func (k Key) String() string { return fmt.Sprintf("r%dc%d", k.Row, k.Col) }

// Size is the extent of a rectangular region (see FillRect).
type Size struct {
	Rows int
	Cols int
}

// Element is a single stored cell value.
// The zero Element is invalid and is the default empty sentinel: an explicit
// "no value" marker that is distinct from numeric zero.
type Element struct {
	Value float64 // meaningful only when Valid
	Valid bool    // false for the non-numeric empty sentinel
}

// Empty is the default (non-numeric) empty sentinel.
var Empty = Element{}

// Val wraps v into a valid Element.
func Val(v float64) Element { return Element{Value: v, Valid: true} }

// String renders the value with %g, or "_" for an invalid element.
func (e Element) String() string {
	if !e.Valid {
		return emptyGlyph
	}

	return fmt.Sprintf("%g", e.Value)
}

// emptyGlyph is how an invalid Element is rendered by String/Print.
const emptyGlyph = "_"

// Selector is a query filter over the store. It is either a single cell, an
// entire row, an entire column or every cell, chosen by which coordinates are
// present. Build one with SelectCell, SelectRow, SelectColumn or SelectAll.
//
// The zero Selector selects every cell.
type Selector struct {
	row, col       int
	hasRow, hasCol bool
}

// SelectCell addresses exactly the cell (row, col).
func SelectCell(row, col int) Selector {
	return Selector{row: row, col: col, hasRow: true, hasCol: true}
}

// SelectRow addresses every cell of the given row.
func SelectRow(row int) Selector { return Selector{row: row, hasRow: true} }

// SelectColumn addresses every cell of the given column.
func SelectColumn(col int) Selector { return Selector{col: col, hasCol: true} }

// SelectAll addresses every cell of the matrix.
func SelectAll() Selector { return Selector{} }

// IsCell reports whether both coordinates are specified.
func (s Selector) IsCell() bool { return s.hasRow && s.hasCol }

// Row returns the row filter and whether it is set.
func (s Selector) Row() (int, bool) { return s.row, s.hasRow }

// Column returns the column filter and whether it is set.
func (s Selector) Column() (int, bool) { return s.col, s.hasCol }

// String renders the selector for error messages, e.g. "(2,*)".
func (s Selector) String() string {
	r, c := "*", "*"
	if s.hasRow {
		r = fmt.Sprint(s.row)
	}
	if s.hasCol {
		c = fmt.Sprint(s.col)
	}

	return "(" + r + "," + c + ")"
}
