// SPDX-License-Identifier: MIT

// Package matrix - gonum interoperability.
//
// Purpose:
//   - Expose a keyed Matrix as a read-only gonum mat.Matrix so gonum routines
//     (mat.Det, mat.Dense.Inverse, mat.Formatted, ...) can consume it without a copy.
//   - Import any gonum mat.Matrix into a keyed Matrix.
//
// Behavior highlights:
//   - The view follows gonum's contract and panics on misuse: mat.ErrIndexOutOfRange
//     for bad indices, ErrUnsetCell for a cell holding the non-numeric sentinel.
//   - The view is live: later mutations of the Matrix are visible through it,
//     including Transpose (Dims is read on every call).

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// gonumView adapts *Matrix to mat.Matrix.
type gonumView struct{ m *Matrix }

var _ mat.Matrix = gonumView{}

// Gonum returns a live, read-only mat.Matrix view of m.
func (m *Matrix) Gonum() mat.Matrix { return gonumView{m: m} }

// Dims returns the dimensions of the underlying Matrix.
func (v gonumView) Dims() (r, c int) { return v.m.rows, v.m.cols }

// At returns the numeric value at (i, j), panicking like gonum on misuse.
func (v gonumView) At(i, j int) float64 {
	e, ok := v.m.elements[Key{Row: i, Col: j}]
	if !ok {
		panic(mat.ErrIndexOutOfRange)
	}
	if !e.Valid {
		panic(ErrUnsetCell)
	}

	return e.Value
}

// T returns the implicit transpose of the view.
func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// FromGonum copies every element of a into a new keyed Matrix built with opts.
//
// Errors:
//   - ErrNilMatrix for a nil a, ErrInvalidDimensions for an empty a,
//     ErrNaNInf for non-finite values under the numeric policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	m := newWithOptions(r, c, o)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = a.At(i, j)
			if err := validateFinite(v, o.validateNaNInf); err != nil {
				return nil, cellErrorf(opFromGonum, i, j, err)
			}
			m.elements[Key{Row: i, Col: j}] = Val(v)
		}
	}

	return m, nil
}
