// SPDX-License-Identifier: MIT
// Package matrix provides element-wise and product operations on the keyed
// store: Add, Mul, Scale, Hadamard, Trace, Power and the Frobenius norm.
// All operations perform strict fail-fast validation and return sentinel
// errors wrapped with their operation tag.
//
// Receiver contracts:
//   - Add and Scale mutate the receiver and return only an error.
//   - Mul, Hadamard and Power allocate a fresh Matrix carrying the receiver's
//     options; operands are never touched.
//   - Mutating operations read every operand first, so a failure (e.g. an
//     unset cell) leaves the receiver unchanged.
//
// Unset cells:
//   - A cell holding the non-numeric empty sentinel makes every arithmetic
//     operation fail with ErrUnsetCell. With WithEmpty(v) the sentinel is the
//     number v and takes part in arithmetic like any other value.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulation (dot products, trace, norm).
const ZeroSum = 0.0

// ZeroPivot is the determinant value Inverse refuses (exact comparison).
const ZeroPivot = 0.0

// Add computes m[i,j] += other[i,j] for every cell, in place.
// Implementation:
//   - Stage 1: validate both operands are non-nil and have identical shapes.
//   - Stage 2: stage all sums in a buffer (fails on unset or non-finite).
//   - Stage 3: commit the buffer into the receiver.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnsetCell, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the staging buffer.
func (m *Matrix) Add(other *Matrix) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf(opAdd, err)
	}
	a, err := m.Dense()
	if err != nil {
		return matrixErrorf(opAdd, err)
	}
	b, err := other.Dense()
	if err != nil {
		return matrixErrorf(opAdd, err)
	}
	for idx := range a.data {
		a.data[idx] += b.data[idx]
		if err = validateFinite(a.data[idx], m.opts.validateNaNInf); err != nil {
			return cellErrorf(opAdd, idx/m.cols, idx%m.cols, err)
		}
	}
	m.commit(a)

	return nil
}

// commit copies a same-shaped dense buffer into the store.
func (m *Matrix) commit(d *Dense) {
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			m.elements[Key{Row: i, Col: j}] = Val(d.data[i*m.cols+j])
		}
	}
}

// Mul performs standard matrix multiplication C = m × other.
// C[i,j] is the dot product of row i of m and column j of other, accumulated
// in k order starting from ZeroSum.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m.Cols != other.Rows), ErrUnsetCell,
//     ErrNaNInf (overflow under the numeric policy).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + r*n + n*c) for the snapshots.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := ValidateBinaryMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	a, err := m.Dense()
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	b, err := other.Dense()
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	prod, err := mulDense(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := prod.toMatrix(m.opts)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// mulDense is the i→j→k product kernel on snapshots. Zero terms are not
// skipped so every product is accumulated in the same order.
func mulDense(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	var (
		i, j, k int
		current float64
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			current = ZeroSum
			for k = 0; k < a.c; k++ {
				current += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			res.data[i*b.c+j] = current
		}
	}

	return res, nil
}

// Scale multiplies every cell by alpha in place. It is the scalar half of
// multiplication and returns no matrix.
// Errors: ErrUnsetCell, ErrNaNInf.
// Complexity: O(r*c).
func (m *Matrix) Scale(alpha float64) error {
	if err := validateFinite(alpha, m.opts.validateNaNInf); err != nil {
		return matrixErrorf(opScale, err)
	}
	a, err := m.Dense()
	if err != nil {
		return matrixErrorf(opScale, err)
	}
	for idx := range a.data {
		a.data[idx] *= alpha
		if err = validateFinite(a.data[idx], m.opts.validateNaNInf); err != nil {
			return cellErrorf(opScale, idx/m.cols, idx%m.cols, err)
		}
	}
	m.commit(a)

	return nil
}

// Hadamard returns the element-wise product m ⊙ other as a new Matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnsetCell, ErrNaNInf.
// Complexity: O(r*c).
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	a, err := m.Dense()
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	b, err := other.Dense()
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	for idx := range a.data {
		a.data[idx] *= b.data[idx]
	}
	out, err := a.toMatrix(m.opts)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return out, nil
}

// Trace returns the sum of the main diagonal.
// Errors: ErrNonSquare, ErrUnsetCell.
// Complexity: O(n).
func (m *Matrix) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < m.rows; i++ {
		v, err := m.number(Key{Row: i, Col: i})
		if err != nil {
			return 0, cellErrorf(opTrace, i, i, err)
		}
		sum += v
	}

	return sum, nil
}

// Power returns m^n computed as I·m·m·…·m with n sequential multiplications.
// Results are bit-identical to the left-to-right product of n copies.
//
// Errors:
//   - ErrNonSquare, ErrNegativeExponent, plus any Mul error for n > 0.
//
// Complexity:
//   - Time O(n·k³) for a k×k matrix.
func (m *Matrix) Power(n int) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPower, fmt.Errorf("n=%d: %w", n, ErrNegativeExponent))
	}
	result := identityWithOptions(m.rows, m.opts)
	var err error
	for step := 0; step < n; step++ {
		if result, err = result.Mul(m); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return result, nil
}

// Norm returns the Frobenius norm √(Σ v²) over every cell.
// Errors: ErrUnsetCell when a cell holds the non-numeric sentinel.
// Complexity: O(r*c).
func (m *Matrix) Norm() (float64, error) {
	a, err := m.Dense()
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	sum := ZeroSum
	for _, v := range a.data {
		sum += v * v
	}

	return math.Sqrt(sum), nil
}

// AllClose checks element-wise |a-b| ≤ tol for identical shapes. Unset cells
// only match unset cells. NaN matches nothing.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) AllClose(other *Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	tol = math.Abs(tol)
	var a, b Element
	for k := range m.elements {
		a, b = m.elements[k], other.elements[k]
		if a.Valid != b.Valid {
			return false, nil
		}
		if a.Valid && !(math.Abs(a.Value-b.Value) <= tol) {
			return false, nil
		}
	}

	return true, nil
}
