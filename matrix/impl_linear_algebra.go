// SPDX-License-Identifier: MIT
// Package matrix - cofactor kernel: determinant, minor, cofactor, adjugate, inverse.
//
// Purpose:
//   - Laplace expansion along the first row over a Dense snapshot.
//   - Adjugate-based inversion: cofactor matrix → transpose → divide by det.
//
// Numeric policy:
//   - Textbook cofactor expansion; no pivoting, no conditioning guarantees.
//   - Singularity is exact: det == 0 fails, any other value is divided by.
//
// Limits:
//   - Cost is O(n!) and recursion depth is n. Matrix methods refuse orders above
//     Options.MaxOrder, and the Dense kernels (Det, Cofactor, Adjugate) refuse
//     orders above Dense.MaxOrder, both with ErrOrderTooLarge (DefaultMaxOrder
//     unless configured). Minor is O(r*c) and needs no bound.

package matrix

import "fmt"

// Det returns the determinant of a square Dense by Laplace expansion along row 0.
// Implementation:
//   - Stage 1: validate non-nil, square and within d.MaxOrder().
//   - Stage 2: recurse; 1×1 and 2×2 are closed-form base cases.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge.
//
// Complexity:
//   - Time O(n!), Space O(n²) per level, depth n.
func Det(d *Dense) (float64, error) {
	if d == nil {
		return 0, matrixErrorf(opDeterminant, ErrNilMatrix)
	}
	if err := validateKernel(d); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(d), nil
}

// validateKernel applies the square and order checks shared by the Dense kernels.
func validateKernel(d *Dense) error {
	if err := ValidateSquare(d); err != nil {
		return err
	}

	return ValidateOrder(d.r, d.maxOrder)
}

// det is the unchecked recursive kernel; d is square with n >= 1.
//
//	det(M) = Σ_c (−1)^c · M[0][c] · det(minor(M, 0, c))
func det(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}
	total := ZeroSum
	sign := 1.0
	for c := 0; c < d.c; c++ {
		total += sign * d.data[c] * det(minorOf(d, 0, c))
		sign = -sign
	}

	return total
}

// keepAllBut returns [0..n) without skip.
func keepAllBut(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// minorOf deletes row and col from d; indices are trusted.
func minorOf(d *Dense, row, col int) *Dense {
	res, _ := d.Induced(keepAllBut(d.r, row), keepAllBut(d.c, col)) // indices are in range by construction

	return res
}

// Minor returns d with the given row and column deleted. d is not modified.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions when d has a single row or column
//     (the result would be empty); ErrOutOfRange for a bad row or col.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)(c-1)).
func Minor(d *Dense, row, col int) (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opMinor, ErrNilMatrix)
	}
	if d.r < 2 || d.c < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if _, err := d.indexOf(row, col); err != nil {
		return nil, denseErrorf(opMinor, row, col, err)
	}

	return minorOf(d, row, col), nil
}

// Cofactor returns (−1)^(row+col) · det(minor(d, row, col)).
// For a 1×1 input the cofactor of its only cell is 1 (empty-minor convention).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge, ErrOutOfRange.
func Cofactor(d *Dense, row, col int) (float64, error) {
	if d == nil {
		return 0, matrixErrorf(opCofactor, ErrNilMatrix)
	}
	if err := validateKernel(d); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if _, err := d.indexOf(row, col); err != nil {
		return 0, denseErrorf(opCofactor, row, col, err)
	}

	return cofactor(d, row, col), nil
}

// cofactor is the unchecked variant used by adjugate.
func cofactor(d *Dense, row, col int) float64 {
	if d.r == 1 {
		return 1
	}
	v := det(minorOf(d, row, col))
	if (row+col)%2 == 1 {
		return -v
	}

	return v
}

// Adjugate returns the transpose of the cofactor matrix of a square Dense.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOrderTooLarge.
// Complexity: O(n² · (n-1)!).
func Adjugate(d *Dense) (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opAdjugate, ErrNilMatrix)
	}
	if err := validateKernel(d); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adjugate(d), nil
}

// adjugate writes cofactor (r,c) into (c,r), i.e. builds Cᵀ directly.
func adjugate(d *Dense) *Dense {
	n := d.r
	adj := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: d.validateNaNInf, maxOrder: d.maxOrder}
	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			adj.data[c*n+r] = cofactor(d, r, c)
		}
	}

	return adj
}

// kernelSnapshot validates a Matrix for the cofactor kernel and materializes it.
// Order of checks: square → order bound → unset cells.
func (m *Matrix) kernelSnapshot(tag string) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateOrder(m.rows, m.opts.maxOrder); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := m.Dense()
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return d, nil
}

// Determinant returns det(m) by cofactor expansion along the first row.
//
// Errors:
//   - ErrNonSquare, ErrOrderTooLarge, ErrUnsetCell.
//
// Complexity:
//   - Time O(n!), recursion depth n.
func (m *Matrix) Determinant() (float64, error) {
	d, err := m.kernelSnapshot(opDeterminant)
	if err != nil {
		return 0, err
	}

	return det(d), nil
}

// Minor returns a new Matrix with the given row and column deleted. Unset
// cells are copied as they are; m is not modified.
// Errors: ErrInvalidDimensions for a single row or column, ErrOutOfRange.
func (m *Matrix) Minor(row, col int) (*Matrix, error) {
	if m.rows < 2 || m.cols < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if !m.inBounds(row, col) {
		return nil, cellErrorf(opMinor, row, col, ErrOutOfRange)
	}
	out := newWithOptions(m.rows-1, m.cols-1, m.opts)
	var i, j, oi, oj int
	for i = 0; i < m.rows; i++ {
		if i == row {
			continue
		}
		oj = 0
		for j = 0; j < m.cols; j++ {
			if j == col {
				continue
			}
			out.elements[Key{Row: oi, Col: oj}] = m.elements[Key{Row: i, Col: j}]
			oj++
		}
		oi++
	}

	return out, nil
}

// Cofactor returns the signed minor determinant at (row, col).
// Errors: ErrNonSquare, ErrOrderTooLarge, ErrUnsetCell, ErrOutOfRange.
func (m *Matrix) Cofactor(row, col int) (float64, error) {
	d, err := m.kernelSnapshot(opCofactor)
	if err != nil {
		return 0, err
	}
	if !m.inBounds(row, col) {
		return 0, cellErrorf(opCofactor, row, col, ErrOutOfRange)
	}

	return cofactor(d, row, col), nil
}

// Adjugate returns adj(m) = Cᵀ as a new Matrix.
// Errors: ErrNonSquare, ErrOrderTooLarge, ErrUnsetCell.
func (m *Matrix) Adjugate() (*Matrix, error) {
	d, err := m.kernelSnapshot(opAdjugate)
	if err != nil {
		return nil, err
	}
	out, err := adjugate(d).toMatrix(m.opts)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return out, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m) as a new Matrix with m's options.
// Implementation:
//   - Stage 1: validate square, order bound and numeric cells; snapshot.
//   - Stage 2: det by cofactor expansion; exact zero ⇒ ErrSingular.
//   - Stage 3: adjugate, then divide every entry by det.
//
// Errors:
//   - ErrNonSquare, ErrOrderTooLarge, ErrUnsetCell, ErrSingular,
//     ErrNaNInf if the division overflows under the numeric policy.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func (m *Matrix) Inverse() (*Matrix, error) {
	d, err := m.kernelSnapshot(opInverse)
	if err != nil {
		return nil, err
	}
	dt := det(d)
	if dt == ZeroPivot {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=0: %w", ErrSingular))
	}
	adj := adjugate(d)
	for idx := range adj.data {
		adj.data[idx] /= dt
	}
	out, err := adj.toMatrix(m.opts)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return out, nil
}
