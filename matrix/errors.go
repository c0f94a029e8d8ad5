// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; the gonum view is the single
// exception because gonum's own contract is to panic on misuse.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with their tag via matrixErrorf
// or cellErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape (square / dimension mismatch) -> order bound
// -> index range -> unset cells / NaN policy -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Explicit cell access, submatrix bounds and swaps return it; fills never do.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Hadamard on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when Inverse meets a determinant that is exactly zero.
	// No tolerance is applied.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUnsetCell signals that arithmetic touched a cell still holding a
	// non-numeric empty sentinel.
	ErrUnsetCell = errors.New("matrix: cell holds no value")

	// ErrNaNInf signals a NaN or ±Inf value was written while the numeric
	// policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOrderTooLarge is returned by the cofactor kernel when the order of the
	// matrix exceeds the configured bound (see WithMaxOrder).
	ErrOrderTooLarge = errors.New("matrix: order exceeds cofactor expansion limit")

	// ErrNegativeExponent is returned by Power for n < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrNilMatrix indicates that a nil *Matrix or *Dense operand was used.
	ErrNilMatrix = errors.New("matrix: nil operand")
)
