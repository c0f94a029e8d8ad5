// Package matrix implements a keyed matrix store and the algebra built on it.
//
// The matrix package provides:
//
//   - Matrix: a rows×cols store mapping Key{Row, Col} (0-based) to Element.
//     Every cell exists from construction on and starts as the empty sentinel
//     (non-numeric by default; numeric with WithEmpty).
//   - Selectors (SelectCell, SelectRow, SelectColumn, SelectAll) that drive
//     Get, Insert and Delete. At reads a single cell.
//   - Structural operations: Transpose, Submatrix, SwapRows, SwapColumns,
//     FillRect, FillCirc, FillDiagonal.
//   - Algebra: Add, Scale (in place); Mul, Hadamard, Power (new matrices);
//     Trace, Norm.
//   - A cofactor kernel over Dense snapshots: Det, Minor, Cofactor, Adjugate,
//     plus Matrix.Determinant and Matrix.Inverse.
//   - gonum interoperability through Matrix.Gonum and FromGonum.
//
// Cofactor expansion is O(n!); it is meant for small matrices. Orders above
// DefaultMaxOrder (configurable with WithMaxOrder) are refused.
//
// A Matrix is not safe for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
