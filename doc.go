// Package cellmat is a keyed matrix algebra engine: an arbitrarily sized
// matrix whose cells live in a (row, column) → value mapping, with structural
// manipulation and textbook linear algebra on top.
//
// What is inside?
//
//	A small, deterministic, single-owner library that brings together:
//		• Addressing: cell / row / column / all-cells selectors over the store
//		• Structural ops: transpose, submatrix, row/column swaps, fills
//		  (rectangle, circle, diagonal) with silent clipping
//		• Algebra: add, multiply (matrix and scalar), Hadamard, trace, power,
//		  Frobenius norm
//		• Cofactor kernel: determinant by Laplace expansion, minors,
//		  cofactors, adjugate and inverse
//		• gonum interop: a live mat.Matrix view and FromGonum
//
// Why the cofactor kernel?
//
//   - Exact, order-independent results for small integer-valued inputs.
//   - Simple to audit: every number is a sum of signed products.
//   - Cost is O(n!), so orders are bounded (matrix.WithMaxOrder).
//
// Everything is organized under one subpackage:
//
//	matrix/ — Matrix store, Selector, Dense snapshot, kernels, options, errors
//
// Quick ASCII example:
//
//	[1, 2]        det = -2        [-2,    1]
//	[3, 4]   ──►               ──►[1.5, -0.5]   (inverse)
//
//	go get github.com/katalvlaran/cellmat/matrix
package cellmat
