// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented constructors for common shapes.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// NewZeros returns a rows×cols matrix with every cell set to numeric zero.
// Complexity: O(r*c).
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	return zerosWithOptions(rows, cols, gatherOptions(opts...)), nil
}

// zerosWithOptions builds an r×c zero matrix with a resolved configuration (r, c > 0).
func zerosWithOptions(rows, cols int, o Options) *Matrix {
	m := newWithOptions(rows, cols, o)
	zero := Val(0)
	for k := range m.elements {
		m.elements[k] = zero
	}

	return m
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n <= 0.
// Complexity: O(n^2).
func Identity(n int, opts ...Option) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	return identityWithOptions(n, gatherOptions(opts...)), nil
}

// identityWithOptions builds I_n with a resolved configuration (n > 0).
func identityWithOptions(n int, o Options) *Matrix {
	m := zerosWithOptions(n, n, o)
	for i := 0; i < n; i++ {
		m.elements[Key{Row: i, Col: i}] = Val(1)
	}

	return m
}

// ZerosLike returns a zero matrix with the shape and options of m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return zerosWithOptions(m.rows, m.cols, m.opts), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return identityWithOptions(m.rows, m.opts), nil
}

// Product chains left-to-right multiplication: ms[0] × ms[1] × … × ms[k-1].
// Operands are not mutated. Errors: ErrNilMatrix for an empty chain, plus Mul errors.
func Product(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc := ms[0].Clone()
	var err error
	for _, next := range ms[1:] {
		if acc, err = acc.Mul(next); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
