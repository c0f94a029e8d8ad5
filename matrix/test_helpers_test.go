// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the store and kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cellmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew ALLOCATES an r×c *Matrix (all cells empty) or fails the test.
func MustNew(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c, opts...)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustFromRows BUILDS a *Matrix from row-major data or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err, "FromRows")

	return m
}

// MustZeros ALLOCATES an r×c zero matrix or fails the test.
func MustZeros(t testing.TB, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewZeros(r, c)
	require.NoError(t, err, "NewZeros(%d,%d)", r, c)

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err, "Identity(%d)", n)

	return m
}

// Rows EXTRACTS the numeric contents of m as [][]float64 (all cells must be set).
func Rows(t testing.TB, m *matrix.Matrix) [][]float64 {
	t.Helper()
	d, err := m.Dense()
	require.NoError(t, err, "Dense snapshot")

	return d.RawRows()
}

// RequireRows ASSERTS exact equality of m's contents with want.
func RequireRows(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	r, c := m.Shape()
	require.Equal(t, len(want), r, "rows")
	require.Equal(t, len(want[0]), c, "cols")
	require.Equal(t, want, Rows(t, m))
}

// RequireClose ASSERTS element-wise closeness of a and b within tol.
func RequireClose(t testing.TB, a, b *matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := a.AllClose(b, tol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ beyond %g:\n%s\nvs\n%s", tol, a, b)
}

// RandomMatrix FILLS an r×c matrix with deterministic U(-1,1) values by seed.
func RandomMatrix(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([][]float64, r)
	for i := range data {
		data[i] = make([]float64, c)
		for j := range data[i] {
			data[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustFromRows(t, data)
}

// WellConditioned RETURNS a random n×n matrix with n added to the diagonal,
// which keeps it strictly diagonally dominant (hence invertible).
func WellConditioned(t testing.TB, n int, seed int64) *matrix.Matrix {
	t.Helper()
	m := RandomMatrix(t, n, n, seed)
	for i := 0; i < n; i++ {
		e, err := m.At(i, i)
		require.NoError(t, err)
		require.NoError(t, m.Insert(e.Value+float64(n), matrix.SelectCell(i, i)))
	}

	return m
}

// vals WRAPS plain numbers into valid Elements.
func vals(vs ...float64) []matrix.Element {
	out := make([]matrix.Element, len(vs))
	for i, v := range vs {
		out[i] = matrix.Val(v)
	}

	return out
}
