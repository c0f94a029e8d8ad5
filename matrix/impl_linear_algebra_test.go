// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the cofactor kernel.
//
// Coverage:
//   - closed-form determinants and Laplace expansion (n = 1..6),
//   - minor / cofactor / adjugate identities,
//   - inverse exactness on small integers, singular and order-bound failures,
//   - agreement with gonum's LU-based Det and Inverse.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/cellmat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDeterminant_Table(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"I3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"singular 3x3", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"upper triangular 4x4", [][]float64{{2, 1, 0, 3}, {0, 3, 1, 1}, {0, 0, 4, 2}, {0, 0, 0, 5}}, 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := MustFromRows(t, tc.in).Determinant()
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}
}

func TestDeterminant_AgreesWithGonum(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := RandomMatrix(t, n, n, int64(100+n))
			got, err := m.Determinant()
			require.NoError(t, err)

			want := mat.Det(mat.DenseCopyOf(m.Gonum()))
			require.InDelta(t, want, got, 1e-9)
		})
	}
}

func TestDeterminant_Properties(t *testing.T) {
	a := RandomMatrix(t, 4, 4, 7)
	b := RandomMatrix(t, 4, 4, 8)

	da, err := a.Determinant()
	require.NoError(t, err)
	db, err := b.Determinant()
	require.NoError(t, err)

	ab, err := a.Mul(b)
	require.NoError(t, err)
	dab, err := ab.Determinant()
	require.NoError(t, err)
	require.InDelta(t, da*db, dab, 1e-9)

	at := a.Clone()
	at.Transpose()
	dat, err := at.Determinant()
	require.NoError(t, err)
	require.InDelta(t, da, dat, 1e-12)

	// Swapping two rows flips the sign.
	require.NoError(t, a.SwapRows(0, 3))
	ds, err := a.Determinant()
	require.NoError(t, err)
	require.InDelta(t, -da, ds, 1e-12)
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := MustZeros(t, 2, 3).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	m, err := matrix.Identity(3, matrix.WithMaxOrder(2))
	require.NoError(t, err)
	_, err = m.Determinant()
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)

	big := MustIdentity(t, matrix.DefaultMaxOrder+1)
	_, err = big.Determinant()
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)
	_, err = big.Inverse()
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)

	u := MustZeros(t, 2, 2)
	require.NoError(t, u.Delete(matrix.SelectCell(0, 1)))
	_, err = u.Determinant()
	require.ErrorIs(t, err, matrix.ErrUnsetCell)
}

func TestMinor(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	mi, err := m.Minor(1, 1)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1, 3}, {7, 9}}, mi)

	mi, err = m.Minor(0, 2)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{4, 5}, {7, 8}}, mi)

	// Non-square input is fine for a minor.
	rect := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	mi, err = rect.Minor(0, 1)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{4, 6}}, mi)

	_, err = m.Minor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = MustZeros(t, 1, 3).Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMinor_CopiesUnsetCells(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, m.Delete(matrix.SelectCell(2, 2)))

	mi, err := m.Minor(0, 0)
	require.NoError(t, err)
	e, err := mi.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.Empty, e)
}

func TestCofactor(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	for _, tc := range []struct {
		r, c int
		want float64
	}{
		{0, 0, 4}, {0, 1, -3}, {1, 0, -2}, {1, 1, 1},
	} {
		got, err := m.Cofactor(tc.r, tc.c)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "C(%d,%d)", tc.r, tc.c)
	}

	one := MustFromRows(t, [][]float64{{5}})
	c, err := one.Cofactor(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, c)

	_, err = m.Cofactor(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// Laplace expansion along any row reproduces the determinant.
func TestCofactor_ExpansionAlongEveryRow(t *testing.T) {
	m := MustFromRows(t, [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}})
	for r := 0; r < 3; r++ {
		sum := 0.0
		for c := 0; c < 3; c++ {
			e, err := m.At(r, c)
			require.NoError(t, err)
			cf, err := m.Cofactor(r, c)
			require.NoError(t, err)
			sum += e.Value * cf
		}
		require.Equal(t, -306.0, sum, "row %d", r)
	}
}

func TestAdjugate(t *testing.T) {
	adj, err := MustFromRows(t, [][]float64{{1, 2}, {3, 4}}).Adjugate()
	require.NoError(t, err)
	RequireRows(t, [][]float64{{4, -2}, {-3, 1}}, adj)

	// A · adj(A) = det(A) · I
	a := MustFromRows(t, [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}})
	adj, err = a.Adjugate()
	require.NoError(t, err)
	prod, err := a.Mul(adj)
	require.NoError(t, err)
	want := MustIdentity(t, 3)
	require.NoError(t, want.Scale(6))
	require.True(t, want.Equal(prod))

	_, err = MustZeros(t, 2, 1).Adjugate()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_Exact(t *testing.T) {
	inv, err := MustFromRows(t, [][]float64{{1, 2}, {3, 4}}).Inverse()
	require.NoError(t, err)
	RequireRows(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv)

	inv, err = MustFromRows(t, [][]float64{{4}}).Inverse()
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0.25}}, inv)
}

func TestInverse_Singular(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := m.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = MustZeros(t, 1, 1).Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_RoundTrip(t *testing.T) {
	for n := 2; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := WellConditioned(t, n, int64(n))
			inv, err := m.Inverse()
			require.NoError(t, err)

			left, err := inv.Mul(m)
			require.NoError(t, err)
			right, err := m.Mul(inv)
			require.NoError(t, err)

			id := MustIdentity(t, n)
			RequireClose(t, id, left, 1e-9)
			RequireClose(t, id, right, 1e-9)

			var want mat.Dense
			require.NoError(t, want.Inverse(mat.DenseCopyOf(m.Gonum())))
			require.True(t, mat.EqualApprox(inv.Gonum(), &want, 1e-9))
		})
	}
}

func TestInverse_Involution(t *testing.T) {
	m := WellConditioned(t, 4, 99)
	inv, err := m.Inverse()
	require.NoError(t, err)
	back, err := inv.Inverse()
	require.NoError(t, err)
	RequireClose(t, m, back, 1e-9)
}

func TestInverse_OverflowUnderPolicy(t *testing.T) {
	tiny := MustFromRows(t, [][]float64{{math.SmallestNonzeroFloat64}})
	_, err := tiny.Inverse()
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	lax := MustFromRows(t, [][]float64{{math.SmallestNonzeroFloat64}}, matrix.WithNoValidateNaNInf())
	inv, err := lax.Inverse()
	require.NoError(t, err)
	e, err := inv.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(e.Value, 1))
}

func TestDenseKernels(t *testing.T) {
	d, err := matrix.DenseFromRows([][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}})
	require.NoError(t, err)

	det, err := matrix.Det(d)
	require.NoError(t, err)
	require.Equal(t, -306.0, det)

	mi, err := matrix.Minor(d, 0, 0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-2, 5}, {8, 7}}, mi.RawRows())

	cf, err := matrix.Cofactor(d, 0, 1)
	require.NoError(t, err)
	require.Equal(t, -18.0, cf)

	adj, err := matrix.Adjugate(d)
	require.NoError(t, err)
	require.Equal(t, 3, adj.Rows())

	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.Det(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Cofactor(rect, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Adjugate(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Cofactor(d, 0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := matrix.NewDense(1, 3)
	require.NoError(t, err)
	_, err = matrix.Minor(row, 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Minor(d, -1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDenseKernels_OrderBound(t *testing.T) {
	rows := make([][]float64, matrix.DefaultMaxOrder+2)
	for i := range rows {
		rows[i] = make([]float64, len(rows))
		rows[i][i] = 1
	}
	d, err := matrix.DenseFromRows(rows)
	require.NoError(t, err)
	require.Equal(t, matrix.DefaultMaxOrder, d.MaxOrder())

	_, err = matrix.Det(d)
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)
	_, err = matrix.Cofactor(d, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)
	_, err = matrix.Adjugate(d)
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)

	// Minor is polynomial and stays available; the minor keeps the bound.
	mi, err := matrix.Minor(d, 0, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.DefaultMaxOrder, mi.MaxOrder())
	det, err := matrix.Det(mi.Clone())
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge) // order DefaultMaxOrder+1
	require.Zero(t, det)

	small, err := matrix.DenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}, matrix.WithMaxOrder(2))
	require.NoError(t, err)
	_, err = matrix.Det(small)
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)

	// Snapshots inherit the store's bound.
	snap, err := MustIdentity(t, 3).Dense()
	require.NoError(t, err)
	require.Equal(t, matrix.DefaultMaxOrder, snap.MaxOrder())
	m, err := matrix.Identity(3, matrix.WithMaxOrder(5))
	require.NoError(t, err)
	snap, err = m.Dense()
	require.NoError(t, err)
	require.Equal(t, 5, snap.MaxOrder())
}
