// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the keyed matrix store.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are captured at construction time (New, FromRows, Identity, ...)
//     and carried by every matrix derived from the receiver (Clone, Submatrix,
//     Mul, Hadamard, Power, Inverse).
//   - The empty sentinel is non-numeric by default. WithEmpty turns it into a
//     number, after which unset cells take part in arithmetic with that value.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Insert,
	// SetKey, fills and every computed result written into a store.
	DefaultValidateNaNInf = true

	// DefaultMaxOrder bounds the order accepted by the cofactor kernel
	// (Determinant, Cofactor, Adjugate, Inverse). 10! ≈ 3.6M leaf products.
	DefaultMaxOrder = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEmptyInvalid    = "matrix: WithEmpty: sentinel must be finite"
	panicMaxOrderInvalid = "matrix: WithMaxOrder: order must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	empty          Element // sentinel written by New and Delete
	validateNaNInf bool    // DefaultValidateNaNInf
	maxOrder       int     // DefaultMaxOrder
}

// WithEmpty makes the empty sentinel numeric: every unset cell holds v and
// participates in arithmetic (Add, Mul, Norm, Determinant, ...) as v.
// Implementation:
//   - Stage 1: validate v is finite.
//   - Stage 2: return a setter that stores Val(v) as the sentinel.
//
// Errors:
//   - Panics with a stable message when v is NaN or ±Inf (NaN never compares
//     equal, so Find/Delete could not recognise the sentinel).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEmpty(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicEmptyInvalid)
	}

	return func(o *Options) { o.empty = Val(v) }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
//
// Notes:
//   - This flag propagates only on creation; existing matrices are unaffected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMaxOrder sets the largest order n accepted by the cofactor kernel.
// Cofactor expansion costs O(n!) and recurses n levels deep, so the bound is
// the caller's time and stack budget.
//
// Errors:
//   - Panics when n < 1.
func WithMaxOrder(n int) Option {
	if n < 1 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = n }
}

// NewMatrixOptions resolves a set of Option setters into an Options snapshot.
// Exposed mainly for tests and for callers that want to inspect defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Empty returns the configured empty sentinel.
func (o Options) Empty() Element { return o.empty }

// ValidateNaNInf reports whether non-finite writes are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// MaxOrder returns the cofactor kernel order bound.
func (o Options) MaxOrder() int { return o.maxOrder }

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		empty:          Empty,
		validateNaNInf: DefaultValidateNaNInf,
		maxOrder:       DefaultMaxOrder,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
