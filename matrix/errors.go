// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in option
// constructors (nonsensical configuration values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> numeric policy.

var (
	// ErrInvalidDimensions indicates that a requested shape is non-positive
	// (e.g., rows<=0, cols<=0, or a zero-length diagonal).
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column, or diagonal
	// position) is outside valid bounds. Public indexers MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Sum with different shapes, a diagonal whose length does not
	// match the relevant dense dimension, or an assignment whose destination
	// shape differs from the source expression.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix expression (receiver or
	// argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix operand")

	// ErrNilVector indicates that a nil vector expression was used where a
	// vector operand is required (AsDiagonal, AddVec, diagonal ingestion).
	ErrNilVector = errors.New("matrix: nil vector operand")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, diagonal ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadShape is returned when a requested view window is invalid
	// (negative offsets/extents or a window escaping the base matrix).
	ErrBadShape = errors.New("matrix: invalid shape")
)
