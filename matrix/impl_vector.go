// SPDX-License-Identifier: MIT

// Package matrix - Vector storage and lazy vector expressions.
//
// Purpose:
//   - Provide the flat []float64 vector container that backs diagonal
//     matrices and diagonal views.
//   - Provide the deferred elementwise sum (AddVec) so that a vector sum can
//     be treated as a diagonal without materializing an intermediate vector.
//
// Determinism & Performance:
//   - AtVec is O(1) on storage and O(depth) on compositions; no allocations
//     happen after construction.

package matrix

import "fmt"

// vectorErrorf wraps an error with a uniform Vector context and index.
// Complexity: O(1).
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a concrete flat vector of float64 values.
//   - data holds n elements.
//   - validateNaNInf enables optional NaN/Inf rejection in SetVec.
type Vector struct {
	data           []float64 // contiguous storage
	validateNaNInf bool      // numeric guard: reject NaN/Inf in SetVec when true
}

// Compile-time assertions for interface conformance.
var (
	_ VectorExpr = (*Vector)(nil)
	_ VectorExpr = (*vecSum)(nil)
)

// NewVector creates a zero vector of length n.
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidDimensions.
//   - Stage 2: resolve numeric policy and allocate.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector(n int, opts ...Option) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Vector{
		data:           make([]float64, n),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewVectorFromSlice creates a vector by copying vals.
// The input slice is copied, so later mutations of vals do not leak in.
// Under the numeric policy, non-finite entries are rejected eagerly.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrNaNInf (policy violation).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVectorFromSlice(vals []float64, opts ...Option) (*Vector, error) {
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	// Policy scan before allocation: fail fast, allocate nothing on error.
	if o.validateNaNInf {
		for i, v := range vals {
			if isNonFinite(v) {
				return nil, vectorErrorf("NewVectorFromSlice", i, ErrNaNInf)
			}
		}
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)

	return &Vector{data: cp, validateNaNInf: o.validateNaNInf}, nil
}

// Len returns the number of elements. No side effects.
// Complexity: O(1).
func (v *Vector) Len() int { return len(v.data) }

// AtVec returns the i-th element or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) AtVec(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf("AtVec", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// SetVec stores val at index i, honoring the numeric policy.
// Errors: ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
// Complexity: O(1).
func (v *Vector) SetVec(i int, val float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf("SetVec", i, ErrOutOfRange)
	}
	if v.validateNaNInf && isNonFinite(val) {
		return vectorErrorf("SetVec", i, ErrNaNInf)
	}
	v.data[i] = val

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp, validateNaNInf: v.validateNaNInf}
}

// vecSum is the deferred elementwise sum of two vector expressions.
// No mutable state; purely a description of a(i)+b(i).
type vecSum struct {
	a, b VectorExpr // operands (non-nil, equal length; enforced by AddVec)
}

// AddVec builds the lazy elementwise sum a+b as a VectorExpr.
// Implementation:
//   - Stage 1: ValidateSameLen(a, b) — nil and length checks, fail fast.
//   - Stage 2: return the O(1) composition; nothing is evaluated here.
//
// Behavior highlights:
//   - (AddVec(v1,v2)) composes with AsDiagonal: the diagonal of a vector sum
//     evaluates each entry on demand, exactly once per access.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(1), Space O(1) at construction; AtVec costs two operand reads.
//
// AI-Hints:
//   - Chain AddVec results freely; depth of the composition is the only
//     per-element cost.
func AddVec(a, b VectorExpr) (VectorExpr, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opAddVec, err)
	}

	return &vecSum{a: a, b: b}, nil
}

// Len returns the operand length (both operands match by construction).
// Complexity: O(1).
func (s *vecSum) Len() int { return s.a.Len() }

// AtVec evaluates a(i)+b(i) lazily.
// Complexity: O(depth) per element.
func (s *vecSum) AtVec(i int) (float64, error) {
	av, err := s.a.AtVec(i)
	if err != nil {
		return 0, matrixErrorf(opAddVec, err)
	}
	bv, err := s.b.AtVec(i)
	if err != nil {
		return 0, matrixErrorf(opAddVec, err)
	}

	return av + bv, nil
}
