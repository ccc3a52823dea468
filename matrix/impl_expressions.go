// SPDX-License-Identifier: MIT
// Package matrix - expression composition and comparison kernels.
//
// Purpose:
//   - Declare operation tags and the uniform error wrapper shared across the
//     package (no magic strings at call sites).
//   - Provide the lazy elementwise Sum expression: the dense operand of a
//     diagonal product may itself be a deferred sum, so D*(M1+M2) evaluates
//     without an intermediate dense allocation.
//   - Provide AllClose, the approximate-equality kernel used by Equal and by
//     tests.
//
// Notes:
//   - Composition is O(1); only Assign / NewDenseFromExpr walk index ranges.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opSum         = "Sum"
	opAddVec      = "AddVec"
	opMulDiag     = "MulDiag"
	opAsDiagonal  = "AsDiagonal"
	opNewDiagonal = "NewDiagonal"
	opSetDiagonal = "SetDiagonal"
	opToDense     = "ToDense"
	opFromExpr    = "FromExpr"
	opAssign      = "Assign"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil
// cause. Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sumExpr is the deferred elementwise sum of two matrix expressions.
// No mutable state; purely a description of a(i,j)+b(i,j).
type sumExpr struct {
	a, b Expr // operands (non-nil, same shape; enforced by Sum)
}

var _ Expr = (*sumExpr)(nil)

// Sum builds the lazy elementwise sum a+b as an Expr.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b) — nil and shape checks, fail fast.
//   - Stage 2: return the O(1) composition; nothing is evaluated here.
//
// Behavior highlights:
//   - Composes with diagonal products: MulDiagLeft(D, Sum(m1,m2)) evaluates
//     D.diagonal(i)*(m1+m2)(i,j) per element, with no intermediate dense sum.
//   - Elementwise evaluation order matches direct computation, so no
//     reordering changes rounding beyond d_i*(a_ij+b_ij).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(1), Space O(1) at construction; At costs two operand reads.
//
// AI-Hints:
//   - Materialize with NewDenseFromExpr only when the sum is reused many
//     times; for a single assignment the lazy form is strictly cheaper.
func Sum(a, b Expr) (Expr, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSum, err)
	}

	return &sumExpr{a: a, b: b}, nil
}

// Rows returns the operand row count (shapes match by construction).
// Complexity: O(1).
func (s *sumExpr) Rows() int { return s.a.Rows() }

// Cols returns the operand column count.
// Complexity: O(1).
func (s *sumExpr) Cols() int { return s.a.Cols() }

// At evaluates a(i,j)+b(i,j) lazily.
// Complexity: O(depth) per element.
func (s *sumExpr) At(i, j int) (float64, error) {
	av, err := s.a.At(i, j)
	if err != nil {
		return 0, matrixErrorf(opSum, err)
	}
	bv, err := s.b.At(i, j)
	if err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	return av + bv, nil
}

// overlaps: a sum reads whatever either operand reads.
func (s *sumExpr) overlaps(base *Dense, r0, c0, rows, cols int) bool {
	return s.a.overlaps(base, r0, c0, rows, cols) || s.b.overlaps(base, r0, c0, rows, cols)
}

// AllClose reports whether a and b evaluate elementwise within eps.
// Implementation:
//   - Stage 1: validate operands non-nil, shapes equal, eps finite and ≥ 0.
//   - Stage 2: fixed i→j scan; fail fast on the first |a-b| > eps.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (invalid eps), plus any
//     error surfaced by operand At.
//
// Determinism:
//   - Fixed i→j order ensures reproducible short-circuiting.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use DefaultEpsilon for float64 results of single-multiply evaluation;
//     widen only when comparing against independently reordered arithmetic.
func AllClose(a, b Expr, eps float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(eps) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if eps < 0 {
		// Negative tolerance makes little semantic sense; flip to absolute.
		eps = -eps
	}

	rows, cols := a.Rows(), a.Cols()
	var (
		i, j   int     // loop counters (fixed i→j order)
		av, bv float64 // element temporaries
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if math.Abs(av-bv) > eps {
				return false, nil // fast negative path
			}
		}
	}

	return true, nil
}
