// SPDX-License-Identifier: MIT

// Package matrix - lazy diagonal products.
//
// Purpose:
//   - DiagProduct is the deferred representation of D*M (diagonal-left) and
//     M*D (diagonal-right). Construction is O(1) and validates the matching
//     dimension eagerly; no computation happens until the expression is
//     assigned (Assign) or materialized (NewDenseFromExpr).
//
// Element semantics (the whole point of a dedicated expression):
//   - Diagonal-left:  (D*M)(i,j) = D.diagonal(i) * M(i,j) — each output row
//     is a scalar multiple of the corresponding input row.
//   - Diagonal-right: (M*D)(i,j) = M(i,j) * D.diagonal(j) — each output
//     column is a scalar multiple of the corresponding input column.
//
// There is NO inner-product reduction: access is one multiply per element,
// so a full evaluation is O(rows*cols), not O(rows*cols*inner) as a generic
// dense product would be.

package matrix

import "fmt"

// DiagProduct is the deferred product of a diagonal and a dense expression.
// Operand references are held as-is; the dense operand may itself be a lazy
// sum. No mutable state; purely a description of the computation.
type DiagProduct struct {
	d    Diagonal // diagonal operand (non-nil; dimension pre-validated)
	m    Expr     // dense operand (matrix, view, or lazy composition)
	side DiagSide // DiagLeft for D*M, DiagRight for M*D
}

var _ Expr = (*DiagProduct)(nil)

// MulDiagLeft builds the lazy product D*M.
// Implementation:
//   - Stage 1: ValidateDiagLeft — nil checks and d.Diag() == m.Rows(),
//     surfaced BEFORE any element is computed.
//   - Stage 2: return the O(1) tagged composition.
//
// Behavior highlights:
//   - m may be a Dense, a view, or a lazy Sum; its elements are read on
//     demand, preserving expression composability.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(1), Space O(1) at construction; At is one multiply.
//
// AI-Hints:
//   - Row scaling: wrap the row factors in a Vector, AsDiagonal, MulDiagLeft,
//     then Assign — the evaluator handles in-place destinations safely.
func MulDiagLeft(d Diagonal, m Expr) (*DiagProduct, error) {
	if err := ValidateDiagLeft(d, m); err != nil {
		return nil, matrixErrorf(opMulDiag, err)
	}

	return &DiagProduct{d: d, m: m, side: DiagLeft}, nil
}

// MulDiagRight builds the lazy product M*D.
// Implementation:
//   - Stage 1: ValidateDiagRight — nil checks and d.Diag() == m.Cols(),
//     surfaced BEFORE any element is computed.
//   - Stage 2: return the O(1) tagged composition.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(1), Space O(1) at construction; At is one multiply.
func MulDiagRight(m Expr, d Diagonal) (*DiagProduct, error) {
	if err := ValidateDiagRight(m, d); err != nil {
		return nil, matrixErrorf(opMulDiag, err)
	}

	return &DiagProduct{d: d, m: m, side: DiagRight}, nil
}

// Rows returns the product row count (== dense operand rows).
// Complexity: O(1).
func (p *DiagProduct) Rows() int { return p.m.Rows() }

// Cols returns the product column count (== dense operand cols).
// Complexity: O(1).
func (p *DiagProduct) Cols() int { return p.m.Cols() }

// At evaluates one product element with a single multiply.
// Diagonal-left reads diagonal index i; diagonal-right reads index j. The
// dense operand's bounds checks cover (i,j); the diagonal index is in range
// whenever (i,j) is, by the construction-time dimension validation.
// Complexity: O(1) plus the dense operand's access cost.
func (p *DiagProduct) At(i, j int) (float64, error) {
	mv, err := p.m.At(i, j)
	if err != nil {
		return 0, matrixErrorf(opMulDiag, fmt.Errorf("At(%d,%d): %w", i, j, err))
	}

	// Select the diagonal index by operand order.
	di := i
	if p.side == DiagRight {
		di = j
	}
	dv, err := p.d.Diagonal(di)
	if err != nil {
		return 0, matrixErrorf(opMulDiag, fmt.Errorf("Diagonal(%d): %w", di, err))
	}

	return dv * mv, nil
}

// overlaps: the product reads whatever its dense operand reads; diagonal
// storage lives in a vector buffer and never aliases a dense base.
func (p *DiagProduct) overlaps(base *Dense, r0, c0, rows, cols int) bool {
	return p.m.overlaps(base, r0, c0, rows, cols)
}
