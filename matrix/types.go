// SPDX-License-Identifier: MIT

// Package matrix: domain interfaces for the lazy-expression core.
// This file intentionally contains ONLY the interface surface (expressions,
// vectors, diagonals, assignable targets). Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package matrix

// Expr is a read-only, lazily evaluable matrix expression.
//
// An Expr describes a computation over a two-dimensional index range; it is
// never mutated and carries no evaluation state. Concrete expressions are
// either storage (Dense, views) or compositions (Sum, diagonal products)
// whose At defers to the operands. Only Assign / NewDenseFromExpr walk the
// full index range; everything before that stays O(1).
//
// The unexported overlaps probe keeps the expression set closed inside this
// package: the evaluator must be able to enumerate every dense storage
// region an expression reads in order to make the aliasing decision.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for storage and O(depth)
// for composed expressions.
type Expr interface {
	// Rows returns the number of rows of the expression.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns of the expression.
	// Complexity: O(1).
	Cols() int

	// At evaluates the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1) per element for storage-backed expressions.
	At(i, j int) (float64, error)

	// overlaps reports whether evaluating any element of this expression
	// reads the window [r0:r0+rows, c0:c0+cols) of the given base buffer.
	// Used by Assign to choose direct vs. buffered evaluation.
	overlaps(base *Dense, r0, c0, rows, cols int) bool
}

// Target is a writable dense destination for Assign: a full Dense, a
// sub-block view, or a transposed view. Every Target is also an Expr, so a
// destination can appear inside the source expression (the aliasing case).
type Target interface {
	Expr

	// Set assigns the value v at position (i, j) in target coordinates.
	// Returns ErrOutOfRange on invalid indices, ErrNaNInf under the numeric
	// policy of the backing storage.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// window describes the storage rectangle this target writes:
	// the owning base buffer plus the window offsets and extents in base
	// coordinates. Assign intersects source reads against this rectangle.
	window() (base *Dense, r0, c0, rows, cols int)
}

// VectorExpr is a read-only, lazily evaluable vector expression: a stored
// Vector or a deferred elementwise sum (AddVec). Diagonal views accept any
// VectorExpr, so (v1+v2) can be treated as a diagonal without materializing
// the sum.
type VectorExpr interface {
	// Len returns the number of elements.
	// Complexity: O(1).
	Len() int

	// AtVec evaluates the i-th element.
	// Returns ErrOutOfRange if i<0 or i>=Len().
	// Complexity: O(1) for storage, O(depth) for compositions.
	AtVec(i int) (float64, error)
}

// Diagonal is a square matrix whose only nonzero entries lie on the main
// diagonal, represented compactly by its diagonal vector. Implemented by the
// owning DiagonalMatrix and the borrowing DiagonalView.
//
// A Diagonal is also an Expr: At(i,j) yields Diagonal(i) on the main
// diagonal and the additive identity elsewhere, so diagonals can be assigned
// into dense destinations directly.
type Diagonal interface {
	Expr

	// Diag returns the diagonal length (== Rows() == Cols()).
	// Complexity: O(1).
	Diag() int

	// Diagonal evaluates the i-th diagonal entry.
	// Returns ErrOutOfRange if i<0 or i>=Diag().
	// Complexity: O(1).
	Diagonal(i int) (float64, error)

	// DiagVector returns the underlying diagonal as a vector expression,
	// for equality comparisons and re-ingestion. Non-owning: the returned
	// expression reads the same values this Diagonal evaluates.
	// Complexity: O(1).
	DiagVector() VectorExpr
}

// DiagSide tags the operand order of a diagonal product.
type DiagSide uint8

const (
	// DiagLeft marks D*M: each output row is a scalar multiple of the
	// corresponding input row.
	DiagLeft DiagSide = iota

	// DiagRight marks M*D: each output column is a scalar multiple of the
	// corresponding input column.
	DiagRight
)
