// SPDX-License-Identifier: MIT

// Package matrix - Diagonal storage and diagonal views.
//
// Purpose:
//   - DiagonalMatrix: compact owning representation of a diagonal matrix —
//     only the diagonal entries are stored; off-diagonal entries are
//     implicitly zero and never materialized.
//   - DiagonalView: non-owning, read-only projection of ANY vector
//     expression (stored vector or lazy sum) as a diagonal matrix, built in
//     O(1) by AsDiagonal.
//
// Lifetime contract:
//   - DiagonalView borrows its vector: it is valid only while the referenced
//     vector expression is alive. This is a caller precondition, not a
//     tracked relation. Assigning a view into a DiagonalMatrix
//     (NewDiagonalFromVector / SetFromVector) evaluates eagerly and decouples
//     the lifetimes.
//
// AI-Hints:
//   - ToDense exists for verification and export; products never go through
//     it — DiagProduct evaluates with one multiply per element.

package matrix

import "fmt"

// diagErrorf wraps an error with a uniform diagonal context and index.
// Complexity: O(1).
func diagErrorf(typ, method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, i, err)
}

// Type name tags for error wrapping (no magic strings at call sites).
const (
	tagDiagonalMatrix = "DiagonalMatrix"
	tagDiagonalView   = "DiagonalView"
)

// DiagonalMatrix owns the diagonal entries of a square diagonal matrix.
//   - data holds the n diagonal values; the matrix is n×n.
//   - validateNaNInf guards SetDiagonal and ingestion.
type DiagonalMatrix struct {
	data           []float64 // diagonal entries (len == n)
	validateNaNInf bool      // numeric guard for writes and ingestion
}

// Compile-time assertions for interface conformance.
var (
	_ Diagonal = (*DiagonalMatrix)(nil)
	_ Diagonal = (*DiagonalView)(nil)
)

// NewDiagonal creates an n×n diagonal matrix with a zero diagonal.
// Errors: ErrInvalidDimensions when n<=0.
// Complexity: O(n).
func NewDiagonal(n int, opts ...Option) (*DiagonalMatrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &DiagonalMatrix{
		data:           make([]float64, n),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDiagonalFromVector creates a diagonal matrix by eagerly evaluating and
// copying the given vector expression.
// Implementation:
//   - Stage 1: validate v non-nil and non-empty.
//   - Stage 2: evaluate v element-by-element into fresh storage, enforcing
//     the numeric policy on each value.
//
// Behavior highlights:
//   - Eager by design: the resulting matrix is independent of v's lifetime,
//     unlike AsDiagonal which borrows.
//
// Errors:
//   - ErrNilVector, ErrInvalidDimensions, ErrNaNInf, plus errors surfaced
//     by v.AtVec.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewDiagonalFromVector(v VectorExpr, opts ...Option) (*DiagonalMatrix, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, matrixErrorf(opNewDiagonal, err)
	}
	n := v.Len()
	if n <= 0 {
		return nil, matrixErrorf(opNewDiagonal, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	d := &DiagonalMatrix{
		data:           make([]float64, n),
		validateNaNInf: o.validateNaNInf,
	}
	if err := d.ingest(v); err != nil {
		return nil, matrixErrorf(opNewDiagonal, err)
	}

	return d, nil
}

// SetFromVector re-assigns the diagonal from a vector expression of the SAME
// length, evaluating eagerly. Lengths never silently truncate: a mismatch is
// ErrDimensionMismatch and the receiver is left unchanged.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n), Space O(n) for the staging copy.
func (d *DiagonalMatrix) SetFromVector(v VectorExpr) error {
	if err := ValidateVectorNotNil(v); err != nil {
		return matrixErrorf(opSetDiagonal, err)
	}
	if v.Len() != len(d.data) {
		return matrixErrorf(opSetDiagonal, ErrDimensionMismatch)
	}
	// Stage into a copy first: on any evaluation or policy error the
	// receiver keeps its previous diagonal (no partial assignment).
	prev := d.data
	d.data = make([]float64, len(prev))
	if err := d.ingest(v); err != nil {
		d.data = prev // roll back

		return matrixErrorf(opSetDiagonal, err)
	}

	return nil
}

// ingest copies v into d.data under the numeric policy. Internal; assumes
// len(d.data) == v.Len(). Complexity: O(n).
func (d *DiagonalMatrix) ingest(v VectorExpr) error {
	var i int
	var val float64
	var err error
	for i = 0; i < len(d.data); i++ { // deterministic 0..n-1
		val, err = v.AtVec(i)
		if err != nil {
			return fmt.Errorf("AtVec(%d): %w", i, err)
		}
		if d.validateNaNInf && isNonFinite(val) {
			return diagErrorf(tagDiagonalMatrix, "ingest", i, ErrNaNInf)
		}
		d.data[i] = val
	}

	return nil
}

// Diag returns the diagonal length (matrix is Diag×Diag).
// Complexity: O(1).
func (d *DiagonalMatrix) Diag() int { return len(d.data) }

// Rows returns the row count (== Diag).
// Complexity: O(1).
func (d *DiagonalMatrix) Rows() int { return len(d.data) }

// Cols returns the column count (== Diag).
// Complexity: O(1).
func (d *DiagonalMatrix) Cols() int { return len(d.data) }

// Diagonal returns the i-th diagonal entry or ErrOutOfRange.
// Complexity: O(1).
func (d *DiagonalMatrix) Diagonal(i int) (float64, error) {
	if i < 0 || i >= len(d.data) {
		return 0, diagErrorf(tagDiagonalMatrix, "Diagonal", i, ErrOutOfRange)
	}

	return d.data[i], nil
}

// SetDiagonal stores val at diagonal position i, honoring the numeric policy.
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(1).
func (d *DiagonalMatrix) SetDiagonal(i int, val float64) error {
	if i < 0 || i >= len(d.data) {
		return diagErrorf(tagDiagonalMatrix, "SetDiagonal", i, ErrOutOfRange)
	}
	if d.validateNaNInf && isNonFinite(val) {
		return diagErrorf(tagDiagonalMatrix, "SetDiagonal", i, ErrNaNInf)
	}
	d.data[i] = val

	return nil
}

// At evaluates element (i,j): Diagonal(i) on the main diagonal, the additive
// identity elsewhere. Off-diagonal zeros are implicit, never stored.
// Complexity: O(1).
func (d *DiagonalMatrix) At(i, j int) (float64, error) {
	n := len(d.data)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", tagDiagonalMatrix, i, j, ErrOutOfRange)
	}
	if i != j {
		return 0, nil // implicit off-diagonal zero
	}

	return d.data[i], nil
}

// DiagVector returns the underlying diagonal as a vector view SHARING this
// matrix's storage (non-owning): writes through SetDiagonal are visible in
// the returned vector. Complexity: O(1).
func (d *DiagonalMatrix) DiagVector() VectorExpr {
	return &Vector{data: d.data, validateNaNInf: d.validateNaNInf}
}

// ToDense materializes the full n×n dense form: Diagonal(i) at (i,i), zero
// elsewhere. Verification/export only — products never materialize.
// Complexity: O(n²).
func (d *DiagonalMatrix) ToDense(opts ...Option) (*Dense, error) {
	return diagToDense(d, opts...)
}

// overlaps: diagonal storage is a plain vector buffer, never a Dense base,
// so a diagonal operand cannot alias a dense destination.
func (d *DiagonalMatrix) overlaps(base *Dense, r0, c0, rows, cols int) bool {
	return false
}

// DiagonalView is a non-owning, read-only projection of a vector expression
// as a diagonal matrix. Borrows v: valid only while v is alive.
type DiagonalView struct {
	v VectorExpr // borrowed diagonal source (non-nil by construction)
}

// AsDiagonal treats a vector expression as the diagonal of a matrix.
// Implementation:
//   - Stage 1: validate v non-nil and non-empty.
//   - Stage 2: return the O(1) borrowing view; nothing is evaluated here.
//
// Behavior highlights:
//   - Works on stored vectors AND lazy sums: AsDiagonal(AddVec(v1,v2))
//     evaluates (v1+v2)(i) on demand.
//   - The view is read-only; to own the values, pass it (or v) to
//     NewDiagonalFromVector.
//
// Errors:
//   - ErrNilVector, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(1), Space O(1).
func AsDiagonal(v VectorExpr) (*DiagonalView, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, matrixErrorf(opAsDiagonal, err)
	}
	if v.Len() <= 0 {
		return nil, matrixErrorf(opAsDiagonal, ErrInvalidDimensions)
	}

	return &DiagonalView{v: v}, nil
}

// Diag returns the diagonal length.
// Complexity: O(1).
func (d *DiagonalView) Diag() int { return d.v.Len() }

// Rows returns the row count (== Diag).
// Complexity: O(1).
func (d *DiagonalView) Rows() int { return d.v.Len() }

// Cols returns the column count (== Diag).
// Complexity: O(1).
func (d *DiagonalView) Cols() int { return d.v.Len() }

// Diagonal evaluates the i-th diagonal entry from the borrowed vector.
// Complexity: O(1) for stored vectors, O(depth) for lazy sums.
func (d *DiagonalView) Diagonal(i int) (float64, error) {
	if i < 0 || i >= d.v.Len() {
		return 0, diagErrorf(tagDiagonalView, "Diagonal", i, ErrOutOfRange)
	}

	return d.v.AtVec(i)
}

// At evaluates element (i,j): the borrowed vector at i on the main diagonal,
// the additive identity elsewhere. Complexity: O(1).
func (d *DiagonalView) At(i, j int) (float64, error) {
	n := d.v.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", tagDiagonalView, i, j, ErrOutOfRange)
	}
	if i != j {
		return 0, nil // implicit off-diagonal zero
	}

	return d.v.AtVec(i)
}

// DiagVector returns the borrowed vector expression itself.
// Complexity: O(1).
func (d *DiagonalView) DiagVector() VectorExpr { return d.v }

// ToDense materializes the full dense form of the view.
// Complexity: O(n²).
func (d *DiagonalView) ToDense(opts ...Option) (*Dense, error) {
	return diagToDense(d, opts...)
}

// overlaps: the borrowed source is a vector expression, never a Dense base,
// so a diagonal view cannot alias a dense destination.
func (d *DiagonalView) overlaps(base *Dense, r0, c0, rows, cols int) bool {
	return false
}

// diagToDense is the shared materialization kernel for both diagonal types.
// Implementation:
//   - Stage 1: allocate a zero Dense(n,n) — off-diagonal zeros come for free.
//   - Stage 2: single pass writing Diagonal(i) at flat offset i*n+i.
//
// Complexity: O(n²) for the zeroed allocation, O(n) writes.
func diagToDense(d Diagonal, opts ...Option) (*Dense, error) {
	n := d.Diag()
	res, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	var i int
	var val float64
	for i = 0; i < n; i++ { // deterministic 0..n-1
		val, err = d.Diagonal(i)
		if err != nil {
			return nil, matrixErrorf(opToDense, fmt.Errorf("Diagonal(%d): %w", i, err))
		}
		res.data[i*n+i] = val // direct flat write on the fresh buffer
	}

	return res, nil
}
