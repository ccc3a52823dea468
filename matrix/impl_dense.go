// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), safe accessors, and views.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy windows (MatrixView) and a no-copy transpose (TransposeView)
//     so assignments can target sub-blocks and transposed regions of one buffer.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// AI-Hints:
//   - Use View(r0,c0,rows,cols) to address a window without copying; writes
//     reflect in the base matrix.
//   - Use T() for a transposed write target; it shares the base buffer, so
//     Assign treats it as aliasing the whole base.
//   - DefaultValidateNaNInf is on; insert only finite values unless you
//     explicitly disable via WithNoValidateNaNInf.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View/T: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxView = "View" // ctor tag for Dense.View
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//   - eps is the tolerance used by Equal (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0 for public constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
	eps            float64   // tolerance for Equal comparisons
}

// Compile-time assertions for interface conformance.
var (
	_ Expr         = (*Dense)(nil)
	_ Target       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
	_ Target       = (*MatrixView)(nil)
	_ Target       = (*TransposeView)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve numeric policy from opts (gatherOptions).
//   - Stage 3: allocate zero-filled buffer and return.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Resolve numeric policy once; the instance carries it from here on.
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
		eps:            o.eps,
	}, nil
}

// NewDenseFromExpr materializes any expression into a fresh Dense.
// Implementation:
//   - Stage 1: validate e non-nil; allocate Dense(e.Rows(), e.Cols()).
//   - Stage 2: fixed i→j loop evaluating e.At into the flat buffer.
//
// Behavior highlights:
//   - This is the only eager entry besides Assign; expressions stay O(1)
//     until they reach one of the two.
//   - The result is independent storage: mutating it never touches the
//     expression's operands.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, plus any error surfaced by e.At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use to snapshot a lazy product when its operands are about to mutate.
func NewDenseFromExpr(e Expr, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opFromExpr, err)
	}
	res, err := NewDense(e.Rows(), e.Cols(), opts...)
	if err != nil {
		return nil, matrixErrorf(opFromExpr, err)
	}

	// Deterministic i→j evaluation into the flat buffer.
	var i, j, base int
	var v float64
	for i = 0; i < res.r; i++ {
		base = i * res.c
		for j = 0; j < res.c; j++ {
			v, err = e.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opFromExpr, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[base+j] = v
		}
	}

	return res, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods (At/Set) wrap with coordinates
// and method name. Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with context.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the copy do not affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
		eps:            m.eps,
	}
}

// Equal reports whether other evaluates elementwise within the receiver's
// epsilon (WithEpsilon at construction; DefaultEpsilon otherwise).
// Implementation:
//   - Stage 1: validate other non-nil and same shape.
//   - Stage 2: fixed i→j scan comparing |a-b| ≤ eps.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, plus errors surfaced by other.At.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Equal(other Expr) (bool, error) {
	return AllClose(m, other, m.eps)
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	var v float64
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			v = m.data[base+j]
			if !f(i, j, v) { // invoke callback; stop if it returns false
				return
			}
		}
	}
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// Implementation:
//   - Stage 1: validate window bounds (positive extents inside the base).
//   - Stage 2: return MatrixView with offsets.
//
// Behavior highlights:
//   - Writes via the view reflect in the base; policy is inherited.
//   - The view borrows the base buffer: it is valid only while the base lives.
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use as an Assign destination for in-place sub-block updates; the
//     evaluator detects overlap with source reads automatically.
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{
		base: m,    // share storage
		r0:   r0,   // top row in base
		c0:   c0,   // left col in base
		r:    rows, // view height
		c:    cols, // view width
	}, nil
}

// T returns a no-copy transposed view over the same storage.
// Element (i,j) of the view maps to (j,i) of the base; writes go through.
// A diagonal matrix equals its own transpose, so assigning a Diagonal via
// T() produces the same base contents as assigning it directly.
// Complexity: O(1).
func (m *Dense) T() *TransposeView {
	return &TransposeView{base: m}
}

// window reports the full base rectangle: a Dense writes all of itself.
func (m *Dense) window() (base *Dense, r0, c0, rows, cols int) {
	return m, 0, 0, m.r, m.c
}

// overlaps reports whether this matrix's storage intersects the queried
// window of base. A Dense reads its whole rectangle.
func (m *Dense) overlaps(base *Dense, r0, c0, rows, cols int) bool {
	if m != base {
		return false
	}

	return rectsIntersect(0, 0, m.r, m.c, r0, c0, rows, cols)
}

// MatrixView is a non-owning window into a Dense (shared storage).
// Valid only while the base matrix is alive; the view never owns.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
// Complexity: O(1).
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
// Complexity: O(1).
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
// Translates to base coordinates: base[(r0+i), (c0+j)].
// Complexity: O(1).
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	// Translate to base coordinates and load directly from the flat buffer.
	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) in the view, honoring the base numeric policy.
// Shares the base Dense policy; no separate flags in the view.
// Complexity: O(1).
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val // write through

	return nil
}

// window reports the view's rectangle in base coordinates.
func (v *MatrixView) window() (base *Dense, r0, c0, rows, cols int) {
	return v.base, v.r0, v.c0, v.r, v.c
}

// overlaps reports whether the view's window intersects the queried window
// of base. Two disjoint windows of one matrix do NOT alias.
func (v *MatrixView) overlaps(base *Dense, r0, c0, rows, cols int) bool {
	if v.base != base {
		return false
	}

	return rectsIntersect(v.r0, v.c0, v.r, v.c, r0, c0, rows, cols)
}

// TransposeView is a non-owning transposed projection of a Dense.
// Element (i,j) maps to base (j,i); reads and writes share the base buffer.
type TransposeView struct {
	base *Dense // underlying storage owner
}

// Rows returns the transposed row count (base columns).
// Complexity: O(1).
func (t *TransposeView) Rows() int { return t.base.c }

// Cols returns the transposed column count (base rows).
// Complexity: O(1).
func (t *TransposeView) Cols() int { return t.base.r }

// At reads element (i,j) of the transpose, i.e. base (j,i).
// Complexity: O(1).
func (t *TransposeView) At(i, j int) (float64, error) {
	if i < 0 || i >= t.base.c || j < 0 || j >= t.base.r {
		return 0, fmt.Errorf("TransposeView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return t.base.data[j*t.base.c+i], nil
}

// Set writes element (i,j) of the transpose, i.e. base (j,i), honoring the
// base numeric policy. Complexity: O(1).
func (t *TransposeView) Set(i, j int, val float64) error {
	if i < 0 || i >= t.base.c || j < 0 || j >= t.base.r {
		return fmt.Errorf("TransposeView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if t.base.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("TransposeView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	t.base.data[j*t.base.c+i] = val // write through transposed

	return nil
}

// window reports the whole base rectangle: a transposed write touches every
// base row and column its indices reach, so the full rectangle is the only
// safe description.
func (t *TransposeView) window() (base *Dense, r0, c0, rows, cols int) {
	return t.base, 0, 0, t.base.r, t.base.c
}

// overlaps reports whether the transpose's reads intersect the queried
// window of base; the transpose reads the whole base rectangle.
func (t *TransposeView) overlaps(base *Dense, r0, c0, rows, cols int) bool {
	if t.base != base {
		return false
	}

	return rectsIntersect(0, 0, t.base.r, t.base.c, r0, c0, rows, cols)
}
