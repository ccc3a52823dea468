// SPDX-License-Identifier: MIT

// Package matrix - assignment evaluator with aliasing protection.
//
// Purpose:
//   - Assign is the single eager sink of the expression layer: it writes the
//     elementwise values of any Expr into a dense destination (full matrix,
//     sub-block view, or transposed view).
//   - The aliasing contract: every output element must reflect the ORIGINAL
//     (pre-assignment) values of all operands it depends on, even when the
//     destination storage overlaps storage the source reads.
//
// Strategy ("check, then choose direct or buffered"):
//   - Each expression reports, via the unexported overlaps probe, whether it
//     reads a given rectangle of a given base buffer. The destination
//     reports its written rectangle via window.
//   - Disjoint  → direct elementwise writes; no temporary, no extra copy.
//   - Overlap   → evaluate the whole source into a temporary Dense first,
//     then copy the temporary into the destination.
//
// Granularity:
//   - Overlap is rectangle intersection on a shared base, not whole-buffer
//     identity: assigning D*big.View(0,0,2,2) into big.View(2,2,2,2) takes
//     the direct path because the windows are provably disjoint.
//
// Determinism:
//   - Fixed i→j traversal in both paths; with no aliasing the order has no
//     observable effect, with aliasing the buffer makes order irrelevant.

package matrix

import "fmt"

// Assign evaluates src elementwise and writes it into dst.
// Implementation:
//   - Stage 1: validate dst and src non-nil and shape-equal; fail before any
//     element is computed or written.
//   - Stage 2: probe src against dst's storage window; pick the path.
//   - Stage 3a (disjoint): direct i→j evaluate-and-write.
//   - Stage 3b (overlap): materialize src into a temporary Dense, then copy
//     the temporary into dst.
//
// Behavior highlights:
//   - Non-aliased assignments never pay the temporary-buffer cost.
//   - Shape errors leave dst untouched; evaluation errors on the buffered
//     path also leave dst untouched (the temporary absorbs them).
//   - dst's numeric policy applies to every written value.
//
// Inputs:
//   - dst: writable destination (Dense, MatrixView, TransposeView).
//   - src: any expression of identical shape.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, plus errors surfaced by src.At or
//     dst.Set (ErrNaNInf under policy).
//
// Complexity:
//   - Time O(rows*cols); Space O(1) direct, O(rows*cols) when aliased.
//
// AI-Hints:
//   - In-place scaling (`B = D*B`) is safe by construction; do not clone the
//     operand defensively — the evaluator buffers only when it must.
func Assign(dst Target, src Expr) error {
	// Stage 1: fail-fast validation, nothing written yet.
	if dst == nil {
		return matrixErrorf(opAssign, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opAssign, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opAssign, err)
	}

	// Stage 2: aliasing probe — does src read the rectangle dst writes?
	base, r0, c0, rows, cols := dst.window()
	if src.overlaps(base, r0, c0, rows, cols) {
		return assignBuffered(dst, src)
	}

	return assignDirect(dst, src)
}

// assignDirect writes src into dst element by element, no temporary.
// Safe only when the caller has established that dst and src are disjoint.
// Complexity: O(rows*cols), Space O(1).
func assignDirect(dst Target, src Expr) error {
	rows, cols := dst.Rows(), dst.Cols()
	var (
		i, j int     // loop counters (fixed i→j order)
		v    float64 // element temporary
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return matrixErrorf(opAssign, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = dst.Set(i, j, v); err != nil {
				return matrixErrorf(opAssign, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// assignBuffered evaluates src into a temporary Dense first, then copies the
// temporary into dst. Every temporary element is computed from the original
// operand values before any destination write happens, which is exactly the
// aliasing guarantee.
// Complexity: O(rows*cols) time and space.
func assignBuffered(dst Target, src Expr) error {
	// Materialize with validation disabled on the temporary: dst.Set applies
	// the destination's own policy during the copy phase.
	tmp, err := NewDenseFromExpr(src, WithNoValidateNaNInf())
	if err != nil {
		return matrixErrorf(opAssign, err)
	}

	// Copy phase: the temporary is private storage, so direct writes are safe.
	var (
		i, j, rowBase int
	)
	for i = 0; i < tmp.r; i++ {
		rowBase = i * tmp.c
		for j = 0; j < tmp.c; j++ {
			if err = dst.Set(i, j, tmp.data[rowBase+j]); err != nil {
				return matrixErrorf(opAssign, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// rectsIntersect reports whether two rectangles on one base buffer share at
// least one cell. Rectangles are (top, left, height, width) in base
// coordinates; empty rectangles never intersect.
// Complexity: O(1).
func rectsIntersect(r0, c0, h0, w0, r1, c1, h1, w1 int) bool {
	if h0 <= 0 || w0 <= 0 || h1 <= 0 || w1 <= 0 {
		return false
	}
	// Disjoint iff one lies entirely above/below or left/right of the other.
	if r0+h0 <= r1 || r1+h1 <= r0 {
		return false
	}
	if c0+w0 <= c1 || c1+w1 <= c0 {
		return false
	}

	return true
}
