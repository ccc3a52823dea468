// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep expression constructors and the evaluator minimal by delegating
//     nil/shape/length checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Each validator describes what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the expression reference is non-nil.
//
// Inputs: Expr interface value.
// Returns ErrNilMatrix if e == nil.
// Complexity: O(1).
func ValidateNotNil(e Expr) error {
	if e == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVectorNotNil – Ensures the vector expression reference is non-nil.
//
// Inputs: VectorExpr interface value.
// Returns ErrNilVector if v == nil.
// Complexity: O(1).
func ValidateVectorNotNil(v VectorExpr) error {
	if v == nil {
		return validatorErrorf("ValidateVectorNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameShape – Ensures expressions a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Expr) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Expr) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSameLen – Ensures vector expressions a and b have equal length.
//
// Implementation: NotNil(a) → NotNil(b) → length comparison.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameLen(a, b VectorExpr) error {
	if err := ValidateVectorNotNil(a); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if err := ValidateVectorNotNil(b); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if a.Len() != b.Len() {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDiagLeft – Ensures d is compatible with the left product D*M,
// i.e. d.Diag() == m.Rows(). Inputs must be non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Call at product-construction time so shape violations surface
// before any element is evaluated.
func ValidateDiagLeft(d Diagonal, m Expr) error {
	if d == nil {
		return validatorErrorf("ValidateDiagLeft", ErrNilMatrix)
	}
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateDiagLeft", err)
	}
	if d.Diag() != m.Rows() {
		return validatorErrorf("ValidateDiagLeft", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDiagRight – Ensures d is compatible with the right product M*D,
// i.e. d.Diag() == m.Cols(). Inputs must be non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateDiagRight(m Expr, d Diagonal) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateDiagRight", err)
	}
	if d == nil {
		return validatorErrorf("ValidateDiagRight", ErrNilMatrix)
	}
	if d.Diag() != m.Cols() {
		return validatorErrorf("ValidateDiagRight", ErrDimensionMismatch)
	}

	return nil
}
