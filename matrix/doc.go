// Package matrix implements a compact diagonal-matrix type and the lazy
// expression layer for evaluating diagonal products into dense storage.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container with no-copy sub-block (View) and
//     transpose (T) windows usable as assignment destinations.
//   - DiagonalMatrix (owning) and DiagonalView (borrowing, via AsDiagonal),
//     storing only the diagonal entries — off-diagonal zeros are implicit.
//   - Lazy expressions: Sum, AddVec, and DiagProduct (MulDiagLeft /
//     MulDiagRight). Building an expression is O(1); element access of a
//     diagonal product is one multiply, never a dot-product reduction, so a
//     full evaluation is O(rows·cols).
//   - Assign, the single eager sink: it detects storage overlap between the
//     destination window and every region the source expression reads, and
//     buffers through a temporary only when they actually alias. In-place
//     forms like `B = D*B` — including sub-block and transposed-view
//     destinations — therefore equal their out-of-place counterparts.
//
// All user-facing failures are sentinel errors matched via errors.Is;
// dimension mismatches surface at construction time, before any element is
// computed. The layer is synchronous and allocation-free between an
// expression's construction and its assignment.
//
// See the examples in this package for usage patterns.
package matrix
