// Package matrix_test provides runnable examples for the diagonal expression
// layer. Each example is runnable via “go test -run Example”, showing both
// code and expected output.
package matrix_test

import (
	"fmt" // fmt is used to print results in examples

	"github.com/katalvlaran/diagmat/matrix"
)

// ExampleMulDiagLeft demonstrates the left diagonal product: D*M scales row i
// of M by the i-th diagonal entry, one multiply per element.
// Complexity: O(1) to build the expression, O(rows*cols) to materialize.
func ExampleMulDiagLeft() {
	// 1) Build the diagonal from its entries: D = diag(2, 3).
	v, _ := matrix.NewVectorFromSlice([]float64{2, 3})
	d, _ := matrix.AsDiagonal(v)

	// 2) Build the dense operand M = [[1,2],[3,4]].
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	// 3) Compose the lazy product; nothing is computed yet.
	p, _ := matrix.MulDiagLeft(d, m)

	// 4) Materialize the expression into a fresh dense matrix.
	out, _ := matrix.NewDenseFromExpr(p)
	fmt.Print(out)
	// Output:
	// [2, 4]
	// [9, 12]
}

// ExampleAssign demonstrates the in-place product B = D*B: the evaluator
// detects that the destination storage feeds the source expression and
// buffers the evaluation, so every output uses the original values of B.
func ExampleAssign() {
	// 1) Build B = [[1,2],[3,4]].
	b, _ := matrix.NewDense(2, 2)
	_ = b.Set(0, 0, 1)
	_ = b.Set(0, 1, 2)
	_ = b.Set(1, 0, 3)
	_ = b.Set(1, 1, 4)

	// 2) Build D = diag(5, 7) as a borrowing view over a vector.
	v, _ := matrix.NewVectorFromSlice([]float64{5, 7})
	d, _ := matrix.AsDiagonal(v)

	// 3) Compose D*B lazily and assign it back into B itself.
	p, _ := matrix.MulDiagLeft(d, b)
	_ = matrix.Assign(b, p)

	// 4) Row 0 scaled by 5, row 1 scaled by 7 — computed from the old B.
	fmt.Print(b)
	// Output:
	// [5, 10]
	// [21, 28]
}

// ExampleAsDiagonal demonstrates viewing a lazy vector sum as a diagonal
// matrix without materializing either the sum or the diagonal.
func ExampleAsDiagonal() {
	// 1) Two vectors and their deferred sum v1+v2.
	v1, _ := matrix.NewVectorFromSlice([]float64{1, 2})
	v2, _ := matrix.NewVectorFromSlice([]float64{10, 20})
	sum, _ := matrix.AddVec(v1, v2)

	// 2) Borrow the sum as a diagonal: entries are computed on demand.
	d, _ := matrix.AsDiagonal(sum)

	// 3) Read one diagonal entry and one implicit off-diagonal zero.
	dv, _ := d.Diagonal(1)
	off, _ := d.At(0, 1)
	fmt.Printf("diagonal(1)=%.0f, at(0,1)=%.0f\n", dv, off)
	// Output: diagonal(1)=22, at(0,1)=0
}
