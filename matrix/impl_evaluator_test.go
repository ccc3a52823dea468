// Package matrix_test contains unit tests for Assign: destination kinds
// (full, sub-block, transposed), zero fill for diagonal sources, and the
// aliasing guarantee in its direct, sub-block, and transposed forms.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/diagmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestAssignDiagonalIntoDense writes a diagonal into a pre-filled dense
// matrix: diagonal entries land on (i,i), every other cell becomes zero.
func TestAssignDiagonalIntoDense(t *testing.T) {
	dst := mustDense(t, 3, 3)
	fillDenseRand(t, dst, 99) // pre-fill: zero fill must overwrite this

	d, err := matrix.NewDiagonalFromVector(mustVector(t, 1, 2, 3))
	require.NoError(t, err)

	require.NoError(t, matrix.Assign(dst, d))

	want, err := d.ToDense()
	require.NoError(t, err)
	requireAllClose(t, want, dst)
}

// TestAssignDiagonalIntoTranspose assigns a diagonal through a transposed
// view; since diag == diagᵀ the base must equal the dense form directly.
func TestAssignDiagonalIntoTranspose(t *testing.T) {
	dst := mustDense(t, 3, 3)
	fillDenseRand(t, dst, 98)

	d, err := matrix.NewDiagonalFromVector(mustVector(t, 4, 5, 6))
	require.NoError(t, err)

	require.NoError(t, matrix.Assign(dst.T(), d))

	want, err := d.ToDense()
	require.NoError(t, err)
	requireAllClose(t, want, dst) // base contents, not the transposed view
}

// TestAssignDiagonalIntoBlock writes a diagonal into a window of a larger
// matrix: (offset+i, offset+i) gets diagonal(i), the rest of the window is
// zeroed, and cells outside the window are untouched.
func TestAssignDiagonalIntoBlock(t *testing.T) {
	big := mustDense(t, 4, 4)
	for i := 0; i < 4; i++ { // sentinel fill to observe untouched cells
		for j := 0; j < 4; j++ {
			require.NoError(t, big.Set(i, j, -1))
		}
	}

	block, err := big.View(1, 1, 2, 2)
	require.NoError(t, err)

	d, err := matrix.NewDiagonalFromVector(mustVector(t, 8, 9))
	require.NoError(t, err)

	require.NoError(t, matrix.Assign(block, d))

	want := mustDenseFrom(t, 4, 4, []float64{
		-1, -1, -1, -1,
		-1, 8, 0, -1,
		-1, 0, 9, -1,
		-1, -1, -1, -1,
	})
	requireAllClose(t, want, big)
}

// TestAssignSelfAliasDirect checks m = D*m: the in-place form must equal
// computing D*m into a fresh buffer from the original values.
func TestAssignSelfAliasDirect(t *testing.T) {
	m := mustDense(t, 4, 5)
	fillDenseRand(t, m, 1234)

	d, err := matrix.AsDiagonal(mustVector(t, 2, -1, 0.5, 3))
	require.NoError(t, err)

	// Out-of-place reference from a snapshot of the original values.
	ref, err := matrix.MulDiagLeft(d, m.Clone())
	require.NoError(t, err)
	want, err := matrix.NewDenseFromExpr(ref)
	require.NoError(t, err)

	// In-place: destination and dense operand share storage.
	p, err := matrix.MulDiagLeft(d, m)
	require.NoError(t, err)
	require.NoError(t, matrix.Assign(m, p))

	requireAllClose(t, want, m)
}

// TestAssignSelfAliasBlock reproduces the embedded-block scenario: a window
// of a larger matrix is both the product operand and the destination.
func TestAssignSelfAliasBlock(t *testing.T) {
	const r, c = 2, 3
	m1 := mustDense(t, r, c)
	fillDenseRand(t, m1, 555)

	big := mustDense(t, 2*r, 2*c) // zero 4×6 frame
	block, err := big.View(1, 2, r, c)
	require.NoError(t, err)
	require.NoError(t, matrix.Assign(block, m1)) // plant m1 inside big

	dv := mustVector(t, make([]float64, r)...)
	fillVectorRand(t, dv, 777)
	d, err := matrix.AsDiagonal(dv)
	require.NoError(t, err)

	// In-place: block = D * block.
	p, err := matrix.MulDiagLeft(d, block)
	require.NoError(t, err)
	require.NoError(t, matrix.Assign(block, p))

	// Reference: D * m1 out of place.
	refExpr, err := matrix.MulDiagLeft(d, m1)
	require.NoError(t, err)
	want, err := matrix.NewDenseFromExpr(refExpr)
	require.NoError(t, err)

	requireAllClose(t, want, block)

	// The frame outside the window stays zero.
	v, err := big.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
	v, err = big.At(2*r-1, 2*c-1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestAssignSelfAliasBlockRight mirrors the block scenario on the right
// product: block = block * D with D sized to columns.
func TestAssignSelfAliasBlockRight(t *testing.T) {
	const r, c = 3, 2
	m1 := mustDense(t, r, c)
	fillDenseRand(t, m1, 556)

	big := mustDense(t, 2*r, 2*c)
	block, err := big.View(2, 1, r, c)
	require.NoError(t, err)
	require.NoError(t, matrix.Assign(block, m1))

	dv := mustVector(t, make([]float64, c)...)
	fillVectorRand(t, dv, 778)
	d, err := matrix.AsDiagonal(dv)
	require.NoError(t, err)

	p, err := matrix.MulDiagRight(block, d)
	require.NoError(t, err)
	require.NoError(t, matrix.Assign(block, p))

	refExpr, err := matrix.MulDiagRight(m1, d)
	require.NoError(t, err)
	want, err := matrix.NewDenseFromExpr(refExpr)
	require.NoError(t, err)

	requireAllClose(t, want, block)
}

// TestAssignSelfAliasTranspose checks aliasing through a transposed view of
// the destination: m.T() = D*m reads and writes the same buffer.
func TestAssignSelfAliasTranspose(t *testing.T) {
	m := mustDense(t, 3, 3)
	fillDenseRand(t, m, 4321)

	d, err := matrix.AsDiagonal(mustVector(t, 2, 3, 5))
	require.NoError(t, err)

	// Reference: evaluate D*m from a snapshot, then transpose it.
	refExpr, err := matrix.MulDiagLeft(d, m.Clone())
	require.NoError(t, err)
	refDense, err := matrix.NewDenseFromExpr(refExpr)
	require.NoError(t, err)
	want, err := matrix.NewDenseFromExpr(refDense.T())
	require.NoError(t, err)

	// In-place through the transposed target.
	p, err := matrix.MulDiagLeft(d, m)
	require.NoError(t, err)
	require.NoError(t, matrix.Assign(m.T(), p))

	requireAllClose(t, want, m)
}

// TestAssignIdentityScaleInPlace is the identity-scale scenario: v=[1,1] as
// a diagonal applied in place to a block at offset (1,1) of a 4×4 matrix —
// the block must come through the aliasing path completely unchanged.
func TestAssignIdentityScaleInPlace(t *testing.T) {
	big := mustDense(t, 4, 4)
	block, err := big.View(1, 1, 2, 2)
	require.NoError(t, err)

	// Plant an identity-like pattern inside the block.
	seed := mustDenseFrom(t, 2, 2, []float64{1, 0, 0, 1})
	require.NoError(t, matrix.Assign(block, seed))

	one, err := matrix.AsDiagonal(mustVector(t, 1, 1))
	require.NoError(t, err)

	p, err := matrix.MulDiagLeft(one, block)
	require.NoError(t, err)
	require.NoError(t, matrix.Assign(block, p)) // scale by 1, in place

	requireAllClose(t, seed, block) // pre-assignment values, bit for bit

	// Everything outside the block is still zero.
	want := mustDenseFrom(t, 4, 4, []float64{
		0, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 0,
	})
	requireAllClose(t, want, big)
}

// TestAssignDisjointWindows verifies that two provably disjoint windows of
// one matrix do not trigger buffering semantics issues: the copy lands
// correctly and the source window is untouched.
func TestAssignDisjointWindows(t *testing.T) {
	big := mustDense(t, 4, 4)
	src, err := big.View(0, 0, 2, 2)
	require.NoError(t, err)
	dst, err := big.View(2, 2, 2, 2)
	require.NoError(t, err)

	seed := mustDenseFrom(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, matrix.Assign(src, seed))

	d, err := matrix.AsDiagonal(mustVector(t, 10, 100))
	require.NoError(t, err)
	p, err := matrix.MulDiagLeft(d, src)
	require.NoError(t, err)

	require.NoError(t, matrix.Assign(dst, p)) // disjoint: direct path

	wantDst := mustDenseFrom(t, 2, 2, []float64{10, 20, 300, 400})
	requireAllClose(t, wantDst, dst)
	requireAllClose(t, seed, src) // source window unchanged
}

// TestAssignPartialOverlapWindows aliases the destination window with only a
// part of the source window: the intersection is non-empty, so the buffered
// path must apply and every output element must reflect pre-assignment data.
func TestAssignPartialOverlapWindows(t *testing.T) {
	big := mustDenseFrom(t, 3, 3, []float64{
		1, 2, 0,
		3, 4, 0,
		0, 0, 0,
	})
	src, err := big.View(0, 0, 2, 2) // rows 0-1, cols 0-1
	require.NoError(t, err)
	dst, err := big.View(1, 1, 2, 2) // rows 1-2, cols 1-2: shares cell (1,1)
	require.NoError(t, err)

	d, err := matrix.AsDiagonal(mustVector(t, 10, 100))
	require.NoError(t, err)
	p, err := matrix.MulDiagLeft(d, src)
	require.NoError(t, err)

	require.NoError(t, matrix.Assign(dst, p)) // overlapping: buffered path

	// dst receives D*src computed from the ORIGINAL values, even though the
	// write to (1,1) would otherwise corrupt src's later read of (1,1).
	want := mustDenseFrom(t, 3, 3, []float64{
		1, 2, 0,
		3, 10, 20,
		0, 300, 400,
	})
	requireAllClose(t, want, big)
}

// TestAssignSelfAliasTransposeRect runs the in-place product through a
// non-square transposed target: mᵀ = D*mᵀ with a 2×3 base and a 3-entry
// diagonal, so row/column index mapping cannot cancel out by symmetry.
func TestAssignSelfAliasTransposeRect(t *testing.T) {
	m := mustDense(t, 2, 3)
	fillDenseRand(t, m, 8642)

	d, err := matrix.AsDiagonal(mustVector(t, 2, -3, 0.25))
	require.NoError(t, err)

	// Reference: D*(original m)ᵀ evaluated out of place, transposed back.
	snap, err := matrix.NewDenseFromExpr(m.Clone().T())
	require.NoError(t, err)
	refExpr, err := matrix.MulDiagLeft(d, snap)
	require.NoError(t, err)
	refDense, err := matrix.NewDenseFromExpr(refExpr)
	require.NoError(t, err)
	want, err := matrix.NewDenseFromExpr(refDense.T())
	require.NoError(t, err)

	// In-place: the 3×2 transposed view is both operand and destination.
	p, err := matrix.MulDiagLeft(d, m.T())
	require.NoError(t, err)
	require.NoError(t, matrix.Assign(m.T(), p))

	requireAllClose(t, want, m)
}

// TestAssignLazySumSource evaluates D*(M1+M2) straight into a destination
// and compares against the expanded D*M1 + D*M2 within eps.
func TestAssignLazySumSource(t *testing.T) {
	const n = 4
	m1 := mustDense(t, n, n)
	m2 := mustDense(t, n, n)
	fillDenseRand(t, m1, 61)
	fillDenseRand(t, m2, 62)

	dv := mustVector(t, make([]float64, n)...)
	fillVectorRand(t, dv, 63)
	d, err := matrix.AsDiagonal(dv)
	require.NoError(t, err)

	msum, err := matrix.Sum(m1, m2)
	require.NoError(t, err)
	p, err := matrix.MulDiagLeft(d, msum)
	require.NoError(t, err)

	dst := mustDense(t, n, n)
	require.NoError(t, matrix.Assign(dst, p))

	p1, err := matrix.MulDiagLeft(d, m1)
	require.NoError(t, err)
	p2, err := matrix.MulDiagLeft(d, m2)
	require.NoError(t, err)
	expanded, err := matrix.Sum(p1, p2)
	require.NoError(t, err)

	requireAllClose(t, expanded, dst)
}

// TestAssignShapeMismatch ensures shape violations fail fast and leave the
// destination untouched.
func TestAssignShapeMismatch(t *testing.T) {
	dst := mustDenseFrom(t, 2, 2, []float64{1, 2, 3, 4})
	src := mustDense(t, 3, 3)

	err := matrix.Assign(dst, src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	want := mustDenseFrom(t, 2, 2, []float64{1, 2, 3, 4})
	requireAllClose(t, want, dst) // nothing written

	require.ErrorIs(t, matrix.Assign(nil, src), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.Assign(dst, nil), matrix.ErrNilMatrix)
}
