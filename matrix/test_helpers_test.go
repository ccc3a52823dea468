// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the expression
//     and evaluator tests.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference; randomness always comes from a fixed seed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/diagmat/matrix"
)

// testEps is the tolerance for approximate comparisons in this suite.
// Mirrors matrix.DefaultEpsilon; linearity checks compare independently
// rounded float64 sums, so exact bit equality is not required there.
const testEps = matrix.DefaultEpsilon

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustVector builds a *Vector from vals or fails the test.
func mustVector(tb testing.TB, vals ...float64) *matrix.Vector {
	tb.Helper()
	v, err := matrix.NewVectorFromSlice(vals)
	if err != nil {
		tb.Fatalf("NewVectorFromSlice(%v): %v", vals, err)
	}

	return v
}

// mustDenseFrom builds an r×c *Dense from row-major vals or fails the test.
func mustDenseFrom(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	if len(vals) != r*c {
		tb.Fatalf("mustDenseFrom: want %d values, got %d", r*c, len(vals))
	}
	m := mustDense(tb, r, c)
	for i := 0; i < r; i++ { // deterministic i→j fill
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, vals[i*c+j]); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// fillDenseRand fills m with deterministic uniform values from seed.
// The random generator is a test collaborator only; the core never draws.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rnd := rand.New(rand.NewSource(seed)) // fixed seed: reproducible fixtures
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rnd.Float64()*2-1); err != nil { // uniform [-1,1)
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// fillVectorRand fills v with deterministic uniform values from seed.
func fillVectorRand(tb testing.TB, v *matrix.Vector, seed int64) {
	tb.Helper()
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < v.Len(); i++ {
		if err := v.SetVec(i, rnd.Float64()*2-1); err != nil {
			tb.Fatalf("SetVec(%d): %v", i, err)
		}
	}
}

// requireAllClose asserts a ≈ b elementwise within testEps.
func requireAllClose(tb testing.TB, a, b matrix.Expr) {
	tb.Helper()
	ok, err := matrix.AllClose(a, b, testEps)
	if err != nil {
		tb.Fatalf("AllClose: %v", err)
	}
	if !ok {
		tb.Fatalf("matrices differ beyond eps=%g", float64(testEps))
	}
}
