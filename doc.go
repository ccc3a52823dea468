// Package diagmat is an in-memory toolkit for compact diagonal matrices and
// lazy algebraic expressions over them — build O(1) views, compose products
// and sums without temporaries, and evaluate them safely in place.
//
// 🚀 What is diagmat?
//
//	A small, thread-unaware, deterministic library that brings together:
//		• Dense storage: row-major matrices with no-copy block & transpose views
//		• Diagonal storage: n values for an n×n matrix, implicit zeros elsewhere
//		• Lazy expressions: diagonal×dense products and elementwise sums at O(1)
//		• An assignment evaluator with aliasing protection: B = D*B just works
//
// ✨ Why choose diagmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable cost – one multiply per element, buffers only when aliased
//   - Pure Go core – no cgo, deterministic traversal order
//   - Strict by default – NaN/±Inf rejected on write, opt out per container
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/ — dense & diagonal containers, lazy expressions, the evaluator
//
// Quick ASCII example:
//
//	    ⎡d₀      ⎤   ⎡m₀₀ m₀₁⎤   ⎡d₀·m₀₀ d₀·m₀₁⎤
//	    ⎣    d₁  ⎦ × ⎣m₁₀ m₁₁⎦ = ⎣d₁·m₁₀ d₁·m₁₁⎦
//
//	a diagonal product scales row i by the i-th diagonal entry.
//
// Dive into the matrix package docs for the expression contract, the aliasing
// guarantee, and runnable examples.
//
//	go get github.com/katalvlaran/diagmat
package diagmat
