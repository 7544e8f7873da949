// Package lvlmath is your in-memory toolkit for rigorous numeric ranges:
// intervals whose arithmetic never loses a value to rounding.
//
// 🚀 What is lvlmath?
//
//	A small, dependency-light library for sound interval arithmetic:
//		• Interval values: closed ranges [low, high] over float64
//		• Set predicates: emptiness, whole-line, singleton, overlap, membership
//		• Arithmetic: Add, Sub, Mul, Div, Reciprocal with outward rounding
//		• Algebra: integer powers, square and n-th roots, range fmod
//		• Rounding primitives: Next/Prev neighbours and directed div/sqrt/pow
//
// ✨ Why choose lvlmath?
//
//   - Sound by construction: every result encloses the exact value set
//   - Value semantics: operations return new intervals, nothing mutates
//   - Pure Go: no cgo, no hidden deps
//   - Predictable edges: division by zero and bad exponents are explicit errors
//
// Under the hood, everything is organized under two subpackages:
//
//	interval/ - the Interval value type, set predicates, arithmetic & algebra
//	rmath/    - directed-rounding helpers (Next, Prev, DivLow, SqrtHigh, ...)
//
// Quick ASCII example:
//
//	[1,2] + [10,20] = [11,22]
//	[1,2] / [-1,1]  = error: division by zero
//
// Bounds only ever widen outward, never inward, so the true result can
// never fall outside what you get back.
//
// Dive into README.md for full examples and the exact guarantee each
// operation makes about enclosure and rounding.
//
//	go get github.com/katalvlaran/lvlmath/interval
package lvlmath
