// Package rmath provides the directed-rounding primitives that interval
// arithmetic is built on: neighbour steps and outward-rounded division,
// square root and power over float64.
//
// 🚀 What is directed rounding?
//
//	Go's float64 operators round to the nearest representable value, which
//	may land on either side of the exact result.  Sound interval code needs
//	bounds rounded in a known direction instead:
//	  • lower bounds rounded downward (never above the exact value)
//	  • upper bounds rounded upward (never below the exact value)
//
// ✨ Key features:
//   - Next / Prev: adjacent float64 neighbours, with infinities kept fixed
//   - DivLow / DivHigh: directed quotients, exact whenever the quotient is exact
//   - SqrtLow / SqrtHigh: directed roots, exact on perfect squares
//   - PowLow / PowHigh: conservative one-step widening around math.Pow
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/rmath"
//
//	lo := rmath.DivLow(1, 3)  // largest float64 not above 1/3
//	hi := rmath.DivHigh(1, 3) // smallest float64 not below 1/3
//
// Exactness matters: DivLow(1, 4) is exactly 0.25, not one step below it,
// because 1/4 is representable.  An FMA residual test decides whether the
// nearest-rounded result needs a one-ulp correction, so representable
// results are never widened.
//
// Performance:
//
//   - every function is a handful of float64 operations, O(1), allocation-free
//
// See interval/ for the arithmetic built on top of these primitives.
package rmath
