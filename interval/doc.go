// Package interval implements sound interval arithmetic over float64:
// closed ranges [low, high] whose operations always enclose the exact
// result set.
//
// 🚀 What is interval arithmetic?
//
//	Evaluating expressions over ranges instead of points.  Each operation
//	combines the bounds of its operands and rounds outward, so the result
//	contains f(a, b) for every a in the first operand and b in the second:
//	  • function range evaluation for plotting and root isolation
//	  • propagating measurement uncertainty through a formula
//	  • guarding against silent floating-point drift
//
// ✨ Key features:
//   - Interval is an immutable value: every operation returns a new interval
//   - Empty and Whole are first-class; the zero value is the empty interval
//   - enclosure guarantee: bounds only ever widen outward, never inward
//   - explicit errors: a zero-straddling divisor or a non-integer interval
//     exponent reports a sentinel error instead of silent garbage
//   - exactness where possible: [0,4].Reciprocal() starts at exactly 0.25
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/interval"
//
//	x := interval.New(1, 2)
//	y := interval.New(10, 20)
//
//	sum := x.Add(y)                        // [11, 22]
//	inv := interval.New(0, 4).Reciprocal() // [0.25, +Inf]
//
//	if _, err := x.Div(interval.New(-1, 1)); err != nil {
//		// interval: division by zero
//	}
//
// Semantics:
//
//   - bounds are closed; an infinite bound means that side is unbounded
//   - the empty interval is absorbing: arithmetic on Empty yields Empty
//   - NaN never appears in a stored bound; inputs that would produce one
//     collapse to Empty
//   - approximate comparisons (IsSingleton, AlmostEqual) use Tolerance (1e-7)
//
// Performance:
//
//   - every operation is a constant number of float64 steps, allocation-free
//
// See rmath/ for the directed-rounding primitives underneath.
package interval
