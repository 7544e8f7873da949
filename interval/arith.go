// Package interval: arithmetic operators over Interval values.
//
// Every operation here returns a new Interval enclosing the exact result
// set; operands are never modified.  The empty interval is absorbing for
// all of them.  Bound-level rounding direction is rmath's concern; this
// file is case analysis over signs and shapes.
package interval

import (
	"math"

	"github.com/katalvlaran/lvlmath/rmath"
)

// Add returns the interval sum x + other: [low+o.low, high+o.high].
// Addition is monotone in both bounds, so the native sums are the correct
// edges; infinite edges absorb finite summands.
func (x Interval) Add(other Interval) Interval {
	if x.form == formEmpty || other.form == formEmpty {
		return Empty()
	}

	return canon(x.Low()+other.Low(), x.High()+other.High())
}

// Sub returns the interval difference x - other: [low-o.high, high-o.low].
// The operand roles cross because subtracting a larger value drags the
// result lower.
func (x Interval) Sub(other Interval) Interval {
	if x.form == formEmpty || other.form == formEmpty {
		return Empty()
	}

	return canon(x.Low()-other.High(), x.High()-other.Low())
}

// Mul returns the interval product x * other.
//
// Sign is not known a priori, so all four pairwise bound products compete
// for the extremes:
//
//	low*o.low, low*o.high, high*o.low, high*o.high
//
// A zero factor wins over any other factor, including an infinite edge:
// the member 0 contributes the product 0, while the unbounded edge keeps
// its influence through the remaining candidates.  That keeps products
// such as [0,1]*[2,+Inf] = [0,+Inf] sound and tight, and keeps NaN out of
// the candidate set entirely.
func (x Interval) Mul(other Interval) Interval {
	if x.form == formEmpty || other.form == formEmpty {
		return Empty()
	}

	xl, xh := x.Low(), x.High()
	ol, oh := other.Low(), other.High()
	lo, hi, _ := bounds4(
		product(xl, ol),
		product(xl, oh),
		product(xh, ol),
		product(xh, oh),
	)

	return canon(lo, hi)
}

// Div returns the interval quotient x / other.
//
// Steps:
//  1. Empty operand: the result is Empty, not an error.
//  2. Divisor containing zero (closed test low <= 0 <= high): no sound
//     finite enclosure exists, return ErrDivisionByZero.
//  3. Otherwise the bounds follow the same four-candidate rule as Mul,
//     with each candidate rounded outward: the minimum is taken over
//     rmath.DivLow quotients and the maximum over rmath.DivHigh, so a
//     non-representable ratio such as 1/3 stays strictly inside the
//     result while representable quotients stay exact.
//
// A quotient of two infinite edges is NaN and carries no bound
// information; such candidates are skipped when taking extremes.  If every
// candidate is skipped (both operands degenerate at infinity) the result
// is Empty.
func (x Interval) Div(other Interval) (Interval, error) {
	if x.form == formEmpty || other.form == formEmpty {
		return Empty(), nil
	}
	if other.HasZero() {
		return Empty(), ErrDivisionByZero
	}

	xl, xh := x.Low(), x.High()
	ol, oh := other.Low(), other.High()
	lo, _, ok := bounds4(
		rmath.DivLow(xl, ol),
		rmath.DivLow(xl, oh),
		rmath.DivLow(xh, ol),
		rmath.DivLow(xh, oh),
	)
	if !ok {
		return Empty(), nil
	}
	_, hi, _ := bounds4(
		rmath.DivHigh(xl, ol),
		rmath.DivHigh(xl, oh),
		rmath.DivHigh(xh, ol),
		rmath.DivHigh(xh, oh),
	)

	return canon(lo, hi), nil
}

// Reciprocal returns the multiplicative inverse 1/x.  Unlike Div it does
// not fail on a zero-touching operand: a zero at an edge still leaves a
// half-line enclosure of 1/x, and a zero strictly inside widens to Whole.
//
// Branches on where zero sits:
//   - Empty: Empty;
//   - zero strictly interior (low < 0 < high): Whole, 1/x spans both
//     infinities;
//   - zero only at the right edge (low < 0, high == 0): [-Inf, DivHigh(1, low)];
//   - zero only at the left edge (low == 0, high > 0): [DivLow(1, high), +Inf];
//   - exactly [0, 0]: Empty, the reciprocal of zero is undefined;
//   - no zero: [DivLow(1, high), DivHigh(1, low)].
//
// Finite edges use directed division, so representable reciprocals stay
// exact: [0,4].Reciprocal() starts at exactly 0.25.
func (x Interval) Reciprocal() Interval {
	if x.form == formEmpty {
		return Empty()
	}

	xl, xh := x.Low(), x.High()
	if x.HasZero() {
		switch {
		case xl < 0 && xh > 0:
			return Whole()
		case xl < 0: // zero at the right edge
			return canon(math.Inf(-1), rmath.DivHigh(1, xl))
		case xh > 0: // zero at the left edge
			return canon(rmath.DivLow(1, xh), math.Inf(1))
		default: // exactly [0, 0]
			return Empty()
		}
	}

	return canon(rmath.DivLow(1, xh), rmath.DivHigh(1, xl))
}

// product returns a*b for Mul's candidate set.  A zero factor wins: the
// member 0 contributes 0 no matter what the other factor is, where native
// IEEE multiplication would turn 0*Inf into NaN.
func product(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}

	return a * b
}

// bounds4 returns the smallest and largest of four bound candidates,
// skipping NaN entries; ok is false when every candidate was skipped.
func bounds4(a, b, c, d float64) (lo, hi float64, ok bool) {
	for _, v := range [4]float64{a, b, c, d} {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, ok
}
