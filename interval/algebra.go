// Package interval: exponentiation, roots and range reduction.
//
// These operations branch extensively on sign and parity, so they live in
// their own file and are unit-tested independently of the four basic
// operators they build on.
package interval

import (
	"math"

	"github.com/katalvlaran/lvlmath/rmath"
)

// Pow raises the interval to the integer power n.
//
// The sign decomposition is applied once, to the whole interval, and only
// edge magnitudes are raised.  Raising a magnitude multiplies its binary
// powers together, which keeps integer cases exact: [2,2].Pow(3) is
// exactly [8,8], and [-2,3].Pow(3) is the tight [-8,27] rather than the
// loose candidate scan of a zero-straddling product.
//
// Steps:
//  1. Empty stays Empty.
//  2. n == 0: the conventional x^0 = 1, except [0,0] which has no defined
//     value and yields Empty.
//  3. n < 0: the magnitude power is taken first, then inverted, as
//     Pow(-n).Reciprocal(); the even-power fold of a zero-straddling base
//     happens before the inverse, so [-2,2].Pow(-2) keeps its finite
//     0.25 edge.  n == MinInt cannot be negated directly; one factor is
//     peeled off so the remaining magnitude fits the int range.
//  4. Entirely negative interval: magnitudes are raised; an odd n restores
//     the sign and swaps the edges, an even n drops the sign.
//  5. Zero-straddling interval: an even power folds both sides onto
//     [0, max(-low, high)^n]; an odd power keeps [-(-low)^n, high^n].
//  6. Non-negative interval: plain [low^n, high^n].
//
// Complexity: O(log n) multiplications per edge.
func (x Interval) Pow(n int) Interval {
	if x.form == formEmpty {
		return Empty()
	}
	if n == 0 {
		if x.Low() == 0 && x.High() == 0 {
			return Empty() // 0^0
		}

		return One()
	}
	if n < 0 {
		if n == math.MinInt {
			// x^MinInt = 1 / (x^MaxInt * x); -MinInt overflows.
			return x.Pow(math.MaxInt).Mul(x).Reciprocal()
		}

		return x.Pow(-n).Reciprocal()
	}

	xl, xh := x.Low(), x.High()
	switch {
	case xh < 0:
		lo, hi := powEdge(-xh, n), powEdge(-xl, n)
		if n%2 == 1 {
			return canon(-hi, -lo)
		}

		return canon(lo, hi)
	case xl < 0:
		if n%2 == 1 {
			return canon(-powEdge(-xl, n), powEdge(xh, n))
		}

		return canon(0, powEdge(math.Max(-xl, xh), n))
	default:
		return canon(powEdge(xl, n), powEdge(xh, n))
	}
}

// PowInterval raises x to an exponent given as an interval.
//
// An interval exponent is only meaningful when it pins a single usable
// integer: the exponent must be a singleton, its value must sit within
// Tolerance of an integer, and the integer's magnitude must not exceed
// MaxInt32 (float-to-int conversion is only portable inside that range).
// Anything else reports ErrPowerNotInteger; there is no implicit
// truncation.  The exponent is validated before the base is looked at.
func (x Interval) PowInterval(power Interval) (Interval, error) {
	if !power.IsSingleton() {
		return Empty(), ErrPowerNotInteger
	}

	n := math.Round(power.Low())
	if !almost(n, power.Low()) || math.Abs(n) > math.MaxInt32 {
		return Empty(), ErrPowerNotInteger
	}

	return x.Pow(int(n)), nil
}

// Sqrt returns the square root of the interval, the n-th root with n = 2.
// Perfect squares come back exact: [4,9].Sqrt() is [2,3].
func (x Interval) Sqrt() Interval {
	return x.root(2)
}

// NthRoot returns the n-th root of the interval.
//
// Real-valued policy:
//   - Empty input or n < 1 yields Empty;
//   - an odd integer n preserves sign: the magnitude is rooted and the
//     sign restored, with the rounding directions flipped by the negation;
//   - any other n is defined on the non-negative domain only: the input is
//     clamped to [0, +Inf) first, so an entirely negative interval yields
//     Empty and a zero-straddling one keeps [0, root(high)].
func (x Interval) NthRoot(n float64) Interval {
	return x.root(n)
}

// NthRootInterval returns the n-th root with the degree given as an
// interval.  A degree that does not narrow to a single value pins no root
// and yields Empty; unlike PowInterval this is a policy branch, not an
// error.
func (x Interval) NthRootInterval(n Interval) Interval {
	if !n.IsSingleton() {
		return Empty()
	}

	return x.root(n.Low())
}

// Fmod returns the floating modulo of x by other: an enclosure of the
// fundamental-period representative x - k*other, with the integer k chosen
// from the lower edge of x.
//
// Steps:
//  1. Empty operand: Empty, not an error.
//  2. Select the period edge: other.Low() when x starts below zero,
//     other.High() otherwise, so the reduction pulls toward zero.
//  3. A zero period edge admits no reduction at all; report
//     ErrDivisionByZero, consistent with Div.
//  4. k = trunc(x.Low() / edge) toward zero; the result is
//     x.Sub(other.Mul(Singleton(k))) through the interval operators.
//
// An unbounded x has no finite k; the NaN normalization collapses such a
// result to Empty.
func (x Interval) Fmod(other Interval) (Interval, error) {
	if x.form == formEmpty || other.form == formEmpty {
		return Empty(), nil
	}

	edge := other.High()
	if x.Low() < 0 {
		edge = other.Low()
	}
	if edge == 0 {
		return Empty(), ErrDivisionByZero
	}

	k := math.Trunc(x.Low() / edge)

	return x.Sub(other.Mul(Singleton(k))), nil
}

// root implements Sqrt and NthRoot for a scalar degree.
func (x Interval) root(n float64) Interval {
	if x.form == formEmpty || n < 1 {
		return Empty()
	}

	xl, xh := x.Low(), x.High()
	odd := isOddInteger(n)
	switch {
	case xh < 0:
		// Entirely negative: only an odd integer root stays real.
		if !odd {
			return Empty()
		}

		return canon(-rootHigh(-xl, n), -rootLow(-xh, n))
	case xl < 0:
		// Straddles zero: the negative side survives only an odd root.
		hi := rootHigh(xh, n)
		if odd {
			return canon(-rootHigh(-xl, n), hi)
		}

		return canon(0, hi)
	default:
		return canon(rootLow(xl, n), rootHigh(xh, n))
	}
}

// powEdge computes v^n for v >= 0 and n >= 1 by multiplying the binary
// powers of v selected by the bits of n.  Exact whenever every
// intermediate product is representable, and the bit walk finishes in
// O(log n) steps for any machine-int exponent.
func powEdge(v float64, n int) float64 {
	r := 1.0
	for n > 0 {
		if n&1 == 1 {
			r *= v
		}
		n >>= 1
		if n > 0 {
			v *= v
		}
	}

	return r
}

// rootLow returns the downward-rounded n-th root of v >= 0.  The square
// root has an exactness-preserving primitive; other degrees go through the
// conservative power bounds with exponent 1/n.
func rootLow(v, n float64) float64 {
	if n == 2 {
		return rmath.SqrtLow(v)
	}

	return rmath.PowLow(v, 1/n)
}

// rootHigh returns the upward-rounded n-th root of v >= 0.
func rootHigh(v, n float64) float64 {
	if n == 2 {
		return rmath.SqrtHigh(v)
	}

	return rmath.PowHigh(v, 1/n)
}

// isOddInteger reports whether n is an odd integer value.
func isOddInteger(n float64) bool {
	return n == math.Trunc(n) && math.Mod(n, 2) == 1
}
