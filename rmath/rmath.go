package rmath

import "math"

// Next returns the smallest float64 strictly greater than v, one step along
// the IEEE-754 grid: no float64 lies between v and Next(v).
//
// Special cases:
//   - Next(-Inf) = -Inf (an unbounded edge must stay unbounded)
//   - Next(+Inf) = +Inf
//   - Next(NaN)  = NaN
//
// Next(MaxFloat64) is +Inf.
func Next(v float64) float64 {
	// Stepping off -Inf would land on -MaxFloat64 and silently bound an
	// unbounded edge.
	if math.IsInf(v, -1) {
		return v
	}

	return math.Nextafter(v, math.Inf(1))
}

// Prev returns the largest float64 strictly smaller than v, one step along
// the IEEE-754 grid: no float64 lies between Prev(v) and v.
//
// Special cases:
//   - Prev(+Inf) = +Inf (an unbounded edge must stay unbounded)
//   - Prev(-Inf) = -Inf
//   - Prev(NaN)  = NaN
//
// Prev(-MaxFloat64) is -Inf.
func Prev(v float64) float64 {
	// Stepping off +Inf would land on MaxFloat64 and silently bound an
	// unbounded edge.
	if math.IsInf(v, 1) {
		return v
	}

	return math.Nextafter(v, math.Inf(-1))
}

// DivLow returns a float64 lower bound on the exact quotient a/b: the result
// never exceeds the infinitely precise value of a/b.
//
// The native quotient q = a/b is rounded to nearest, so q may sit on either
// side of the exact quotient.  The residual r = FMA(q, b, -a) = q*b - a is
// computed with a single rounding, and its sign locates q:
//
//  1. r == 0: q is exact, return it unchanged (DivLow(1, 4) == 0.25).
//  2. sign(r) == sign(b): q overshoots the exact quotient, step to Prev(q).
//  3. otherwise: q already undershoots, return it.
//
// Special cases:
//   - NaN quotients (0/0, Inf/Inf) and quotients of non-finite operands are
//     returned as computed, as is division by a zero b;
//   - a finite-operand quotient that overflowed to +Inf returns MaxFloat64,
//     since the exact quotient is a finite value; an overflow to -Inf is
//     already a sound lower bound and passes through.
func DivLow(a, b float64) float64 {
	q := a / b

	if math.IsInf(q, 0) {
		// Overflow of a finite quotient is the only infinite case where a
		// tighter finite bound exists.
		if q > 0 && isFinite(a) && isFinite(b) && b != 0 {
			return math.MaxFloat64
		}

		return q
	}
	if math.IsNaN(q) || !isFinite(a) || !isFinite(b) || b == 0 {
		return q
	}

	// r = q*b - a with one rounding; sign(r) relative to sign(b) tells
	// which side of the exact quotient q landed on.
	r := math.FMA(q, b, -a)
	if r != 0 && (r > 0) == (b > 0) {
		return Prev(q)
	}

	return q
}

// DivHigh returns a float64 upper bound on the exact quotient a/b: the
// result is never below the infinitely precise value of a/b.
//
// Mirror image of DivLow: the same residual test steps q up to Next(q) when
// q undershoots the exact quotient, and a finite-operand overflow to -Inf
// returns -MaxFloat64.
func DivHigh(a, b float64) float64 {
	q := a / b

	if math.IsInf(q, 0) {
		if q < 0 && isFinite(a) && isFinite(b) && b != 0 {
			return -math.MaxFloat64
		}

		return q
	}
	if math.IsNaN(q) || !isFinite(a) || !isFinite(b) || b == 0 {
		return q
	}

	// Opposite residual sign here: q undershoots when r and b disagree.
	r := math.FMA(q, b, -a)
	if r != 0 && (r > 0) != (b > 0) {
		return Next(q)
	}

	return q
}

// SqrtLow returns a float64 lower bound on the exact square root of x.
//
// math.Sqrt is correctly rounded to nearest, so s = Sqrt(x) is within half
// an ulp of the exact root.  The residual r = FMA(s, s, -x) = s*s - x is
// computed with a single rounding and keeps its sign:
//
//   - r > 0: s overshoots the root, step to Prev(s);
//   - r <= 0: s is exact or already below the root.
//
// Perfect squares come back exact: SqrtLow(4) == 2.  Special cases mirror
// math.Sqrt: SqrtLow(+Inf) = +Inf, SqrtLow(±0) = ±0, SqrtLow(x < 0) = NaN.
func SqrtLow(x float64) float64 {
	s := math.Sqrt(x)
	if s == 0 || !isFinite(s) {
		return s
	}

	if r := math.FMA(s, s, -x); r > 0 {
		return Prev(s)
	}

	return s
}

// SqrtHigh returns a float64 upper bound on the exact square root of x.
//
// Mirror image of SqrtLow: a negative residual means s undershoots the root
// and is stepped to Next(s).  Perfect squares come back exact.
func SqrtHigh(x float64) float64 {
	s := math.Sqrt(x)
	if s == 0 || !isFinite(s) {
		return s
	}

	if r := math.FMA(s, s, -x); r < 0 {
		return Next(s)
	}

	return s
}

// PowLow returns a float64 lower bound on x**p, one neighbour step below
// math.Pow(x, p).
//
// math.Pow is not correctly rounded but stays within about one ulp of the
// exact power, so the neighbouring value Prev(math.Pow(x, p)) bounds the
// exact result from below.  There is no exactness recovery here: PowLow of
// an exactly representable power still steps one ulp down.  Integer powers
// that must stay exact are computed by callers without this helper.
func PowLow(x, p float64) float64 {
	return Prev(math.Pow(x, p))
}

// PowHigh returns a float64 upper bound on x**p, one neighbour step above
// math.Pow(x, p).  See PowLow for the error model.
func PowHigh(x, p float64) float64 {
	return Next(math.Pow(x, p))
}

// isFinite reports whether v is neither infinite nor NaN.
func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
