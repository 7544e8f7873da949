// Package interval defines the Interval value, its constructors and sentinel errors.
package interval

import (
	"errors"
	"math"
)

// Sentinel errors for interval operations.
var (
	// ErrDivisionByZero indicates a divisor or modulus range that contains zero.
	ErrDivisionByZero = errors.New("interval: division by zero")
	// ErrPowerNotInteger indicates an exponent interval that does not narrow
	// to a single integer value.
	ErrPowerNotInteger = errors.New("interval: power is not an integer")
)

// Tolerance is the absolute precision used by the approximate comparisons:
// IsSingleton treats bounds closer than Tolerance as one point, AlmostEqual
// accepts bound pairs within Tolerance of each other, and PowInterval
// accepts exponents within Tolerance of an integer.
const Tolerance = 1e-7

// form discriminates the three shapes an Interval can take.  Keeping the
// shape explicit, instead of encoding emptiness in sentinel bounds, makes
// the zero value meaningful and lets == agree with set equality.
type form uint8

const (
	// formEmpty is the set with no members; the zero Interval has this form.
	formEmpty form = iota
	// formBounded is a closed range with low <= high.  One infinite edge
	// makes it a half-line; the fully unbounded pair is promoted to formWhole.
	formBounded
	// formWhole is the whole real line [-Inf, +Inf].
	formWhole
)

// Interval is a closed range [low, high] of float64 values.
//
// The zero value is the empty interval, ready to use.  Interval is an
// immutable value type: operations return new intervals and never modify
// their operands, so intervals can be copied, shared across goroutines and
// used as map keys freely.  Bounds are canonicalized on construction
// (negative zero folds to +0, NaN collapses to Empty), so == on Interval
// agrees with set equality.
type Interval struct {
	form form
	low  float64
	high float64
}

// New returns the closed interval [low, high].
//
// Bounds are canonicalized:
//   - a NaN bound or an inverted pair (high < low) yields Empty;
//   - negative zero is normalized to +0;
//   - the pair [-Inf, +Inf] yields Whole.
//
// Infinite edges are legal and mean the side is unbounded:
// New(0, math.Inf(1)) is the non-negative half-line.
func New(low, high float64) Interval {
	return canon(low, high)
}

// Singleton returns the degenerate interval [v, v] holding exactly v.
// Singleton(NaN) is Empty.
func Singleton(v float64) Interval {
	return canon(v, v)
}

// Empty returns the interval with no members.  It equals the zero value
// of Interval.
func Empty() Interval {
	return Interval{}
}

// Whole returns the interval covering every real value, [-Inf, +Inf].
func Whole() Interval {
	return Interval{form: formWhole}
}

// Zero returns the singleton interval [0, 0].
func Zero() Interval {
	return Singleton(0)
}

// One returns the singleton interval [1, 1].
func One() Interval {
	return Singleton(1)
}

// canon builds an Interval from raw bounds, normalizing every representation
// detail so that == on Interval agrees with set equality:
//
//  1. NaN bounds and inverted pairs collapse to Empty.
//  2. Signed zero folds to +0.
//  3. The fully unbounded pair becomes the dedicated whole form.
func canon(low, high float64) Interval {
	if math.IsNaN(low) || math.IsNaN(high) || high < low {
		return Interval{}
	}
	if low == 0 {
		low = 0 // folds -0 to +0
	}
	if high == 0 {
		high = 0
	}
	if math.IsInf(low, -1) && math.IsInf(high, 1) {
		return Interval{form: formWhole}
	}

	return Interval{form: formBounded, low: low, high: high}
}

// almost reports whether a and b coincide or sit closer than Tolerance.
// Equal infinities compare true through the first clause.
func almost(a, b float64) bool {
	return a == b || math.Abs(a-b) < Tolerance
}

// isFinite reports whether v is neither infinite nor NaN.
func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
