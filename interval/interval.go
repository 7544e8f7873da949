// Package interval: accessors, set predicates and formatting for Interval.
//
// This file is the read-only surface of the type: bound projections,
// classification predicates, equality helpers, the canonical string form
// and the half-open narrowing helpers used to exclude a shared edge.
package interval

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmath/rmath"
)

// Low returns the lower bound.  Empty projects to +Inf and Whole to -Inf,
// so bound arithmetic needs no special cases: Empty is the one shape whose
// Low exceeds its High.
func (x Interval) Low() float64 {
	switch x.form {
	case formEmpty:
		return math.Inf(1)
	case formWhole:
		return math.Inf(-1)
	default:
		return x.low
	}
}

// High returns the upper bound.  Empty projects to -Inf and Whole to +Inf.
func (x Interval) High() float64 {
	switch x.form {
	case formEmpty:
		return math.Inf(-1)
	case formWhole:
		return math.Inf(1)
	default:
		return x.high
	}
}

// IsEmpty reports whether the interval has no members.
func (x Interval) IsEmpty() bool {
	return x.form == formEmpty
}

// IsWhole reports whether the interval covers the whole real line.
func (x Interval) IsWhole() bool {
	return x.form == formWhole
}

// IsSingleton reports whether the interval holds exactly one finite point:
// the low bound is finite and the high bound sits within Tolerance of it.
func (x Interval) IsSingleton() bool {
	return x.form == formBounded && isFinite(x.low) && almost(x.low, x.high)
}

// HasZero reports whether zero is a member of the interval.
func (x Interval) HasZero() bool {
	switch x.form {
	case formEmpty:
		return false
	case formWhole:
		return true
	default:
		return x.low <= 0 && 0 <= x.high
	}
}

// Contains reports whether v is a member of the interval.  Bounds are
// closed, so infinite edges admit their infinity; NaN is never a member.
func (x Interval) Contains(v float64) bool {
	if x.form == formEmpty {
		return false
	}

	return x.Low() <= v && v <= x.High()
}

// Overlaps reports whether x and other share at least one point.  The
// empty interval overlaps nothing, including itself.
func (x Interval) Overlaps(other Interval) bool {
	if x.form == formEmpty || other.form == formEmpty {
		return false
	}

	return x.Low() <= other.High() && other.Low() <= x.High()
}

// Equal reports whether x and other are the same set of values.  Bounds
// are canonical (see New), so this is plain struct equality; the method
// exists for symmetry with AlmostEqual and for conditions that read better
// with a name.
func (x Interval) Equal(other Interval) bool {
	return x == other
}

// AlmostEqual reports whether both bound pairs agree within Tolerance.
// Infinite edges must match exactly; Empty is almost equal only to Empty,
// since its projected bounds ( +Inf, -Inf ) match no bounded pair.
func (x Interval) AlmostEqual(other Interval) bool {
	return almost(x.Low(), other.Low()) && almost(x.High(), other.High())
}

// String renders the interval in the canonical text form:
//
//	Interval [low, high]   regular range
//	Interval [v]           singleton
//	Interval []            empty
//
// Bounds use the shortest decimal that round-trips (strconv 'g', precision -1).
func (x Interval) String() string {
	var sb strings.Builder
	sb.WriteString("Interval [")
	if x.form != formEmpty {
		sb.WriteString(formatBound(x.Low()))
		if !x.IsSingleton() {
			sb.WriteString(", ")
			sb.WriteString(formatBound(x.High()))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// formatBound renders one bound; infinities come out as "+Inf" / "-Inf".
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// HalfOpenLeft returns the narrowing of x that excludes its left edge: the
// tightest closed interval containing (low, high].  The low bound moves one
// float64 step inward; infinite edges stay put, and narrowing a singleton
// leaves no members, so the result is Empty.
//
// Evaluation over adjacent columns uses this to keep a shared edge from
// being counted twice.
func (x Interval) HalfOpenLeft() Interval {
	if x.form != formBounded {
		return x
	}

	return canon(rmath.Next(x.low), x.high)
}

// HalfOpenRight returns the narrowing of x that excludes its right edge:
// the tightest closed interval containing [low, high).  Mirror image of
// HalfOpenLeft.
func (x Interval) HalfOpenRight() Interval {
	if x.form != formBounded {
		return x
	}

	return canon(x.low, rmath.Prev(x.high))
}
