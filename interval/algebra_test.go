package interval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPow_IntegerExact checks that integer powers of representable bounds
// stay exact through the squaring chain.
func TestPow_IntegerExact(t *testing.T) {
	assert.Equal(t, interval.New(8, 8), interval.New(2, 2).Pow(3), "[2,2]^3")
	assert.Equal(t, interval.New(4, 9), interval.New(2, 3).Pow(2), "[2,3]^2")
	assert.Equal(t, interval.Singleton(1024), interval.New(2, 2).Pow(10), "[2,2]^10")
	assert.Equal(t, interval.New(4, 9), interval.New(-3, -2).Pow(2), "even power drops the sign")
	assert.Equal(t, interval.New(-27, -8), interval.New(-3, -2).Pow(3), "odd power keeps the sign and swaps edges")
}

// TestPow_StraddlingZero checks the fold-versus-keep split at zero.
func TestPow_StraddlingZero(t *testing.T) {
	assert.Equal(t, interval.New(0, 9), interval.New(-2, 3).Pow(2), "even power folds onto [0, max^n]")
	assert.Equal(t, interval.New(-8, 27), interval.New(-2, 3).Pow(3), "odd power keeps both signed edges")
	assert.Equal(t, interval.New(-27, 8), interval.New(-3, 2).Pow(3), "odd power with the heavy side negative")
	assert.Equal(t, interval.New(-2, 3), interval.New(-2, 3).Pow(1), "power one is the identity")
}

// TestPow_ZeroExponent pins the x^0 policy: 1 everywhere except 0^0.
func TestPow_ZeroExponent(t *testing.T) {
	assert.Equal(t, interval.One(), interval.New(2, 3).Pow(0), "positive base")
	assert.Equal(t, interval.One(), interval.New(-1, 1).Pow(0), "zero-straddling base")
	assert.Equal(t, interval.One(), interval.Whole().Pow(0), "whole-line base")
	assert.True(t, interval.Zero().Pow(0).IsEmpty(), "0^0 has no defined value")
	assert.True(t, interval.Empty().Pow(0).IsEmpty(), "Empty absorbs before the exponent policy")
}

// TestPow_NegativeExponent checks the invert-after-powering route.
func TestPow_NegativeExponent(t *testing.T) {
	assert.Equal(t, interval.New(0.5, 1), interval.New(1, 2).Pow(-1), "[1,2]^-1")
	assert.Equal(t, interval.Singleton(0.25), interval.New(2, 2).Pow(-2), "[2,2]^-2 stays exact")
	assert.True(t, interval.New(-2, 2).Pow(-1).IsWhole(), "inverting through an interior zero widens to Whole")
	assert.Equal(t, interval.New(0.25, math.Inf(1)), interval.New(-2, 2).Pow(-2), "the even fold happens before the inverse, keeping a finite edge")
}

// TestPow_ExtremeExponentsTerminate drives Pow at the machine-int limits:
// the bit-walk edge power and the overflow-safe negation must both finish
// and land on the conventional degenerate values.
func TestPow_ExtremeExponentsTerminate(t *testing.T) {
	assert.Equal(t, interval.One(), interval.One().Pow(math.MaxInt), "1^MaxInt stays 1")
	assert.Equal(t, interval.One(), interval.One().Pow(math.MinInt), "1^MinInt stays 1")
	assert.Equal(t, interval.Zero(), interval.Singleton(0.5).Pow(math.MaxInt), "(1/2)^MaxInt underflows to zero")
	assert.Equal(t, interval.Zero(), interval.New(2, 2).Pow(math.MinInt), "2^MinInt underflows to zero")
}

// TestPowInterval_IntegerSingleton accepts singleton exponents that pin an
// integer, exactly or within Tolerance.
func TestPowInterval_IntegerSingleton(t *testing.T) {
	got, err := interval.New(2, 2).PowInterval(interval.New(3, 3))
	require.NoError(t, err, "[3,3] pins the integer 3")
	assert.Equal(t, interval.New(8, 8), got, "integer cube")

	got, err = interval.New(2, 2).PowInterval(interval.Singleton(3.00000001))
	require.NoError(t, err, "3.00000001 rounds to 3 within Tolerance")
	assert.Equal(t, interval.New(8, 8), got, "rounded exponent behaves as the integer")
}

// TestPowInterval_RejectsNonInteger checks the two-stage validation: the
// exponent must be a singleton and must sit near an integer.
func TestPowInterval_RejectsNonInteger(t *testing.T) {
	for name, power := range map[string]interval.Interval{
		"wide exponent":    interval.New(2, 3),
		"narrow non-point": interval.New(3, 3.5),
		"fractional point": interval.Singleton(2.5),
		"empty exponent":   interval.Empty(),
		"unbounded degree": interval.Whole(),
	} {
		got, err := interval.New(2, 2).PowInterval(power)

		require.Error(t, err, "%s must be rejected", name)
		assert.ErrorIs(t, err, interval.ErrPowerNotInteger, "%s reports the sentinel", name)
		assert.True(t, got.IsEmpty(), "%s yields Empty alongside the error", name)
	}
}

// TestPowInterval_RejectsOutOfRangeExponent checks the third validation
// stage: an exactly integral exponent whose magnitude cannot survive the
// conversion to int must report the sentinel instead of wrapping around.
func TestPowInterval_RejectsOutOfRangeExponent(t *testing.T) {
	for name, power := range map[string]interval.Interval{
		"huge positive":       interval.Singleton(1e30),
		"huge negative":       interval.Singleton(-1e30),
		"just past the limit": interval.Singleton(float64(math.MaxInt32) + 1),
	} {
		got, err := interval.New(2, 2).PowInterval(power)

		require.Error(t, err, "%s must be rejected", name)
		assert.ErrorIs(t, err, interval.ErrPowerNotInteger, "%s reports the sentinel", name)
		assert.True(t, got.IsEmpty(), "%s yields Empty alongside the error", name)
	}

	got, err := interval.One().PowInterval(interval.Singleton(math.MaxInt32))
	require.NoError(t, err, "the largest supported exponent is accepted")
	assert.Equal(t, interval.One(), got, "1 to any accepted power stays 1")
}

// TestSqrt_ExactAndPolicy covers perfect squares, the clamp policy and the
// degenerate shapes.
func TestSqrt_ExactAndPolicy(t *testing.T) {
	assert.Equal(t, interval.New(2, 3), interval.New(4, 9).Sqrt(), "perfect squares root exactly")
	assert.Equal(t, interval.New(0, 2), interval.New(0, 4).Sqrt(), "zero edge roots to zero")
	assert.Equal(t, interval.New(0, 3), interval.New(-4, 9).Sqrt(), "negative part is clamped away")
	assert.Equal(t, interval.New(0, math.Inf(1)), interval.Whole().Sqrt(), "the whole line clamps to the non-negative half-line")
	assert.True(t, interval.New(-9, -4).Sqrt().IsEmpty(), "entirely negative input has no real square root")
	assert.True(t, interval.Empty().Sqrt().IsEmpty(), "Empty stays Empty")
}

// TestSqrt_IrrationalEnclosure checks a non-representable root: the bounds
// must bracket it tightly.
func TestSqrt_IrrationalEnclosure(t *testing.T) {
	got := interval.Singleton(2).Sqrt()

	require.False(t, got.IsEmpty(), "sqrt of [2,2] exists")
	assert.True(t, got.Contains(math.Sqrt2), "the native sqrt is enclosed")
	assert.True(t, got.AlmostEqual(interval.Singleton(math.Sqrt2)), "the enclosure is ulp-tight")
	assert.LessOrEqual(t, got.Low()*got.Low(), 2.0, "lower bound squared stays below 2")
	assert.GreaterOrEqual(t, got.High()*got.High(), 2.0, "upper bound squared stays above 2")
}

// TestNthRoot_OddPreservesSign checks cube roots of negative ranges.
func TestNthRoot_OddPreservesSign(t *testing.T) {
	got := interval.New(-27, -8).NthRoot(3)

	require.False(t, got.IsEmpty(), "odd root of a negative range is real")
	assert.True(t, got.AlmostEqual(interval.New(-3, -2)), "cube root of [-27,-8]")
	assert.True(t, got.Contains(-2.5), "interior points are enclosed")
	assert.Less(t, got.High(), 0.0, "the result stays negative")
}

// TestNthRoot_StraddleAndClamp checks zero-straddling inputs under odd and
// even degrees.
func TestNthRoot_StraddleAndClamp(t *testing.T) {
	odd := interval.New(-8, 27).NthRoot(3)
	assert.True(t, odd.AlmostEqual(interval.New(-2, 3)), "odd degree keeps the negative side")
	assert.True(t, odd.Contains(0), "straddling input keeps zero")

	even := interval.New(-8, 16).NthRoot(4)
	assert.Equal(t, 0.0, even.Low(), "even degree clamps the negative side to zero")
	assert.True(t, even.AlmostEqual(interval.New(0, 2)), "fourth root of [0,16]")

	assert.True(t, interval.New(-16, -8).NthRoot(4).IsEmpty(), "even degree of a negative range is Empty")
}

// TestNthRoot_DegenerateDegrees checks the n < 1 cutoff and the square
// delegation.
func TestNthRoot_DegenerateDegrees(t *testing.T) {
	assert.True(t, interval.New(1, 2).NthRoot(0.5).IsEmpty(), "degrees below one are rejected")
	assert.True(t, interval.New(1, 2).NthRoot(0).IsEmpty(), "degree zero is rejected")
	assert.True(t, interval.New(1, 2).NthRoot(-3).IsEmpty(), "negative degrees are rejected")
	assert.Equal(t, interval.New(2, 3), interval.New(4, 9).NthRoot(2), "degree two delegates to the exact square root")
	assert.True(t, interval.New(2, 5).NthRoot(1).AlmostEqual(interval.New(2, 5)), "degree one widens by one step only")
}

// TestNthRoot_FractionalDegree checks a non-integer degree on the positive
// domain.
func TestNthRoot_FractionalDegree(t *testing.T) {
	got := interval.New(4, 9).NthRoot(1.5)

	require.False(t, got.IsEmpty(), "fractional degree on positives is defined")
	assert.True(t, got.Contains(math.Pow(6, 2.0/3.0)), "interior powers are enclosed")
	assert.Less(t, got.Low(), got.High(), "a non-degenerate range stays a range")
}

// TestNthRootInterval_DegreePinning requires the degree interval to pin a
// single value; anything wider degenerates to Empty.
func TestNthRootInterval_DegreePinning(t *testing.T) {
	got := interval.New(8, 27).NthRootInterval(interval.Singleton(3))
	assert.True(t, got.AlmostEqual(interval.New(2, 3)), "singleton degree roots normally")

	assert.True(t, interval.New(8, 27).NthRootInterval(interval.New(2, 3)).IsEmpty(), "wide degree yields Empty")
	assert.True(t, interval.New(8, 27).NthRootInterval(interval.Empty()).IsEmpty(), "empty degree yields Empty")
}

// TestFmod_ReducesAgainstSingleton checks plain range reduction with a
// one-point period.
func TestFmod_ReducesAgainstSingleton(t *testing.T) {
	got, err := interval.New(5.3, 5.4).Fmod(interval.Singleton(2))
	require.NoError(t, err, "positive dividend, positive period")
	assert.True(t, got.AlmostEqual(interval.New(1.3, 1.4)), "5.3..5.4 mod 2")

	got, err = interval.Singleton(7).Fmod(interval.Singleton(2))
	require.NoError(t, err)
	assert.Equal(t, interval.Singleton(1), got, "7 mod 2 is exactly 1")
}

// TestFmod_NegativeDividend keeps the truncated-division convention: the
// representative follows the dividend's sign.
func TestFmod_NegativeDividend(t *testing.T) {
	got, err := interval.New(-5.4, -5.3).Fmod(interval.Singleton(2))
	require.NoError(t, err)
	assert.True(t, got.AlmostEqual(interval.New(-1.4, -1.3)), "-5.4..-5.3 mod 2")

	got, err = interval.Singleton(-7).Fmod(interval.Singleton(2))
	require.NoError(t, err)
	assert.Equal(t, interval.Singleton(-1), got, "-7 mod 2 is exactly -1")
}

// TestFmod_WidePeriods checks periods that are ranges rather than points,
// including signs the reduction has to cross.
func TestFmod_WidePeriods(t *testing.T) {
	got, err := interval.New(5, 6).Fmod(interval.New(-2, 3))
	require.NoError(t, err, "zero-straddling period with a non-zero selected edge")
	assert.Equal(t, interval.New(2, 8), got, "[5,6] mod [-2,3]")

	got, err = interval.New(5, 6).Fmod(interval.New(-3, -2))
	require.NoError(t, err, "negative period")
	assert.Equal(t, interval.New(-1, 2), got, "[5,6] mod [-3,-2]")

	got, err = interval.New(-5, -4).Fmod(interval.New(-3, 0))
	require.NoError(t, err, "selected edge is the non-zero one")
	assert.Equal(t, interval.New(-5, -1), got, "[-5,-4] mod [-3,0]")
}

// TestFmod_ZeroPeriodEdge checks the division-by-zero consistency: a zero
// selected edge admits no reduction.
func TestFmod_ZeroPeriodEdge(t *testing.T) {
	cases := []struct {
		name     string
		x, other interval.Interval
	}{
		{"zero period", interval.New(5, 6), interval.Zero()},
		{"positive dividend, period ending at zero", interval.New(5, 6), interval.New(-3, 0)},
		{"negative dividend, period starting at zero", interval.New(-5, -4), interval.New(0, 3)},
	}
	for _, tc := range cases {
		got, err := tc.x.Fmod(tc.other)

		require.Error(t, err, "%s must fail", tc.name)
		assert.ErrorIs(t, err, interval.ErrDivisionByZero, "%s reports the division sentinel", tc.name)
		assert.True(t, got.IsEmpty(), "%s yields Empty alongside the error", tc.name)
	}
}

// TestFmod_DegenerateShapes checks Empty pass-through and the unbounded
// dividend collapse.
func TestFmod_DegenerateShapes(t *testing.T) {
	got, err := interval.Empty().Fmod(interval.New(1, 2))
	require.NoError(t, err, "empty dividend is degenerate, not an error")
	assert.True(t, got.IsEmpty(), "empty dividend yields Empty")

	got, err = interval.New(1, 2).Fmod(interval.Empty())
	require.NoError(t, err, "empty period is degenerate, not an error")
	assert.True(t, got.IsEmpty(), "empty period yields Empty")

	got, err = interval.New(math.Inf(-1), 5).Fmod(interval.New(2, 3))
	require.NoError(t, err, "unbounded dividend is degenerate, not an error")
	assert.True(t, got.IsEmpty(), "no finite multiple reduces an unbounded dividend")
}

// TestAlgebra_PythagoreanChain runs a small composed computation end to
// end: exact inputs must produce the exact hypotenuse.
func TestAlgebra_PythagoreanChain(t *testing.T) {
	hyp := interval.Singleton(3).Pow(2).Add(interval.Singleton(4).Pow(2)).Sqrt()

	assert.Equal(t, interval.Singleton(5), hyp, "sqrt(3^2 + 4^2) stays exact end to end")
}
