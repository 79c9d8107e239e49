package core_test

import (
	"testing"

	"github.com/katalvlaran/tempora/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTimeValue_UnitRatios pins the public unit contract: a week is 7 days,
// a year is 146097/400 days, a month is one twelfth of a year.
func TestTimeValue_UnitRatios(t *testing.T) {
	assert.Equal(t, core.FromDays(7), core.FromWeeks(1), "week = 7 days")
	assert.Equal(t, core.FromHours(24), core.FromDays(1), "day = 24 hours")
	assert.Equal(t, core.FromMins(60), core.FromHours(1), "hour = 60 minutes")
	assert.Equal(t, core.FromSecs(60), core.FromMins(1), "minute = 60 seconds")

	assert.Equal(t, core.FromDays(146097), core.FromYears(400), "year = 146097/400 days")
	assert.Equal(t, core.FromYears(1), core.FromMonths(12), "month = year/12")
	assert.Equal(t, int64(31_556_952), core.FromYears(1).Secs(), "mean Gregorian year in seconds")
}

// TestTimeValue_TickResolution verifies the fixed-point layout:
// one second is exactly 2^30 ticks.
func TestTimeValue_TickResolution(t *testing.T) {
	assert.Equal(t, core.TicksPerSec, core.FromSecs(1).Ticks())
	assert.Equal(t, int64(5), core.FromSecs(5).Secs())
	assert.Equal(t, core.FromTicks(3*core.TicksPerSec), core.FromSecs(3))
}

// TestTimeValue_SubsecRounding checks the nanosecond view of the tick
// fraction: half a second is exact, a lone tick rounds to 1ns.
func TestTimeValue_SubsecRounding(t *testing.T) {
	half := core.FromMillis(1500)
	assert.Equal(t, int64(1), half.Secs())
	assert.Equal(t, int64(500_000_000), half.SubsecNanos())
	assert.Equal(t, int64(500_000), half.SubsecMicros())
	assert.Equal(t, int64(500), half.SubsecMillis())

	assert.Equal(t, int64(1), core.FromTicks(1).SubsecNanos(), "a tick is just under a nanosecond")
	assert.Equal(t, int64(0), core.FromSecs(2).SubsecNanos())
}

// TestTimeValue_Sentinels verifies the infinity encodings and that
// negation stays total across them.
func TestTimeValue_Sentinels(t *testing.T) {
	var zero core.TimeValue
	future, past := zero.Future(), zero.Past()

	assert.True(t, future.IsFutureInfinite())
	assert.True(t, past.IsPastInfinite())
	assert.False(t, future.IsFinite())
	assert.False(t, past.IsFinite())
	assert.True(t, zero.IsFinite())

	assert.Equal(t, past, future.Neg(), "negation swaps sentinels")
	assert.Equal(t, future, past.Neg(), "negation swaps sentinels")
	assert.Equal(t, future, future.JustAfter(), "JustAfter is identity on +oo")
	assert.Equal(t, past, past.JustBefore(), "JustBefore is identity on -oo")
}

// TestTimeValue_FromTicksClamp verifies that out-of-range raw ticks land
// on the sentinels instead of producing math.MinInt64.
func TestTimeValue_FromTicksClamp(t *testing.T) {
	var zero core.TimeValue
	assert.Equal(t, zero.Past(), core.FromTicks(-1<<63), "MinInt64 clamps to -oo")
	assert.Equal(t, zero.Future(), core.FromTicks(1<<63-1))
	assert.Equal(t, zero.Future(), core.FromYears(1<<40), "unit overflow saturates")
	assert.Equal(t, zero.Past(), core.FromYears(-(1 << 40)))
}

// TestTimeValue_SaturatingAdd exercises the saturation rules of Add/Sub:
// finite overflow lands on a sentinel and an infinite operand wins.
func TestTimeValue_SaturatingAdd(t *testing.T) {
	var zero core.TimeValue
	big := core.FromTicks(1<<63 - 2)

	assert.Equal(t, zero.Future(), big.Add(big), "finite overflow saturates to +oo")
	assert.Equal(t, zero.Past(), big.Neg().Add(big.Neg()), "finite underflow saturates to -oo")
	assert.Equal(t, zero.Future(), core.FromSecs(1).Add(zero.Future()), "+oo absorbs finite")
	assert.Equal(t, zero.Past(), zero.Past().Add(core.FromSecs(1)), "-oo absorbs finite")
	assert.Equal(t, zero.Future(), zero.Future().Add(zero.Future()))
	assert.Equal(t, core.FromSecs(5), core.FromSecs(2).Add(core.FromSecs(3)))
	assert.Equal(t, core.FromSecs(-1), core.FromSecs(2).Sub(core.FromSecs(3)))
}

// TestTimeValue_OppositeInfinityPanics pins the one programmer-error case:
// combining +oo with -oo panics instead of inventing a result.
func TestTimeValue_OppositeInfinityPanics(t *testing.T) {
	var zero core.TimeValue
	assert.Panics(t, func() { zero.Future().Add(zero.Past()) }, "+oo + -oo must panic")
	assert.Panics(t, func() { zero.Past().Add(zero.Future()) }, "-oo + +oo must panic")
	assert.Panics(t, func() { zero.Future().Sub(zero.Future()) }, "+oo - +oo must panic")
}

// TestTimeValue_CompareAndPredicates covers ordering and the sign predicates.
func TestTimeValue_CompareAndPredicates(t *testing.T) {
	var zero core.TimeValue
	require.Equal(t, -1, core.FromSecs(1).Compare(core.FromSecs(2)))
	require.Equal(t, 0, core.FromSecs(2).Compare(core.FromSecs(2)))
	require.Equal(t, 1, zero.Future().Compare(core.FromSecs(2)))
	require.Equal(t, -1, zero.Past().Compare(core.FromSecs(-100)))

	assert.True(t, zero.IsZero())
	assert.True(t, zero.IsPositive(), "zero counts as positive")
	assert.True(t, zero.IsNegative(), "zero counts as negative")
	assert.False(t, zero.IsStrictlyPositive())
	assert.True(t, core.FromSecs(1).IsStrictlyPositive())
	assert.True(t, core.FromSecs(-1).IsStrictlyNegative())
}

// TestTimeValue_FloorCeil ports the rounding table: floor goes toward -oo,
// ceil toward +oo, exact multiples are fixed points.
func TestTimeValue_FloorCeil(t *testing.T) {
	tick := core.FromTicks
	cases := []struct {
		name        string
		v, period   core.TimeValue
		floor, ceil int64
	}{
		{"positive", tick(13), tick(5), 10, 15},
		{"multiple", tick(13), tick(13), 13, 13},
		{"below period", tick(13), tick(14), 0, 14},
		{"zero", tick(0), tick(13), 0, 0},
		{"negative", tick(-13), tick(5), -15, -10},
		{"negative multiple", tick(-15), tick(5), -15, -15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.floor, tc.v.Floor(tc.period).Ticks(), "floor")
			assert.Equal(t, tc.ceil, tc.v.Ceil(tc.period).Ticks(), "ceil")
		})
	}
}
