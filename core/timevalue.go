package core

import (
	"cmp"
	"math"
)

// Tick layout: a TimeValue is a signed 64-bit count of ticks where one tick
// is exactly 1/2³⁰ second. The high 34 bits are whole seconds, the low 30
// bits the fractional part, so shifting converts between the two for free.
const (
	subsecBits = 30
	subsecMask = (int64(1) << subsecBits) - 1

	// TicksPerSec is the tick resolution: 2³⁰ ticks per second.
	TicksPerSec = int64(1) << subsecBits
)

// Infinity sentinels. math.MinInt64 is deliberately never produced so that
// negation stays total.
const (
	infiniteTicks = math.MaxInt64
	maxSec        = infiniteTicks >> subsecBits
)

// Ticks per named unit. A year is 146097/400 days (the mean Gregorian
// year, 365.2425 days) and a month is one twelfth of that; these ratios
// are part of the public contract, not an implementation detail.
const (
	secTicks   = TicksPerSec
	minTicks   = 60 * secTicks
	hourTicks  = 3600 * secTicks
	dayTicks   = 24 * hourTicks
	weekTicks  = 7 * dayTicks
	yearSecs   = 146097 * 24 * 3600 / 400
	monthSecs  = yearSecs / 12
	yearTicks  = yearSecs * secTicks
	monthTicks = monthSecs * secTicks
)

// TimeValue is a duration, possibly infinite.
//
// The zero value is the zero duration. TimeValue is a comparable value
// type: == is exact equality, and the natural ordering is Compare.
type TimeValue struct {
	t int64
}

// FromTicks creates a duration from a raw tick count, clamping into the
// closed sentinel range (math.MinInt64 becomes -oo).
func FromTicks(t int64) TimeValue {
	return TimeValue{max(t, -infiniteTicks)}
}

// FromSecs creates a duration from whole seconds, saturating to the
// infinity sentinels when out of tick range.
func FromSecs(sec int64) TimeValue {
	switch {
	case sec > maxSec:
		return TimeValue{infiniteTicks}
	case sec < -maxSec:
		return TimeValue{-infiniteTicks}
	default:
		return TimeValue{sec << subsecBits}
	}
}

// fromFract converts t units of 1/unit seconds into ticks, splitting whole
// seconds from the fraction so the intermediate shift cannot overflow.
func fromFract(t, unit int64) TimeValue {
	sec := t / unit
	frac := t - sec*unit
	switch {
	case sec > maxSec:
		return TimeValue{infiniteTicks}
	case sec < -maxSec:
		return TimeValue{-infiniteTicks}
	default:
		return TimeValue{(sec << subsecBits) + (frac<<subsecBits)/unit}
	}
}

// FromYears creates a duration of y mean Gregorian years (146097/400 days each).
func FromYears(y int64) TimeValue { return FromSecs(satMul(y, yearSecs)) }

// FromMonths creates a duration of m months, a month being one twelfth of
// a year (just under 30.5 days).
func FromMonths(m int64) TimeValue { return FromSecs(satMul(m, monthSecs)) }

// FromWeeks creates a duration of w weeks of 7 days.
func FromWeeks(w int64) TimeValue { return FromSecs(satMul(w, 7*24*3600)) }

// FromDays creates a duration of d days of 24 hours.
func FromDays(d int64) TimeValue { return FromSecs(satMul(d, 24*3600)) }

// FromHours creates a duration of h hours.
func FromHours(h int64) TimeValue { return FromSecs(satMul(h, 3600)) }

// FromMins creates a duration of m minutes.
func FromMins(m int64) TimeValue { return FromSecs(satMul(m, 60)) }

// FromMillis creates a duration of ms milliseconds, rounded down to the tick.
func FromMillis(ms int64) TimeValue { return fromFract(ms, 1_000) }

// FromMicros creates a duration of us microseconds, rounded down to the tick.
func FromMicros(us int64) TimeValue { return fromFract(us, 1_000_000) }

// FromNanos creates a duration of ns nanoseconds, rounded down to the tick.
func FromNanos(ns int64) TimeValue { return fromFract(ns, 1_000_000_000) }

// Ticks returns the raw tick count.
func (v TimeValue) Ticks() int64 { return v.t }

// Secs returns the whole-second part, rounded toward -oo.
func (v TimeValue) Secs() int64 { return v.t >> subsecBits }

// SubsecNanos returns the fractional part in nanoseconds, in [0, 1e9).
// The fraction is stored in ticks, so the nanosecond view is rounded.
func (v TimeValue) SubsecNanos() int64 {
	return int64(((uint64(v.t&subsecMask)*10_000_000_000 + 5_000_000_000) >> subsecBits) / 10)
}

// SubsecMicros returns the fractional part in microseconds.
func (v TimeValue) SubsecMicros() int64 { return v.SubsecNanos() / 1_000 }

// SubsecMillis returns the fractional part in milliseconds.
func (v TimeValue) SubsecMillis() int64 { return v.SubsecNanos() / 1_000_000 }

// IsZero reports whether the duration is exactly zero.
func (v TimeValue) IsZero() bool { return v.t == 0 }

// IsPositive reports v >= 0.
func (v TimeValue) IsPositive() bool { return v.t >= 0 }

// IsNegative reports v <= 0.
func (v TimeValue) IsNegative() bool { return v.t <= 0 }

// IsStrictlyPositive reports v > 0.
func (v TimeValue) IsStrictlyPositive() bool { return v.t > 0 }

// IsStrictlyNegative reports v < 0.
func (v TimeValue) IsStrictlyNegative() bool { return v.t < 0 }

// Floor rounds down to the nearest multiple of period.
// The period must be strictly positive and finite.
func (v TimeValue) Floor(period TimeValue) TimeValue {
	if v.t >= 0 {
		return TimeValue{(v.t / period.t) * period.t}
	}
	return TimeValue{((v.t+1)/period.t - 1) * period.t}
}

// Ceil rounds up to the nearest multiple of period.
// The period must be strictly positive and finite.
func (v TimeValue) Ceil(period TimeValue) TimeValue {
	if v.t > 0 {
		return TimeValue{((v.t-1)/period.t + 1) * period.t}
	}
	return TimeValue{((v.t - 1) / period.t) * period.t}
}

// Compare returns -1, 0 or +1 as v sorts before, equal to, or after other.
func (v TimeValue) Compare(other TimeValue) int { return cmp.Compare(v.t, other.t) }

// Neg mirrors the duration around zero; sentinels swap.
func (v TimeValue) Neg() TimeValue { return TimeValue{-v.t} }

// JustAfter returns the duration one tick longer (identity on sentinels).
func (v TimeValue) JustAfter() TimeValue {
	if v.IsFinite() {
		return TimeValue{v.t + 1}
	}
	return v
}

// JustBefore returns the duration one tick shorter (identity on sentinels).
func (v TimeValue) JustBefore() TimeValue {
	if v.IsFinite() {
		return TimeValue{v.t - 1}
	}
	return v
}

// IsFinite reports whether v is neither infinity sentinel.
func (v TimeValue) IsFinite() bool { return v.t != infiniteTicks && v.t != -infiniteTicks }

// IsFutureInfinite reports whether v is +oo.
func (v TimeValue) IsFutureInfinite() bool { return v.t == infiniteTicks }

// IsPastInfinite reports whether v is -oo.
func (v TimeValue) IsPastInfinite() bool { return v.t == -infiniteTicks }

// Future returns the +oo duration.
func (TimeValue) Future() TimeValue { return TimeValue{infiniteTicks} }

// Past returns the -oo duration.
func (TimeValue) Past() TimeValue { return TimeValue{-infiniteTicks} }

// Add returns v + d with saturating tick arithmetic: a finite overflow
// lands on the matching sentinel and an infinite operand wins.
// Panics when v and d are opposite infinities; that combination has no
// meaningful result and always indicates a bug in the caller.
func (v TimeValue) Add(d TimeValue) TimeValue {
	switch {
	case v.IsFutureInfinite():
		if d.IsPastInfinite() {
			panic("core: +oo + -oo is undefined")
		}
		return v
	case v.IsPastInfinite():
		if d.IsFutureInfinite() {
			panic("core: -oo + +oo is undefined")
		}
		return v
	case d.IsFinite():
		return satAdd(v.t, d.t)
	default:
		return d
	}
}

// Sub returns v - d; same saturation and panic rules as Add.
func (v TimeValue) Sub(d TimeValue) TimeValue { return v.Add(d.Neg()) }

// Mul scales the duration by an integer factor with saturating tick
// arithmetic; the sentinels absorb any nonzero factor.
func (v TimeValue) Mul(n int64) TimeValue { return FromTicks(satMul(v.t, n)) }

// Div divides the duration by an integer factor, truncating toward zero.
// The divisor must be nonzero.
func (v TimeValue) Div(n int64) TimeValue { return FromTicks(v.t / n) }

// MulFloat scales the duration by a float factor, saturating to the
// sentinels on overflow. Panics on a NaN factor: there is no duration to
// round it to and the caller has a bug.
func (v TimeValue) MulFloat(f float64) TimeValue {
	if f != f {
		panic("core: NaN scale factor")
	}
	t := float64(v.t) * f
	switch {
	case t >= float64(infiniteTicks):
		return TimeValue{infiniteTicks}
	case t <= -float64(infiniteTicks):
		return TimeValue{-infiniteTicks}
	default:
		return FromTicks(int64(t))
	}
}

func satAdd(a, b int64) TimeValue {
	s := a + b
	switch {
	case b > 0 && s < a:
		return TimeValue{infiniteTicks}
	case b < 0 && s > a:
		return TimeValue{-infiniteTicks}
	default:
		return FromTicks(s)
	}
}

func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		if (a < 0) != (b < 0) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return p
}
