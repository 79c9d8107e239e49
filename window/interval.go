package window

import "github.com/katalvlaran/tempora/core"

// Span is a convex interval of durations.
type Span = Interval[core.TimeValue]

// Slot is a convex interval of instants.
type Slot = Interval[core.Timestamp]

// Interval is a closed convex interval [lower,upper] over a time point.
//
// Since time is discrete, open intervals need no representation of their
// own: ]a,b[ is exactly [a+1 tick, b-1 tick]. The empty interval has the
// single canonical encoding {lower:+oo, upper:-oo}, so == is exact
// set equality for every pair of intervals.
type Interval[T core.TimePoint[T]] struct {
	lower, upper T
}

// New returns the interval [lower,upper]. It is empty when lower > upper
// or when a bound carries the wrong sentinel (lower = +oo or upper = -oo).
func New[T core.TimePoint[T]](lower, upper T) Interval[T] {
	if lower.Compare(upper) <= 0 && !lower.IsFutureInfinite() && !upper.IsPastInfinite() {
		return Interval[T]{lower, upper}
	}
	return Empty[T]()
}

// Empty returns the canonical empty interval.
func Empty[T core.TimePoint[T]]() Interval[T] {
	var z T
	return Interval[T]{z.Future(), z.Past()}
}

// Singleton returns {t}, or the empty interval when t is a sentinel.
func Singleton[T core.TimePoint[T]](t T) Interval[T] {
	if t.IsFinite() {
		return Interval[T]{t, t}
	}
	return Empty[T]()
}

// After returns [t,+oo[, or the empty interval when t is +oo.
func After[T core.TimePoint[T]](t T) Interval[T] {
	if t.IsFutureInfinite() {
		return Empty[T]()
	}
	return Interval[T]{t, t.Future()}
}

// Before returns ]-oo,t], or the empty interval when t is -oo.
func Before[T core.TimePoint[T]](t T) Interval[T] {
	if t.IsPastInfinite() {
		return Empty[T]()
	}
	return Interval[T]{t.Past(), t}
}

// All returns the full interval ]-oo,+oo[.
func All[T core.TimePoint[T]]() Interval[T] {
	var z T
	return Interval[T]{z.Past(), z.Future()}
}

// Centered returns [origin-delta, origin+delta]. A negative delta
// legitimately yields the empty interval, not an error.
func Centered[T core.TimePoint[T]](origin T, delta core.TimeValue) Interval[T] {
	return New(origin.Sub(delta), origin.Add(delta))
}

// Lower returns the lower bound (+oo for the empty interval).
func (i Interval[T]) Lower() T { return i.lower }

// Upper returns the upper bound (-oo for the empty interval).
func (i Interval[T]) Upper() T { return i.upper }

// IsEmpty reports whether the interval is empty. O(1) thanks to the
// canonical encoding: only the empty interval has lower = +oo.
func (i Interval[T]) IsEmpty() bool { return i.lower.IsFutureInfinite() }

// IsSingleton reports whether the interval holds exactly one point.
func (i Interval[T]) IsSingleton() bool { return i.lower == i.upper }

// IsLowBounded reports whether the lower bound is finite-or-empty
// (i.e. not -oo).
func (i Interval[T]) IsLowBounded() bool { return !i.lower.IsPastInfinite() }

// IsUpBounded reports whether the upper bound is not +oo.
func (i Interval[T]) IsUpBounded() bool { return !i.upper.IsFutureInfinite() }

// IsBounded reports whether both bounds are bounded.
func (i Interval[T]) IsBounded() bool { return i.IsLowBounded() && i.IsUpBounded() }

// Neg mirrors the interval around zero: -[a,b] = [-b,-a]. The empty
// interval is a fixed point (its sentinels swap back into place).
func (i Interval[T]) Neg() Interval[T] {
	return Interval[T]{i.upper.Neg(), i.lower.Neg()}
}

// Enlarge widens the interval by delta on both sides. A negative delta
// shrinks it and may legitimately empty it.
func (i Interval[T]) Enlarge(delta core.TimeValue) Interval[T] {
	if i.IsEmpty() {
		return i
	}
	return New(i.lower.Sub(delta), i.upper.Add(delta))
}

// Compare orders two intervals when an order exists: -1 when i ends
// strictly before other starts, +1 for the mirror case, 0 when equal.
// ok is false when the intervals overlap without being equal, which is
// the incomparable case.
func (i Interval[T]) Compare(other Interval[T]) (r int, ok bool) {
	switch {
	case i.upper.Compare(other.lower) < 0:
		return -1, true
	case other.upper.Compare(i.lower) < 0:
		return 1, true
	case i == other:
		return 0, true
	default:
		return 0, false
	}
}

// Contains reports whether the point t lies in the interval.
func (i Interval[T]) Contains(t T) bool {
	return i.lower.Compare(t) <= 0 && t.Compare(i.upper) <= 0
}

// ContainsInterval reports whether other is a subset of i.
// Every interval contains the empty interval.
func (i Interval[T]) ContainsInterval(other Interval[T]) bool {
	if other.IsEmpty() {
		return true
	}
	return i.lower.Compare(other.lower) <= 0 && other.upper.Compare(i.upper) <= 0
}

// Overlaps reports whether the two intervals share at least one point.
func (i Interval[T]) Overlaps(other Interval[T]) bool {
	return i.lower.Compare(other.upper) <= 0 && other.lower.Compare(i.upper) <= 0
}

// Intersect returns the convex intersection of two intervals.
func (i Interval[T]) Intersect(other Interval[T]) Interval[T] {
	lower := i.lower
	if other.lower.Compare(lower) > 0 {
		lower = other.lower
	}
	upper := i.upper
	if other.upper.Compare(upper) < 0 {
		upper = other.upper
	}
	return New(lower, upper)
}

// Hull returns the smallest interval containing both operands.
func (i Interval[T]) Hull(other Interval[T]) Interval[T] {
	if i.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return i
	}
	lower := i.lower
	if other.lower.Compare(lower) < 0 {
		lower = other.lower
	}
	upper := i.upper
	if other.upper.Compare(upper) > 0 {
		upper = other.upper
	}
	return Interval[T]{lower, upper}
}

// TruncateBefore drops every point before lower; changed reports whether
// anything was removed.
func (i Interval[T]) TruncateBefore(lower T) (_ Interval[T], changed bool) {
	if lower.Compare(i.lower) <= 0 {
		return i, false
	}
	if i.upper.Compare(lower) < 0 {
		return Empty[T](), true
	}
	return Interval[T]{lower, i.upper}, true
}

// TruncateAfter drops every point after upper; changed reports whether
// anything was removed.
func (i Interval[T]) TruncateAfter(upper T) (_ Interval[T], changed bool) {
	if i.upper.Compare(upper) <= 0 {
		return i, false
	}
	if upper.Compare(i.lower) < 0 {
		return Empty[T](), true
	}
	return Interval[T]{i.lower, upper}, true
}

// Translate shifts both bounds by d with saturating arithmetic. When the
// whole interval saturates onto a single sentinel the result is empty.
func (i Interval[T]) Translate(d core.TimeValue) Interval[T] {
	if i.IsEmpty() {
		return i
	}
	return New(i.lower.Add(d), i.upper.Add(d))
}

// TranslateBy is the Minkowski sum with a span: every point of i shifted
// by every duration of s. Empty when either operand is empty.
func (i Interval[T]) TranslateBy(s Span) Interval[T] {
	if i.IsEmpty() || s.IsEmpty() {
		return Empty[T]()
	}
	return New(i.lower.Add(s.lower), i.upper.Add(s.upper))
}

// Duration returns the length of a slot, zero when empty or a singleton.
func Duration(s Slot) core.TimeValue {
	if s.upper.Compare(s.lower) <= 0 {
		return core.TimeValue{}
	}
	return s.upper.Since(s.lower)
}
