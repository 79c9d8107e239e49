// Package core: the TimePoint capability interface.
package core

// TimePoint is the capability set every time scalar must provide so the
// generic interval/set algebra (package window) can operate on it.
//
// A TimePoint is a totally ordered value with two infinity sentinels.
// The contract every implementation must honour:
//
//   - Compare induces a total order; Neg reverses it and is total
//     (Neg of the past sentinel is the future sentinel, never overflow).
//   - JustAfter/JustBefore step by exactly one tick on finite values and
//     are the identity on the sentinels.
//   - Future/Past return the two sentinels of the concrete type.
//   - Add/Sub translate by a (possibly infinite) duration, saturating at
//     the sentinels; combining opposite infinities panics.
//
// TimeValue and Timestamp are the two implementations. The constraint is
// self-referential (T's methods speak about T) so that operations on a
// Timestamp never silently degrade into bare durations: composition over
// a shared representation, with the type system keeping the two apart.
type TimePoint[T any] interface {
	comparable

	// Compare returns -1, 0 or +1 as the receiver sorts before, equal
	// to, or after other.
	Compare(other T) int

	// Neg mirrors the point around zero. Total: sentinels swap.
	Neg() T

	// JustAfter returns the next representable point (identity on sentinels).
	JustAfter() T
	// JustBefore returns the previous representable point (identity on sentinels).
	JustBefore() T

	// IsFinite reports whether the point is neither sentinel.
	IsFinite() bool
	// IsFutureInfinite reports whether the point is +oo.
	IsFutureInfinite() bool
	// IsPastInfinite reports whether the point is -oo.
	IsPastInfinite() bool

	// Future returns the +oo sentinel of the concrete type.
	Future() T
	// Past returns the -oo sentinel of the concrete type.
	Past() T

	// Add translates the point forward by d, saturating at the sentinels.
	// Panics when the receiver and d are opposite infinities.
	Add(d TimeValue) T
	// Sub translates the point backward by d; Sub(d) == Add(d.Neg()).
	Sub(d TimeValue) T

	// String renders the point (humanized duration or UTC wall-clock text).
	String() string
}
