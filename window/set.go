package window

import (
	"slices"

	"github.com/katalvlaran/tempora/core"
)

// Spans is a set of durations.
type Spans = Set[core.TimeValue]

// Slots is a set of instants.
type Slots = Set[core.Timestamp]

// Set is an arbitrary set of time points, stored as a chronologically
// sorted list of pairwise disjoint intervals with a gap of at least one
// tick between successive pieces. Every constructor and operator
// maintains this canonical form, so equality is a plain slice comparison
// and every operator runs in one ordered pass.
//
// The zero value is the empty set.
type Set[T core.TimePoint[T]] struct {
	spans []Interval[T]
}

// EmptySet returns the empty set.
func EmptySet[T core.TimePoint[T]]() Set[T] { return Set[T]{} }

// AllSet returns the set holding the full interval ]-oo,+oo[.
func AllSet[T core.TimePoint[T]]() Set[T] {
	return Set[T]{[]Interval[T]{All[T]()}}
}

// Convex returns the set holding the single interval [lower,upper]
// (empty when the interval is).
func Convex[T core.TimePoint[T]](lower, upper T) Set[T] {
	return SetOf(New(lower, upper))
}

// SingletonSet returns {t} as a set.
func SingletonSet[T core.TimePoint[T]](t T) Set[T] {
	return SetOf(Singleton(t))
}

// SetOf builds a set from arbitrary intervals: empties are dropped and
// out-of-order or overlapping pieces are merged into canonical form.
func SetOf[T core.TimePoint[T]](intervals ...Interval[T]) Set[T] {
	var r Set[T]
	for _, iv := range intervals {
		if iv.IsEmpty() {
			continue
		}
		// the common case is chronological input with real gaps; fall
		// back to a streamed union when a piece lands out of order
		if n := len(r.spans); n == 0 || r.spans[n-1].upper.JustAfter().Compare(iv.lower) < 0 {
			r.spans = append(r.spans, iv)
		} else {
			r = Collect(Union(r.Seq(), iv.Seq()))
		}
	}
	return r
}

// Intervals returns a copy of the pieces in chronological order.
func (s Set[T]) Intervals() []Interval[T] {
	return slices.Clone(s.spans)
}

// IsEmpty reports whether the set has no point.
func (s Set[T]) IsEmpty() bool { return len(s.spans) == 0 }

// IsConvex reports whether the set is empty or a single interval.
func (s Set[T]) IsConvex() bool { return len(s.spans) <= 1 }

// IsSingleton reports whether the set holds exactly one point.
func (s Set[T]) IsSingleton() bool {
	return len(s.spans) == 1 && s.spans[0].IsSingleton()
}

// ConvexCount returns the number of pieces.
func (s Set[T]) ConvexCount() int { return len(s.spans) }

// Lower returns the smallest point (+oo for the empty set).
func (s Set[T]) Lower() T {
	if len(s.spans) == 0 {
		var z T
		return z.Future()
	}
	return s.spans[0].lower
}

// Upper returns the greatest point (-oo for the empty set).
func (s Set[T]) Upper() T {
	if len(s.spans) == 0 {
		var z T
		return z.Past()
	}
	return s.spans[len(s.spans)-1].upper
}

// IsLowBounded reports whether the set is nonempty and does not reach -oo.
func (s Set[T]) IsLowBounded() bool {
	return len(s.spans) > 0 && s.spans[0].IsLowBounded()
}

// IsUpBounded reports whether the set is nonempty and does not reach +oo.
func (s Set[T]) IsUpBounded() bool {
	return len(s.spans) > 0 && s.spans[len(s.spans)-1].IsUpBounded()
}

// IsBounded reports whether the set is bounded on both sides.
func (s Set[T]) IsBounded() bool { return s.IsLowBounded() && s.IsUpBounded() }

// Envelope returns the convex hull [Lower,Upper] of the set.
func (s Set[T]) Envelope() Interval[T] {
	if len(s.spans) == 0 {
		return Empty[T]()
	}
	return Interval[T]{s.Lower(), s.Upper()}
}

// Equal reports set equality; O(pieces) thanks to the canonical form.
func (s Set[T]) Equal(other Set[T]) bool {
	return slices.Equal(s.spans, other.spans)
}

// Neg mirrors the set around zero: pieces negate and their order reverses.
func (s Set[T]) Neg() Set[T] {
	r := make([]Interval[T], len(s.spans))
	for k, iv := range s.spans {
		r[len(s.spans)-1-k] = iv.Neg()
	}
	return Set[T]{r}
}

// Contains reports whether the point t belongs to the set.
func (s Set[T]) Contains(t T) bool {
	return s.ContainsInterval(Singleton(t))
}

// ContainsInterval reports whether a whole interval belongs to the set.
// A single piece must contain it: pieces are separated by real gaps.
func (s Set[T]) ContainsInterval(iv Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	for _, piece := range s.spans {
		if piece.upper.Compare(iv.lower) < 0 {
			continue
		}
		return piece.ContainsInterval(iv)
	}
	return false
}

// ContainsSet reports whether other is a subset of s.
func (s Set[T]) ContainsSet(other Set[T]) bool {
	for _, iv := range other.spans {
		if !s.ContainsInterval(iv) {
			return false
		}
	}
	return true
}

// OverlapsInterval reports whether the set shares a point with iv.
func (s Set[T]) OverlapsInterval(iv Interval[T]) bool {
	for _, piece := range s.spans {
		if piece.upper.Compare(iv.lower) < 0 {
			continue
		}
		return piece.lower.Compare(iv.upper) <= 0
	}
	return false
}

// Overlaps reports whether the two sets share at least one point.
func (s Set[T]) Overlaps(other Set[T]) bool {
	for _, iv := range other.spans {
		if s.OverlapsInterval(iv) {
			return true
		}
	}
	return false
}

// Union returns s ∪ other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	return Collect(Union(s.Seq(), other.Seq()))
}

// Intersect returns s ∩ other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	return Collect(Intersection(s.Seq(), other.Seq()))
}

// Complement returns the set of every point not in s.
func (s Set[T]) Complement() Set[T] {
	return Collect(Complement(s.Seq()))
}

// Exclude returns s minus other.
func (s Set[T]) Exclude(other Set[T]) Set[T] {
	return Collect(Exclusion(s.Seq(), other.Seq()))
}
