package window

import "github.com/katalvlaran/tempora/core"

// Seq is a resumable stream of intervals in chronological order, pairwise
// disjoint and separated by at least one tick. Next returns ok == false
// once the stream is exhausted; a Seq is fused — after the first
// exhaustion every further call keeps returning ok == false.
//
// The merge machines (Union, Intersection, Complement, Exclusion) consume
// sequences in this form and emit sequences in this form, each in a
// single pass with O(1) state, so arbitrary operator trees stream without
// intermediate allocation.
type Seq[T core.TimePoint[T]] interface {
	Next() (Interval[T], bool)
}

// Seq returns a single-interval sequence (empty when i is empty).
func (i Interval[T]) Seq() Seq[T] { return &intervalSeq[T]{iv: i} }

type intervalSeq[T core.TimePoint[T]] struct {
	iv   Interval[T]
	done bool
}

func (s *intervalSeq[T]) Next() (Interval[T], bool) {
	if s.done || s.iv.IsEmpty() {
		s.done = true
		return Empty[T](), false
	}
	s.done = true
	return s.iv, true
}

// Seq returns a sequence over the set's pieces.
func (s Set[T]) Seq() Seq[T] { return &sliceSeq[T]{spans: s.spans} }

type sliceSeq[T core.TimePoint[T]] struct {
	spans []Interval[T]
	pos   int
}

func (s *sliceSeq[T]) Next() (Interval[T], bool) {
	if s.pos >= len(s.spans) {
		return Empty[T](), false
	}
	iv := s.spans[s.pos]
	s.pos++
	return iv, true
}

// Collect drains a sequence into a canonical Set. Empty pieces are
// skipped and pieces closer than one tick to their predecessor are merged,
// so any chronologically sorted stream collects into well-formed shape.
func Collect[T core.TimePoint[T]](seq Seq[T]) Set[T] {
	var spans []Interval[T]
	for {
		iv, ok := seq.Next()
		if !ok {
			break
		}
		spans = mergeAppend(spans, iv)
	}
	return Set[T]{spans}
}

// mergeAppend adds iv at the end of a sorted piece list, fusing it with
// the last piece when the gap is under one tick.
func mergeAppend[T core.TimePoint[T]](spans []Interval[T], iv Interval[T]) []Interval[T] {
	if iv.IsEmpty() {
		return spans
	}
	if n := len(spans); n > 0 {
		last := &spans[n-1]
		if iv.lower.Compare(last.upper.JustAfter()) <= 0 {
			if last.lower.Compare(iv.lower) > 0 {
				last.lower = iv.lower
			}
			if last.upper.Compare(iv.upper) < 0 {
				last.upper = iv.upper
			}
			return spans
		}
	}
	return append(spans, iv)
}
