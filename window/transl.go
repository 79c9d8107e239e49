package window

import "github.com/katalvlaran/tempora/core"

// Translation of sets. Shifting by a constant preserves order and the
// gaps between pieces, so the structure survives as-is except where the
// saturating arithmetic squashes pieces onto a sentinel; those collapse
// into their neighbours, which the collector handles.

// Translate shifts every point of the set by d.
func (s Set[T]) Translate(d core.TimeValue) Set[T] {
	var spans []Interval[T]
	for _, iv := range s.spans {
		spans = mergeAppend(spans, iv.Translate(d))
	}
	return Set[T]{spans}
}

// TranslateBy is the Minkowski sum with a span: every point of s shifted
// by every duration of sp. Widening each piece may close gaps, so the
// result is re-merged.
func (s Set[T]) TranslateBy(sp Span) Set[T] {
	var spans []Interval[T]
	for _, iv := range s.spans {
		spans = mergeAppend(spans, iv.TranslateBy(sp))
	}
	return Set[T]{spans}
}

// TranslateBySet is the Minkowski sum with a whole duration set: the
// union of s translated by each piece of spans.
func (s Set[T]) TranslateBySet(spans Spans) Set[T] {
	r := EmptySet[T]()
	for _, sp := range spans.spans {
		r = r.Union(s.TranslateBy(sp))
	}
	return r
}
