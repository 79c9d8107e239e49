package window

import (
	"math"

	"github.com/katalvlaran/tempora/core"
)

// Scaling of duration sets. Only Spans scale: multiplying instants has no
// meaning, durations are the vector space here.
//
// An integer factor n != 0 multiplies all gaps by |n| as well, so pieces
// stay disjoint and no re-merge is needed; a float factor below 1 shrinks
// gaps and may fuse neighbours, so the float path always re-merges.

// ScaleInt returns the set of n*d for every duration d of s.
// Scaling by zero collapses any nonempty set to {0}. A negative factor
// mirrors the set, reversing piece order. Panics when a piece saturates
// entirely past a sentinel.
func ScaleInt(s Spans, n int64) Spans {
	if n == 0 {
		if s.IsEmpty() {
			return s
		}
		return SingletonSet(core.TimeValue{})
	}
	spans := make([]Span, len(s.spans))
	for k, sp := range s.spans {
		scaled := mulSpan(sp, n)
		if n < 0 {
			spans[len(s.spans)-1-k] = scaled
		} else {
			spans[k] = scaled
		}
	}
	return Spans{spans}
}

// ScaleFloat returns the set of f*d for every duration d of s, rounded
// to the tick. A negative factor mirrors the set. The result is
// re-merged: a factor below one shrinks gaps and may fuse neighbours.
// Panics on NaN or ±Inf factors.
func ScaleFloat(s Spans, f float64) Spans {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("window: non-finite scale factor")
	}
	var spans []Span
	if f < 0 {
		for k := len(s.spans) - 1; k >= 0; k-- {
			spans = mergeAppend(spans, mulSpanFloat(s.spans[k], f))
		}
	} else {
		for _, sp := range s.spans {
			spans = mergeAppend(spans, mulSpanFloat(sp, f))
		}
	}
	return Spans{spans}
}

// DivInt returns the set of d/n (truncated to the tick) for every
// duration d of s. The divisor must be nonzero; shrinking may fuse
// neighbours, so the result is re-merged.
func DivInt(s Spans, n int64) Spans {
	if n == 0 {
		panic("window: division by zero")
	}
	var spans []Span
	if n < 0 {
		for k := len(s.spans) - 1; k >= 0; k-- {
			spans = mergeAppend(spans, divSpan(s.spans[k], n))
		}
	} else {
		for _, sp := range s.spans {
			spans = mergeAppend(spans, divSpan(sp, n))
		}
	}
	return Spans{spans}
}

func mulSpan(sp Span, n int64) Span {
	lower, upper := sp.lower.Mul(n), sp.upper.Mul(n)
	if n < 0 {
		lower, upper = upper, lower
	}
	if lower.IsFutureInfinite() || upper.IsPastInfinite() {
		panic("window: interval scaling overflows")
	}
	return Span{lower, upper}
}

func divSpan(sp Span, n int64) Span {
	lower, upper := sp.lower.Div(n), sp.upper.Div(n)
	if n < 0 {
		lower, upper = upper, lower
	}
	return Span{lower, upper}
}

func mulSpanFloat(sp Span, f float64) Span {
	lower, upper := sp.lower.MulFloat(f), sp.upper.MulFloat(f)
	if f < 0 {
		lower, upper = upper, lower
	}
	if lower.IsFutureInfinite() || upper.IsPastInfinite() {
		panic("window: interval scaling overflows")
	}
	return Span{lower, upper}
}
