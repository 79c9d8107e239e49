package window_test

import (
	"testing"

	"github.com/katalvlaran/tempora/core"
	"github.com/katalvlaran/tempora/window"
)

func buildSpans(n int, offset, width, stride int64) window.Spans {
	ivs := make([]window.Span, 0, n)
	for k := 0; k < n; k++ {
		lo := offset + int64(k)*stride
		ivs = append(ivs, window.New(core.FromTicks(lo), core.FromTicks(lo+width)))
	}
	return window.SetOf(ivs...)
}

// BenchmarkUnion measures the streamed union of two interleaved
// 1024-piece sets; a single ordered pass, no intermediate sets.
func BenchmarkUnion(b *testing.B) {
	left := buildSpans(1024, 0, 10, 100)
	right := buildSpans(1024, 50, 10, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = left.Union(right)
	}
}

// BenchmarkIntersect measures the streamed intersection of two
// interleaved 1024-piece sets.
func BenchmarkIntersect(b *testing.B) {
	left := buildSpans(1024, 0, 60, 100)
	right := buildSpans(1024, 30, 60, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = left.Intersect(right)
	}
}

// BenchmarkComplement measures the gap machine over a 4096-piece set.
func BenchmarkComplement(b *testing.B) {
	s := buildSpans(4096, 0, 10, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Complement()
	}
}
