package window_test

import (
	"testing"

	"github.com/katalvlaran/tempora/core"
	"github.com/katalvlaran/tempora/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(a, b int64) window.Span {
	return window.New(core.FromTicks(a), core.FromTicks(b))
}

// TestSet_Constructors checks canonical construction from arbitrary input:
// empties dropped, overlaps merged, order restored.
func TestSet_Constructors(t *testing.T) {
	assert.True(t, window.EmptySet[core.TimeValue]().IsEmpty())
	assert.True(t, window.SetOf[core.TimeValue]().IsEmpty())

	all := window.AllSet[core.TimeValue]()
	assert.True(t, all.IsConvex())
	assert.False(t, all.IsBounded())

	s := window.SetOf(span(1, 3), span(10, 12))
	assert.Equal(t, 2, s.ConvexCount())
	assert.Equal(t, core.FromSecs(1), s.Lower())
	assert.Equal(t, core.FromSecs(12), s.Upper())

	merged := window.SetOf(span(1, 5), span(3, 8))
	require.Equal(t, 1, merged.ConvexCount(), "overlapping input merges")
	assert.Equal(t, span(1, 8), merged.Intervals()[0])

	reordered := window.SetOf(span(10, 12), span(1, 3))
	assert.True(t, reordered.Equal(window.SetOf(span(1, 3), span(10, 12))), "out-of-order input is sorted")

	withEmpty := window.SetOf(span(1, 3), window.Empty[core.TimeValue]())
	assert.Equal(t, 1, withEmpty.ConvexCount())

	assert.True(t, window.Convex(core.FromSecs(5), core.FromSecs(3)).IsEmpty())
	assert.True(t, window.SingletonSet(core.FromSecs(4)).IsSingleton())
}

// TestSet_AdjacentPiecesMerge pins the non-adjacency invariant: pieces
// separated by less than one tick fuse, a one-tick gap keeps them apart.
func TestSet_AdjacentPiecesMerge(t *testing.T) {
	touching := window.SetOf(tick(1, 4), tick(5, 8))
	require.Equal(t, 1, touching.ConvexCount(), "[1,4] and [5,8] cover [1,8] in discrete time")
	assert.Equal(t, tick(1, 8), touching.Intervals()[0])

	gapped := window.SetOf(tick(1, 4), tick(6, 8))
	assert.Equal(t, 2, gapped.ConvexCount(), "the point {5} separates them")
}

// TestSet_BoundsAndEnvelope checks bound accessors and their empty-set
// conventions.
func TestSet_BoundsAndEnvelope(t *testing.T) {
	var zero core.TimeValue
	empty := window.EmptySet[core.TimeValue]()
	assert.Equal(t, zero.Future(), empty.Lower(), "empty set: lower is +oo")
	assert.Equal(t, zero.Past(), empty.Upper(), "empty set: upper is -oo")
	assert.False(t, empty.IsLowBounded())
	assert.True(t, empty.Envelope().IsEmpty())

	s := window.SetOf(span(1, 3), span(10, 12))
	assert.Equal(t, span(1, 12), s.Envelope())
	assert.True(t, s.IsBounded())
}

// TestSet_Contains covers point, interval and subset containment over gaps.
func TestSet_Contains(t *testing.T) {
	s := window.SetOf(span(1, 3), span(10, 12))

	assert.True(t, s.Contains(core.FromSecs(2)))
	assert.False(t, s.Contains(core.FromSecs(5)))
	assert.True(t, s.ContainsInterval(span(10, 12)))
	assert.False(t, s.ContainsInterval(span(2, 11)), "straddles the gap")
	assert.True(t, s.ContainsSet(window.SetOf(span(1, 2), span(11, 12))))
	assert.False(t, s.ContainsSet(window.SetOf(span(1, 2), span(5, 6))))
	assert.True(t, s.ContainsSet(window.EmptySet[core.TimeValue]()))
}

// TestSet_Overlaps covers overlap detection across pieces.
func TestSet_Overlaps(t *testing.T) {
	s := window.SetOf(span(1, 3), span(10, 12))

	assert.True(t, s.OverlapsInterval(span(3, 5)))
	assert.False(t, s.OverlapsInterval(span(4, 9)))
	assert.True(t, s.Overlaps(window.SetOf(span(5, 10))))
	assert.False(t, s.Overlaps(window.SetOf(span(4, 9))))
	assert.False(t, s.Overlaps(window.EmptySet[core.TimeValue]()))
}

// TestSet_Neg checks that negation mirrors pieces and reverses order,
// preserving canonical form.
func TestSet_Neg(t *testing.T) {
	s := window.SetOf(span(1, 3), span(10, 12))
	neg := s.Neg()
	assert.True(t, neg.Equal(window.SetOf(span(-12, -10), span(-3, -1))))
	assert.True(t, neg.Neg().Equal(s))
}

// TestSet_Equal checks canonical equality.
func TestSet_Equal(t *testing.T) {
	a := window.SetOf(span(1, 5))
	b := window.SetOf(span(1, 3), span(4, 5))
	assert.True(t, a.Equal(window.SetOf(span(1, 2), span(2, 5))))
	assert.False(t, a.Equal(b), "a full second gap keeps pieces apart")
	assert.False(t, a.Equal(window.EmptySet[core.TimeValue]()))
}
