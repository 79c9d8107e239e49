package window

import "github.com/katalvlaran/tempora/core"

// Complement streams the gaps of a sorted disjoint sequence: each emitted
// piece is shrunk by one tick on both sides (the bounds belong to the
// input, not to its complement), with the two open ends handled when the
// input does not reach -oo or +oo.
func Complement[T core.TimePoint[T]](seq Seq[T]) Seq[T] {
	var z T
	return &complSeq[T]{seq: seq, lower: z.Past()}
}

type complSeq[T core.TimePoint[T]] struct {
	seq   Seq[T]
	lower T // lower bound of the next gap; +oo when exhausted
	begun bool
}

func (c *complSeq[T]) Next() (Interval[T], bool) {
	if !c.begun {
		c.begun = true
		// the leading gap ]-oo, first.lower-1] exists unless the input
		// itself starts at -oo
		if iv, ok := c.seq.Next(); ok {
			upper := iv.lower.JustBefore()
			start := c.lower
			c.lower = iv.upper.JustAfter()
			if !upper.IsPastInfinite() {
				return Interval[T]{start, upper}, true
			}
		}
	}
	for {
		iv, ok := c.seq.Next()
		if !ok {
			break
		}
		if c.lower.Compare(iv.lower) < 0 {
			out := Interval[T]{c.lower, iv.lower.JustBefore()}
			c.lower = iv.upper.JustAfter()
			return out, true
		}
		c.lower = iv.upper.JustAfter()
	}
	if c.lower.IsFutureInfinite() {
		return Empty[T](), false
	}
	out := Interval[T]{c.lower, c.lower.Future()}
	c.lower = c.lower.Future()
	return out, true
}
