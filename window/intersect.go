package window

import "github.com/katalvlaran/tempora/core"

// Intersection streams the intersection of two sorted disjoint sequences.
//
// Four states: init, waiting on either side, done. The pending interval
// (tmp) is always the piece reaching further; the other side is advanced
// until it catches up, emitting every overlap found on the way.
func Intersection[T core.TimePoint[T]](left, right Seq[T]) Seq[T] {
	return &interSeq[T]{left: left, right: right, state: interInit}
}

type interState uint8

const (
	interInit      interState = iota
	interWaitLeft             // left should be read next, tmp pending
	interWaitRight            // right should be read next, tmp pending
	interDone
)

type interSeq[T core.TimePoint[T]] struct {
	left, right Seq[T]
	state       interState
	tmp         Interval[T]
}

func (x *interSeq[T]) Next() (Interval[T], bool) {
	for {
		switch x.state {
		case interInit:
			i, iok := x.left.Next()
			j, jok := x.right.Next()
			switch {
			case !iok || !jok:
				x.state = interDone
				return Empty[T](), false
			case i.upper.Compare(j.lower) < 0:
				// i wholly before j: discard i, j pending
				x.state = interWaitLeft
				x.tmp = j
			case j.upper.Compare(i.lower) < 0:
				x.state = interWaitRight
				x.tmp = i
			case i.upper.Compare(j.upper) <= 0:
				// overlap, j reaches further: emit the overlap, keep j
				x.state = interWaitLeft
				if j.lower.Compare(i.lower) > 0 {
					i.lower = j.lower
				}
				x.tmp = j
				return i, true
			default:
				x.state = interWaitRight
				if i.lower.Compare(j.lower) > 0 {
					j.lower = i.lower
				}
				x.tmp = i
				return j, true
			}

		case interWaitLeft:
			i, ok := x.left.Next()
			switch {
			case !ok:
				x.state = interDone
				return Empty[T](), false
			case i.upper.Compare(x.tmp.lower) < 0:
				// i ends before the pending piece: skip it
			case x.tmp.upper.Compare(i.lower) < 0:
				// pending piece exhausted: i takes its place
				x.state = interWaitRight
				x.tmp = i
			case i.upper.Compare(x.tmp.upper) <= 0:
				// overlap fully inside the pending piece
				if x.tmp.lower.Compare(i.lower) > 0 {
					i.lower = x.tmp.lower
				}
				return i, true
			default:
				// overlap, i reaches further: emit it, i becomes pending
				x.state = interWaitRight
				if x.tmp.lower.Compare(i.lower) < 0 {
					x.tmp.lower = i.lower
				}
				out := x.tmp
				x.tmp = i
				return out, true
			}

		case interWaitRight:
			j, ok := x.right.Next()
			switch {
			case !ok:
				x.state = interDone
				return Empty[T](), false
			case j.upper.Compare(x.tmp.lower) < 0:
			case x.tmp.upper.Compare(j.lower) < 0:
				x.state = interWaitLeft
				x.tmp = j
			case j.upper.Compare(x.tmp.upper) <= 0:
				if x.tmp.lower.Compare(j.lower) > 0 {
					j.lower = x.tmp.lower
				}
				return j, true
			default:
				x.state = interWaitLeft
				if x.tmp.lower.Compare(j.lower) < 0 {
					x.tmp.lower = j.lower
				}
				out := x.tmp
				x.tmp = j
				return out, true
			}

		default:
			return Empty[T](), false
		}
	}
}

// Exclusion streams left minus right: the intersection of left with the
// complement of right.
func Exclusion[T core.TimePoint[T]](left, right Seq[T]) Seq[T] {
	return Intersection(left, Complement(right))
}
