package window

import "github.com/katalvlaran/tempora/core"

// Union streams the union of two sorted disjoint sequences.
//
// The machine keeps at most one pending interval (tmp) and advances only
// the side the pending piece came from, so each input is consumed exactly
// once. Pieces separated by less than one tick are fused: the output
// satisfies the same non-adjacency invariant as the inputs.
func Union[T core.TimePoint[T]](left, right Seq[T]) Seq[T] {
	return &unionSeq[T]{left: left, right: right, state: unionInit}
}

type unionState uint8

const (
	unionInit      unionState = iota // nothing read yet
	unionWaitLeft                    // left should be read next, tmp pending
	unionWaitRight                   // right should be read next, tmp pending
	unionOnlyLeft                    // right exhausted, stream left through
	unionOnlyRight                   // left exhausted, stream right through
	unionDone
)

type unionSeq[T core.TimePoint[T]] struct {
	left, right Seq[T]
	state       unionState
	tmp         Interval[T]
}

func (u *unionSeq[T]) Next() (Interval[T], bool) {
	for {
		switch u.state {
		case unionInit:
			i, iok := u.left.Next()
			j, jok := u.right.Next()
			switch {
			case !iok && !jok:
				u.state = unionDone
				return Empty[T](), false
			case !jok:
				u.state = unionOnlyLeft
				return i, true
			case !iok:
				u.state = unionOnlyRight
				return j, true
			case i.upper.Compare(j.lower.JustBefore()) < 0:
				// i:   [----]
				// j:           [----]
				u.state = unionWaitLeft
				u.tmp = j
				return i, true
			case j.upper.Compare(i.lower.JustBefore()) < 0:
				// i:           [----]
				// j:   [----]
				u.state = unionWaitRight
				u.tmp = i
				return j, true
			case i.upper.Compare(j.upper) <= 0:
				// overlap or touch, j reaches further
				u.state = unionWaitLeft
				u.tmp = Interval[T]{minPoint(i.lower, j.lower), j.upper}
			default:
				// overlap or touch, i reaches further
				u.state = unionWaitRight
				u.tmp = Interval[T]{minPoint(i.lower, j.lower), i.upper}
			}

		case unionWaitLeft:
			i, ok := u.left.Next()
			switch {
			case !ok:
				u.state = unionOnlyRight
				return u.tmp, true
			case i.upper.Compare(u.tmp.lower.JustBefore()) < 0:
				// i wholly before the pending piece
				return i, true
			case u.tmp.upper.Compare(i.lower.JustBefore()) < 0:
				// pending piece wholly before i: emit it, i becomes pending
				u.state = unionWaitRight
				out := u.tmp
				u.tmp = i
				return out, true
			case i.upper.Compare(u.tmp.upper) <= 0:
				// absorbed; may still extend the pending lower bound
				u.tmp.lower = minPoint(u.tmp.lower, i.lower)
			default:
				// i extends the pending piece upward
				u.state = unionWaitRight
				u.tmp.lower = minPoint(u.tmp.lower, i.lower)
				u.tmp.upper = i.upper
			}

		case unionWaitRight:
			j, ok := u.right.Next()
			switch {
			case !ok:
				u.state = unionOnlyLeft
				return u.tmp, true
			case j.upper.Compare(u.tmp.lower.JustBefore()) < 0:
				return j, true
			case u.tmp.upper.Compare(j.lower.JustBefore()) < 0:
				u.state = unionWaitLeft
				out := u.tmp
				u.tmp = j
				return out, true
			case j.upper.Compare(u.tmp.upper) <= 0:
				u.tmp.lower = minPoint(u.tmp.lower, j.lower)
			default:
				u.state = unionWaitLeft
				u.tmp.lower = minPoint(u.tmp.lower, j.lower)
				u.tmp.upper = j.upper
			}

		case unionOnlyLeft:
			return u.left.Next()

		case unionOnlyRight:
			return u.right.Next()

		default:
			return Empty[T](), false
		}
	}
}

func minPoint[T core.TimePoint[T]](a, b T) T {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}
