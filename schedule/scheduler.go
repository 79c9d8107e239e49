package schedule

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/tempora/core"
	"github.com/katalvlaran/tempora/graph"
	"github.com/katalvlaran/tempora/window"
)

// Scheduler maintains one admissible timestamp set per instant of a
// constraint network. Entries start unconstrained and shrink
// monotonically as restrictions are applied and propagated.
type Scheduler struct {
	constraints *graph.Graph
	schedule    []window.Slots
}

// New returns a scheduler over the network, one ]-oo,+oo[ entry per
// instant. The graph is borrowed, never mutated.
func New(g *graph.Graph) *Scheduler {
	schedule := make([]window.Slots, g.Size())
	for i := range schedule {
		schedule[i] = window.AllSet[core.Timestamp]()
	}
	return &Scheduler{constraints: g, schedule: schedule}
}

// Constraints returns the borrowed network.
func (s *Scheduler) Constraints() *graph.Graph { return s.constraints }

// Scheduling returns the admissible set of instant i. An out-of-range
// instant is unconstrained, mirroring Graph.Constraint.
func (s *Scheduler) Scheduling(i int) window.Slots {
	if i < 0 || i >= len(s.schedule) {
		return window.AllSet[core.Timestamp]()
	}
	return s.schedule[i]
}

// Schedule returns a copy of all admissible sets, indexed by instant.
func (s *Scheduler) Schedule() []window.Slots { return slices.Clone(s.schedule) }

// Clone returns an independent scheduler sharing the same network.
func (s *Scheduler) Clone() *Scheduler {
	return &Scheduler{constraints: s.constraints, schedule: slices.Clone(s.schedule)}
}

// LatestBeginning returns the smallest upper bound across all entries:
// the moment by which every instant must have been scheduled at the
// latest. +oo when the scheduler has no instant.
func (s *Scheduler) LatestBeginning() core.Timestamp {
	var z core.Timestamp
	m := z.Future()
	for _, entry := range s.schedule {
		if u := entry.Upper(); u.Compare(m) < 0 {
			m = u
		}
	}
	return m
}

// EarliestEnding returns the largest lower bound across all entries:
// no schedule can have every instant placed before it. -oo when the
// scheduler has no instant.
func (s *Scheduler) EarliestEnding() core.Timestamp {
	var z core.Timestamp
	m := z.Past()
	for _, entry := range s.schedule {
		if l := entry.Lower(); l.Compare(m) > 0 {
			m = l
		}
	}
	return m
}

// Retain keeps only the timestamps of w as possible values for instant
// i, then propagates the restriction across the network to a fixpoint.
//
// Unchanged when the entry is already inside w; ErrInconsistency, with
// the scheduler untouched, when the entry and w share no timestamp.
func (s *Scheduler) Retain(i int, w window.Slots) (graph.Propagation, error) {
	if i < 0 || i >= len(s.schedule) {
		return graph.Unchanged, graph.ErrBadInstant
	}
	entry := s.schedule[i]
	if w.ContainsSet(entry) {
		return graph.Unchanged, nil
	}
	if !w.Overlaps(entry) {
		return graph.Unchanged, graph.ErrInconsistency
	}
	s.schedule[i] = entry.Intersect(w)
	s.propagateScheduling(i)
	return graph.Propagated, nil
}

// Remove excludes the timestamps of w from instant i; the complement of
// a restriction is just another restriction.
func (s *Scheduler) Remove(i int, w window.Slots) (graph.Propagation, error) {
	return s.Retain(i, w.Complement())
}

// SetDeadline restricts every instant to happen at or before t.
//
// Feasibility is checked up front across all entries; an instant that
// already starts after t rejects the whole deadline with
// ErrInconsistency and no mutation.
func (s *Scheduler) SetDeadline(t core.Timestamp) (graph.Propagation, error) {
	for _, entry := range s.schedule {
		if entry.Lower().Compare(t) > 0 {
			return graph.Unchanged, graph.ErrInconsistency
		}
	}
	return s.retainAll(window.SetOf(window.Before(t)))
}

// SetStartline restricts every instant to happen at or after t, with
// the mirrored feasibility pre-check.
func (s *Scheduler) SetStartline(t core.Timestamp) (graph.Propagation, error) {
	for _, entry := range s.schedule {
		if entry.Upper().Compare(t) < 0 {
			return graph.Unchanged, graph.ErrInconsistency
		}
	}
	return s.retainAll(window.SetOf(window.After(t)))
}

// retainAll folds Retain over every instant, reporting Propagated when
// any entry shrank. The per-entry pre-checks of the callers make a
// rejection unlikely but propagation between entries can still starve a
// later one; the snapshot keeps the whole fold atomic in that case.
func (s *Scheduler) retainAll(w window.Slots) (graph.Propagation, error) {
	snapshot := slices.Clone(s.schedule)
	result := graph.Unchanged
	for i := range s.schedule {
		p, err := s.Retain(i, w)
		if err != nil {
			s.schedule = snapshot
			return graph.Unchanged, err
		}
		if p == graph.Propagated {
			result = graph.Propagated
		}
	}
	return result, nil
}

// propagateScheduling drives the restriction of instant i to a global
// fixpoint: along every non-trivial edge (i,j) the target entry is cut
// down to timestamps reachable from the source one, and any entry that
// shrinks is requeued for its own outgoing edges.
func (s *Scheduler) propagateScheduling(i int) {
	queued := make([]bool, len(s.schedule))
	work := []int{i}
	queued[i] = true
	for len(work) > 0 {
		from := work[0]
		work, queued[from] = work[1:], false
		for _, k := range s.constraints.ConstraintsFrom(from) {
			j := k.To
			if j >= len(s.schedule) {
				continue
			}
			reachable := s.schedule[from].TranslateBy(k.Window)
			next := s.schedule[j].Intersect(reachable)
			if next.Equal(s.schedule[j]) {
				continue
			}
			s.schedule[j] = next
			if !queued[j] {
				work = append(work, j)
				queued[j] = true
			}
		}
	}
}

// String renders one line per instant, "ti in <set>", using the window
// rendering grammar.
func (s *Scheduler) String() string {
	var b strings.Builder
	for i, entry := range s.schedule {
		fmt.Fprintf(&b, "t%d in %s\n", i, entry)
	}
	return b.String()
}
