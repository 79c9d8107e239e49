package graph

import (
	"github.com/katalvlaran/tempora/core"
	"github.com/katalvlaran/tempora/window"
)

// compose is (max,+) path composition of two lower bounds. -oo is the
// annihilator: a path through an unconstrained edge bounds nothing.
func compose(a, b core.TimeValue) core.TimeValue {
	if a.IsPastInfinite() || b.IsPastInfinite() {
		return a.Past()
	}
	return a.Add(b)
}

// AddConstraint inserts the constraint tj - ti in k, tightening the
// network as needed.
//
// Four outcomes: the constraint is already implied (Unchanged, nil); at
// least one bound tightens and the matrix is re-closed incrementally in
// O(n²) (Propagated, nil); the constraint contradicts the network
// (Unchanged, ErrInconsistency — the graph is untouched and the
// rejection is safe to retry); an index is negative (Unchanged,
// ErrBadInstant). An index beyond the current size grows the network
// first; the fresh instants are unconstrained, so growth alone cannot
// introduce an inconsistency and the new bound then propagates through
// the usual incremental pass.
func (g *Graph) AddConstraint(i, j int, k window.Span) (Propagation, error) {
	if i < 0 || j < 0 {
		return Unchanged, ErrBadInstant
	}
	if k.IsEmpty() {
		return Unchanged, ErrInconsistency
	}
	if i == j {
		// ti - ti is identically zero, so the only question is whether
		// the window allows it.
		if k.Contains(core.TimeValue{}) {
			return Unchanged, nil
		}
		return Unchanged, ErrInconsistency
	}
	grew := false
	if n := max(i, j) + 1; n > g.size {
		g.Resize(n)
		grew = true
	}

	if k.Lower().Compare(g.lower(i, j)) <= 0 {
		// The lower bound is already implied.
		switch {
		case k.Upper().Neg().Compare(g.lower(j, i)) <= 0:
			if grew {
				return Propagated, nil
			}
			return Unchanged, nil
		case g.lower(i, j).Compare(k.Upper()) > 0:
			// The requested upper bound contradicts the derived lower one.
			return Unchanged, ErrInconsistency
		default:
			g.setLower(j, i, k.Upper().Neg())
			g.propagateLowerBound(j, i)
			return Propagated, nil
		}
	}
	// The lower bound tightens.
	if g.lower(j, i).Compare(k.Lower().Neg()) > 0 {
		return Unchanged, ErrInconsistency
	}
	g.setLower(i, j, k.Lower())
	g.propagateLowerBound(i, j)
	if g.lower(j, i).Compare(k.Upper().Neg()) < 0 {
		g.setLower(j, i, k.Upper().Neg())
		g.propagateLowerBound(j, i)
	}
	return Propagated, nil
}

// AddLowerBound inserts tj - ti >= v.
func (g *Graph) AddLowerBound(i, j int, v core.TimeValue) (Propagation, error) {
	return g.AddConstraint(i, j, window.After(v))
}

// AddUpperBound inserts tj - ti <= v.
func (g *Graph) AddUpperBound(i, j int, v core.TimeValue) (Propagation, error) {
	return g.AddConstraint(i, j, window.Before(v))
}

// propagateLowerBound re-closes the matrix after the single cell
// (i0,j0) was tightened.
//
// Precondition: the matrix was path-consistent before that one cell
// changed. Running this on an already-inconsistent matrix derives
// garbage, which is why every tightening path funnels through
// AddConstraint's feasibility checks first.
//
// Two passes, O(n²) total. First every path ending at j0 through i0:
//
//	lower(i,j0) = max(lower(i,j0), lower(i,i0)+lower(i0,j0))
//
// then every path through j0:
//
//	lower(j,i) = max(lower(j,i), lower(j,j0)+lower(j0,i))
func (g *Graph) propagateLowerBound(i0, j0 int) {
	through := g.lower(i0, j0)
	for i := 0; i < g.size; i++ {
		if v := compose(g.lower(i, i0), through); v.Compare(g.lower(i, j0)) > 0 {
			g.setLower(i, j0, v)
		}
	}
	for j := 0; j < g.size; j++ {
		viaJ0 := g.lower(j, j0)
		for i := 0; i < g.size; i++ {
			if v := compose(viaJ0, g.lower(j0, i)); v.Compare(g.lower(j, i)) > 0 {
				g.setLower(j, i, v)
			}
		}
	}
}

// propagateAll runs the full Floyd–Warshall (max,+) closure in O(n³).
//
// A strictly positive diagonal cell after a pivot row proves a negative
// cycle: the batch that got us here is unsatisfiable, and since part of
// it is already applied there is nothing to roll back to. The network is
// emptied and ErrFatalInconsistency returned.
func (g *Graph) propagateAll() error {
	for k := 0; k < g.size; k++ {
		for i := 0; i < g.size; i++ {
			for j := 0; j < g.size; j++ {
				if v := compose(g.lower(i, k), g.lower(k, j)); v.Compare(g.lower(i, j)) > 0 {
					g.setLower(i, j, v)
				}
			}
			if g.lower(i, i).IsStrictlyPositive() {
				g.Resize(0)
				return ErrFatalInconsistency
			}
		}
	}
	return nil
}

// Extend inserts a batch of constraints in one shot: every bound is
// written with a raw pointwise max, then the whole matrix is re-closed
// globally.
//
// An inconsistent batch is fatal: the graph is emptied and
// ErrFatalInconsistency returned. Clone first when atomicity matters.
// A batch of one degenerates to AddConstraint and keeps its recoverable
// semantics.
func (g *Graph) Extend(cs []Constraint) (Propagation, error) {
	switch len(cs) {
	case 0:
		return Unchanged, nil
	case 1:
		return g.AddConstraint(cs[0].From, cs[0].To, cs[0].Window)
	}
	for _, c := range cs {
		if c.From < 0 || c.To < 0 {
			return Unchanged, ErrBadInstant
		}
		if c.Window.IsEmpty() {
			return Unchanged, ErrInconsistency
		}
	}
	for _, c := range cs {
		if n := max(c.From, c.To) + 1; n > g.size {
			g.Resize(n)
		}
		if c.Window.Lower().Compare(g.lower(c.From, c.To)) > 0 {
			g.setLower(c.From, c.To, c.Window.Lower())
		}
		if upper := c.Window.Upper().Neg(); upper.Compare(g.lower(c.To, c.From)) > 0 {
			g.setLower(c.To, c.From, upper)
		}
	}
	if err := g.propagateAll(); err != nil {
		return Unchanged, err
	}
	return Propagated, nil
}

// Merge folds another network into this one: the receiver grows to the
// larger size, takes the pointwise max of the two matrices and re-closes
// globally. The other network is never mutated.
//
// Like Extend, an inconsistent merge is fatal for the receiver.
func (g *Graph) Merge(other *Graph) (Propagation, error) {
	grown := other.size > g.size
	if grown {
		g.Resize(other.size)
	}
	// The concentric layout makes the flat prefix of the larger matrix
	// line up cell for cell with the smaller one.
	changed := false
	for x, b := range other.data {
		if g.data[x].Compare(b) < 0 {
			g.data[x] = b
			changed = true
		}
	}
	switch {
	case changed:
		if err := g.propagateAll(); err != nil {
			return Unchanged, err
		}
		return Propagated, nil
	case grown:
		return Propagated, nil
	default:
		return Unchanged, nil
	}
}
