package graph

import (
	"github.com/katalvlaran/tempora/core"
	"github.com/katalvlaran/tempora/window"
)

// Constraint is one pairwise bound of the network: To - From lies in
// Window. It is both what callers insert and what the enumeration
// methods hand back.
type Constraint struct {
	From, To int
	Window   window.Span
}

// Constraint returns the tightest propagated bound on tj - ti, as the
// convex span [lower(i,j), -lower(j,i)]. Instants outside the network
// are unconstrained, so any out-of-range index answers ]-oo,+oo[.
func (g *Graph) Constraint(i, j int) window.Span {
	if i < 0 || j < 0 || i >= g.size || j >= g.size {
		return window.All[core.TimeValue]()
	}
	return window.New(g.lower(i, j), g.lower(j, i).Neg())
}

// Constraints enumerates every non-trivial propagated constraint, one
// per unordered instant pair, with From < To.
func (g *Graph) Constraints() []Constraint {
	var out []Constraint
	for i := 0; i < g.size; i++ {
		for j := i + 1; j < g.size; j++ {
			if k := g.Constraint(i, j); k != window.All[core.TimeValue]() {
				out = append(out, Constraint{From: i, To: j, Window: k})
			}
		}
	}
	return out
}

// ConstraintsFrom enumerates the non-trivial propagated constraints
// leaving instant i.
func (g *Graph) ConstraintsFrom(i int) []Constraint {
	var out []Constraint
	for j := 0; j < g.size; j++ {
		if j == i {
			continue
		}
		if k := g.Constraint(i, j); k != window.All[core.TimeValue]() {
			out = append(out, Constraint{From: i, To: j, Window: k})
		}
	}
	return out
}

// CompareInstants orders two instants when the network forces an order:
// -1 when ti is necessarily before tj, +1 for the mirror case, 0 when
// they necessarily coincide. ok is false when the network leaves them
// unordered or an index is out of range.
func (g *Graph) CompareInstants(i, j int) (r int, ok bool) {
	if i < 0 || j < 0 || i >= g.size || j >= g.size {
		return 0, false
	}
	ij, ji := g.lower(i, j), g.lower(j, i)
	switch {
	case ij.IsStrictlyPositive():
		return -1, true
	case ji.IsStrictlyPositive():
		return 1, true
	case ij.IsZero() && ji.IsZero():
		return 0, true
	default:
		return 0, false
	}
}

// Distinct reports whether two instants can never coincide: their
// difference is bounded strictly away from zero.
func (g *Graph) Distinct(i, j int) bool {
	k := g.Constraint(i, j)
	return k.Lower().IsStrictlyPositive() || k.Upper().IsStrictlyNegative()
}
