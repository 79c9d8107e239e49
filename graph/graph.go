package graph

import (
	"slices"

	"github.com/katalvlaran/tempora/core"
)

// Graph is a simple temporal network over instants 0..Size-1.
//
// Storage is a single flat slice in concentric-square order: the cells of
// instant i occupy indices i²..i²+2i, so growing the network appends new
// cells without moving any existing one, and truncating the slice at n²
// yields exactly the subnetwork over the first n instants.
//
//	cell(i,j) = i²+j     when i >= j
//	cell(i,j) = j(j+2)-i when i <  j
//
// Cell (i,j) holds the tightest lower bound of tj - ti; the upper bound
// of tj - ti is -cell(j,i). Unconstrained cells hold -oo and the diagonal
// holds zero.
//
// The zero value is an empty network, ready to grow.
type Graph struct {
	size int
	data []core.TimeValue
}

// New returns an unconstrained network of size instants: every pairwise
// constraint starts as ]-oo,+oo[.
func New(size int) *Graph {
	g := &Graph{}
	g.Resize(size)
	return g
}

// Size returns the number of instants in the network.
func (g *Graph) Size() int { return g.size }

// Reset clears every constraint, keeping the size.
func (g *Graph) Reset() {
	var noBound core.TimeValue
	for k := range g.data {
		g.data[k] = noBound.Past()
	}
	for i := 0; i < g.size; i++ {
		g.setLower(i, i, core.TimeValue{})
	}
}

// Resize grows or truncates the network to n instants.
//
// Growing adds unconstrained instants and touches no existing bound.
// Truncating drops the highest instants and their constraints, but keeps
// whatever those constraints already propagated onto the survivors.
func (g *Graph) Resize(n int) {
	switch {
	case n < g.size:
		g.data = g.data[:n*n]
	case n > g.size:
		old := len(g.data)
		g.data = slices.Grow(g.data, n*n-old)[:n*n]
		var noBound core.TimeValue
		for k := old; k < n*n; k++ {
			g.data[k] = noBound.Past()
		}
		for i := g.size; i < n; i++ {
			g.setLower(i, i, core.TimeValue{})
		}
	}
	g.size = n
}

// ShrinkToFit drops the trailing instants that carry no constraint at
// all, so a network grown too far contracts back to its useful size.
func (g *Graph) ShrinkToFit() {
	size := 0
	for i := g.size - 1; i >= 0; i-- {
		if g.instantConstrained(i) {
			size = i + 1
			break
		}
	}
	g.Resize(size)
	g.data = slices.Clip(g.data)
}

// instantConstrained reports whether instant i carries any non-trivial
// bound to or from another instant.
func (g *Graph) instantConstrained(i int) bool {
	diag := i*i + i
	for x := i * i; x <= i*i+2*i; x++ {
		if x != diag && !g.data[x].IsPastInfinite() {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the network.
func (g *Graph) Clone() *Graph {
	return &Graph{size: g.size, data: slices.Clone(g.data)}
}

// Equal reports whether the two networks have the same size and exactly
// the same propagated bounds.
func (g *Graph) Equal(other *Graph) bool {
	return g.size == other.size && slices.Equal(g.data, other.data)
}

// cell returns the flat index of (i,j) in the concentric layout.
// Callers must ensure 0 <= i,j < size.
func cell(i, j int) int {
	if i >= j {
		return i*i + j
	}
	return j*(j+2) - i
}

// lower returns the stored lower bound of tj - ti.
// Callers must ensure 0 <= i,j < size.
func (g *Graph) lower(i, j int) core.TimeValue { return g.data[cell(i, j)] }

func (g *Graph) setLower(i, j int, v core.TimeValue) { g.data[cell(i, j)] = v }
