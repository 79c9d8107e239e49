package graph_test

import (
	"fmt"

	"github.com/katalvlaran/tempora/core"
	"github.com/katalvlaran/tempora/graph"
	"github.com/katalvlaran/tempora/window"
)

// ExampleGraph builds a small temporal network and shows how the closure
// tightens the direct bound t2-t0 from [10s,25s] down to [10s,15s].
func ExampleGraph() {
	g := graph.New(0)
	g.AddConstraint(0, 1, window.New(core.FromSecs(0), core.FromSecs(5)))
	g.AddConstraint(1, 2, window.New(core.FromSecs(7), core.FromSecs(10)))
	g.AddConstraint(0, 2, window.New(core.FromSecs(10), core.FromSecs(25)))

	fmt.Println(g)
	// Output:
	// [graph with 3 instants]
	//    t1 - t0 in [0,5s]
	//    t2 - t0 in [10s,15s]
	//    t2 - t1 in [7s,10s]
	// [with 3 constraints]
}

// ExampleGraph_CompareInstants shows how propagated bounds force an
// ordering between instants that were never directly related.
func ExampleGraph_CompareInstants() {
	g := graph.New(0)
	g.AddLowerBound(0, 1, core.FromSecs(1))
	g.AddLowerBound(1, 2, core.FromSecs(1))

	r, ok := g.CompareInstants(0, 2)
	fmt.Println(r, ok)
	// Output:
	// -1 true
}
