package graph

import (
	"fmt"
	"strings"
)

// String renders the network header, one line per non-trivial propagated
// constraint, and a trailing count:
//
//	[graph with 3 instants]
//	   t1 - t0 in [5s,10s]
//	[with 1 constraints]
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[graph with %d instants]\n", g.size)
	count := 0
	for _, c := range g.Constraints() {
		fmt.Fprintf(&b, "   t%d - t%d in %s\n", c.To, c.From, c.Window)
		count++
	}
	fmt.Fprintf(&b, "[with %d constraints]", count)
	return b.String()
}
