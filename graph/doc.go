// Package graph implements a simple temporal network: a set of instants
// t0..tn-1 linked by pairwise duration constraints "tj - ti in [a,b]".
//
// The network is a (max,+) distance matrix of lower bounds: cell (i,j)
// holds the tightest known lower bound of tj - ti, and the matching upper
// bound is -lower(j,i). Inserting a constraint tightens at most two cells
// and re-closes the matrix incrementally in O(n²); bulk insertion and
// merging re-close it globally with a Floyd–Warshall pass in O(n³).
//
// The matrix is kept path-consistent between operations, so Constraint
// always answers with the tightest derived bound, not just the bounds
// that were inserted.
//
// Outcomes follow a fixed taxonomy: Unchanged (already implied),
// Propagated (tightened), ErrInconsistency (rejected, graph untouched)
// and ErrFatalInconsistency (batch failure, graph discarded). Only batch
// operations can be fatal; callers needing atomicity clone first.
//
// A Graph is not safe for concurrent use. It may be shared by any number
// of readers as long as no mutation is in flight: a propagation in
// progress leaves the matrix transiently inconsistent.
package graph
