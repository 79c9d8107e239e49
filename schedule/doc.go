// Package schedule assigns admissible timestamps to the instants of a
// temporal network.
//
// A Scheduler keeps one set of admissible timestamps per instant of a
// graph.Graph, all starting as ]-oo,+oo[ and only ever shrinking.
// Restricting one instant propagates through the graph's constraints to
// every dependent instant, driven to a fixpoint, so at rest every edge
// (i,j) satisfies schedule[j] ⊆ schedule[i] + constraint(i,j).
//
// The graph is borrowed read-only: many schedulers can explore
// different restrictions of the same constraint network without
// duplicating it. The scheduler must not outlive the graph, and the
// graph must not be mutated while schedulers hold it.
package schedule
