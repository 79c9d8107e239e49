// Package tempora is your in-memory toolkit for exact temporal reasoning —
// from tick-precise durations and instants to constraint networks and
// schedulers built on top of them.
//
// 🚀 What is tempora?
//
//	A modern, zero-dependency library that brings together:
//		• Core primitives: fixed-point durations & instants with ±oo sentinels
//		• Windows: intervals and arbitrary disjoint time sets with full algebra
//		• Lazy merges: union, intersection, complement, translation, scaling
//		• TimeGraph: a simple temporal network kept minimal & consistent
//		• TimeScheduler: per-instant admissible timestamp sets over a graph
//
// ✨ Why choose tempora?
//
//   - Exact arithmetic – 1/2³⁰-second ticks, no floating-point drift
//   - Rock-solid guarantees – canonical encodings, invariants in-code
//   - Pure Go – no cgo, no hidden deps
//   - Predictable cost – O(n²) incremental and O(n³) global propagation
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — TimeValue & Timestamp scalars, units, conversions
//	window/   — Interval & Set algebra + lazy merge state machines
//	graph/    — the (max,+) constraint network with path consistency
//	schedule/ — admissible-set maintenance over a shared graph
//
// Quick ASCII example:
//
//	t0 ──[0,5]── t1 ──[7,10]── t2        with t2 - t0 in [10,25]
//
//	propagates to the minimal network where t2 - t0 in [10,15].
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
package tempora
