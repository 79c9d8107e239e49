// Package window implements the interval and set algebra over time points —
// convex intervals, arbitrary disjoint unions of them, and the lazy merge
// machinery that keeps every operation a single ordered pass.
//
// 🚀 What does window provide?
//
//	• Interval[T] — a closed convex interval [lower,upper] over any
//	  core.TimePoint; Span and Slot are the duration/instant instantiations
//	• Set[T] — a chronologically sorted list of pairwise disjoint,
//	  non-adjacent intervals; Spans and Slots are the aliases
//	• Seq[T] — a resumable stream of such intervals, with union,
//	  intersection, complement and exclusion as O(1)-state machines
//	• Translation (by a duration, or Minkowski by a Span) and scaling
//	  (integer or float) of duration sets
//
// ✨ Canonical encodings
//
//   - The empty interval is always {lower:+oo, upper:-oo} — emptiness and
//     equality are O(1) field comparisons, never a scan.
//   - Time is discrete (1/2³⁰ s ticks), so ]a,b[ == [a+1,b-1]; open
//     bounds never need their own representation.
//   - Set pieces keep a gap of at least one tick; pieces any closer are
//     merged on construction. Every operation preserves this form, which
//     is what makes single-pass merging sound.
//
// Rendering follows a fixed grammar: "{t}", "[a,b]", "[a,+oo[",
// "]-oo,b]", "]-oo,+oo[", "{}", and set pieces joined by "U".
//
// All operations over sets cost O(n) in the number of pieces; the lazy
// Seq machines never materialize more than one pending interval.
package window
