// Package sat adapts the gophersat back end to the shape constraint
// encoders need: named Boolean variables, formula combinators including
// cardinality helpers, assertions tracked by string tags, and solving
// with three-valued outcomes (Sat with a total model, Unsat with a tag
// core, Unknown on cancellation).
//
// Tracked assertions emulate an assumption interface the back end lacks:
// the solver conjoins the asserted formulas and, on UNSAT, re-solves with
// assertions dropped one at a time to shrink the blamed tag set
// (deletion-based core minimization; disable via Options.MinimizeCore to
// receive the full tag set instead). Cardinality helpers use the
// pairwise encoding, which is exact and small at the widths encoders
// emit them.
//
// A Solver is single-use state for one problem: register variables,
// assert, then Solve as often as needed. It is not safe for concurrent
// use.
package sat
