// Package trace models finite lasso traces: a finite prefix of boolean
// valuations followed by a finite repeating suffix, together encoding an
// ultimately periodic infinite word over a fixed set of propositions.
//
// A Trace stores explicit positions [0..Length()); positions beyond the
// end repeat [LassoStart()..Length()) cyclically. Two derived queries
// drive all temporal reasoning downstream:
//
//   - NextPos(t)   — the successor position under the lasso.
//   - FuturePos(t) — the ordered list of semantically distinct positions
//     reachable from t, i.e. one full unrolling of the loop without
//     repeats. Its length is Length() − min(t, LassoStart()).
//
// A Set pairs accepted and rejected traces sharing one proposition count;
// Parse reads the plain-text sample format (one trace per line,
// "0,1;1,0::k" with an optional lasso suffix, sections separated by "---").
//
// Traces are immutable after construction: New deep-copies its input and
// precomputes every FuturePos slice, so repeated queries are O(1) lookups.
package trace
