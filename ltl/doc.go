// Package ltl defines the syntax of parametric Linear Temporal Logic
// (pLTL) over finite lasso traces, and its semantics.
//
// 🚀 What is pLTL?
//
//	LTL extended with integer-bounded temporal operators. Besides the
//	classical ⊥, !, &, |, X, G and R, the catalog carries the parametric
//	families G≤k, G>k, F≤k, U≤k, R≤k and R>k for bounds 0 ≤ k < T, where
//	T is the maximum trace length under consideration. Bounded operators
//	quantify over prefixes (or suffixes) of the future-position list of a
//	lasso trace, so every formula is decidable by finite unrolling.
//
// ✨ What the package provides:
//
//   - Label    — a comparable sum type for operator and proposition labels,
//     with total Arity/Class queries and recoverable bounds
//   - Catalog  — the admissible label set for a given (T, P), split into
//     zeroary, unary, binary and atomic classes
//   - Formula  — a small recursive AST with validated constructors and a
//     parenthesized infix printer
//   - Eval     — the reference evaluator over lasso traces, the ground
//     truth every synthesized formula is checked against
//
// ⚙️ Usage:
//
//	cat := ltl.NewCatalog(3, 2)          // traces up to length 3, props x0,x1
//	f, _ := ltl.NewUnary(ltl.Globally, ltl.Atom(0))
//	ok, _ := ltl.Eval(f, tr, 0)          // does G(x0) hold at position 0?
//
// Labels compare by value: two G≤2 labels are equal wherever they come
// from, and maps keyed by Label behave as expected.
package ltl
