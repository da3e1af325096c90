// Package ltlearn synthesizes minimal parametric Linear Temporal Logic
// (pLTL) formulas from classified example traces.
//
// 🚀 What is ltlearn?
//
//	Given two disjoint sets of finite lasso traces — accepted and
//	rejected — ltlearn finds an LTL formula, of bounded syntactic depth,
//	that holds at position 0 of every accepted trace and fails at
//	position 0 of every rejected trace; or proves that no such formula
//	exists at that depth. The search is exact: the existence of a
//	classifying formula DAG is compiled into a Boolean constraint system
//	and handed to a SAT solver.
//
// ✨ Why choose ltlearn?
//
//   - Exact           — SAT-backed, no sampling, no local search
//   - Parametric      — bounded operators G≤k, G>k, F≤k, U≤k, R≤k, R>k
//   - Explainable     — UNSAT outcomes carry a named constraint core
//   - Pure Go         — gophersat under the hood, no cgo
//
// Under the hood, everything is organized into five subpackages:
//
//	trace/    — lasso traces, trace sets & the plain-text sample format
//	ltl/      — operator catalog, formula AST, printer & lasso evaluator
//	sat/      — SAT back-end adapter with tag-tracked assertions
//	encoder/  — the DAG SAT encoding: variables, constraints, decoding
//	search/   — depth-iteration driver: smallest depth wins
//
// Quick example:
//
//	set, _ := trace.Parse(strings.NewReader("0;1::0\n---\n1;0::0"))
//	res, err := search.Learn(context.Background(), set, search.DefaultOptions())
//	// res.Formula now classifies the samples, e.g. X(x0)
//
// See examples in each package's example_test.go for detailed walkthroughs.
package ltlearn
