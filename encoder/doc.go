// Package encoder compiles "there exists a pLTL formula DAG of depth D
// classifying these traces" into a SAT problem, and reads formulas back
// out of models.
//
// 🚀 How the encoding works
//
//	A candidate formula is a DAG over nodes 0..D−1 with node D−1 as the
//	root; node i may only reference children with smaller indices, so
//	acyclicity is structural. Three indicator families describe the DAG:
//
//	  x_i_o  — node i carries label o (an operator or a proposition)
//	  l_i_j  — the left child of node i is node j
//	  r_i_j  — the right child of node i is node j
//
//	and a fourth family ties the DAG to the samples:
//
//	  y_i_τ_t — the subformula rooted at i holds at position t of trace τ.
//
//	Structural constraints force exactly one label per node, a leaf at
//	node 0, arity-appropriate children, no unreferenced nodes below the
//	root, and negation only directly above atoms. Semantic constraints
//	state, per operator, per trace and per position, the equivalence
//	between a node's y-values and its children's, unrolled over the
//	lasso's future positions. Acceptance constraints pin the root's
//	value at position 0: true on accepted traces, false on rejected.
//
//	A model of the conjunction IS a classifying formula; Reconstruct
//	extracts it by reading x, l and r at each node. An UNSAT answer
//	means no formula of depth ≤ D separates the samples, and the core
//	names the constraint groups that clash.
//
// ⚙️ Usage:
//
//	problem, err := encoder.Encode(3, set, encoder.DefaultOptions())
//	res, err := problem.Solve(ctx)
//	if res.Status == sat.StatusSat {
//	    fmt.Println(res.Formula) // e.g. G(x0)
//	}
//
// Every constraint carries a stable tracking tag built from its kind and
// indices, e.g. "semantics-globally-le(k=1,trace=0,node=2)", so UNSAT
// cores read as explanations. Encoding is deterministic: equal inputs
// produce equal variable names, tags and constraints.
package encoder
