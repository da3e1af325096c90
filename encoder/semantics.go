package encoder

import (
	"fmt"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
	"github.com/katalvlaran/ltlearn/trace"
)

// assertSemantics emits, per trace and node, the implication from each
// label indicator to the equivalence between the node's valuations and
// its children's. Leaf rules (⊥, propositions) range over every node;
// operator rules start at node 1, the first node that can have children.
func (p *Problem) assertSemantics() error {
	for traceIdx, tr := range p.traces {
		// 1) Leaf semantics.
		for i := 0; i < p.depth; i++ {
			if err := p.assertFalseAt(i, traceIdx, tr); err != nil {
				return err
			}
			for _, prop := range p.cat.Props() {
				if err := p.assertPropAt(i, traceIdx, tr, prop); err != nil {
					return err
				}
			}
		}

		// 2) Operator semantics, quantified over all child selections.
		for i := 1; i < p.depth; i++ {
			for _, op := range p.cat.Unary() {
				if err := p.assertUnaryAt(op, i, traceIdx, tr); err != nil {
					return err
				}
			}
			for _, op := range p.cat.Binary() {
				if err := p.assertBinaryAt(op, i, traceIdx, tr); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// assertFalseAt: a ⊥-labeled node is false at every position.
func (p *Problem) assertFalseAt(i, traceIdx int, tr *trace.Trace) error {
	body := make([]sat.Formula, tr.Length())
	for t := 0; t < tr.Length(); t++ {
		body[t] = sat.Not(p.ylit(i, traceIdx, t))
	}
	tag := fmt.Sprintf("semantics-false(trace=%d,node=%d)", traceIdx, i)

	return p.solver.Assert(tag, sat.Implies(p.xlit(i, ltl.Bot), sat.And(body...)))
}

// assertPropAt: a proposition-labeled node mirrors the trace valuation.
func (p *Problem) assertPropAt(i, traceIdx int, tr *trace.Trace, prop ltl.Label) error {
	body := make([]sat.Formula, tr.Length())
	for t := 0; t < tr.Length(); t++ {
		if tr.Prop(t, prop.Prop) {
			body[t] = p.ylit(i, traceIdx, t)
		} else {
			body[t] = sat.Not(p.ylit(i, traceIdx, t))
		}
	}
	tag := fmt.Sprintf("semantics-prop(trace=%d,node=%d,p=%d)", traceIdx, i, prop.Prop)

	return p.solver.Assert(tag, sat.Implies(p.xlit(i, prop), sat.And(body...)))
}

// assertUnaryAt emits, for every candidate child c < i:
// l_i_c → ⋀_t ( y_i_τ_t ≡ body(op, c, t) ).
func (p *Problem) assertUnaryAt(op ltl.Label, i, traceIdx int, tr *trace.Trace) error {
	selections := make([]sat.Formula, 0, i)
	for c := 0; c < i; c++ {
		eqs := make([]sat.Formula, tr.Length())
		for t := 0; t < tr.Length(); t++ {
			eqs[t] = sat.Equiv(p.ylit(i, traceIdx, t), p.unaryBody(op, c, traceIdx, tr, t))
		}
		selections = append(selections, sat.Implies(sat.Lit(p.l[i][c]), sat.And(eqs...)))
	}

	return p.solver.Assert(semTag(op, traceIdx, i), sat.Implies(p.xlit(i, op), sat.And(selections...)))
}

// assertBinaryAt emits, for every candidate child pair (lc, rc):
// l_i_lc ∧ r_i_rc → ⋀_t ( y_i_τ_t ≡ body(op, lc, rc, t) ).
func (p *Problem) assertBinaryAt(op ltl.Label, i, traceIdx int, tr *trace.Trace) error {
	selections := make([]sat.Formula, 0, i*i)
	for lc := 0; lc < i; lc++ {
		for rc := 0; rc < i; rc++ {
			eqs := make([]sat.Formula, tr.Length())
			for t := 0; t < tr.Length(); t++ {
				eqs[t] = sat.Equiv(p.ylit(i, traceIdx, t), p.binaryBody(op, lc, rc, traceIdx, tr, t))
			}
			selected := sat.And(sat.Lit(p.l[i][lc]), sat.Lit(p.r[i][rc]))
			selections = append(selections, sat.Implies(selected, sat.And(eqs...)))
		}
	}

	return p.solver.Assert(semTag(op, traceIdx, i), sat.Implies(p.xlit(i, op), sat.And(selections...)))
}

// unaryBody builds φ_op(c, t), the defining formula of a unary operator
// in terms of the child's valuations.
func (p *Problem) unaryBody(op ltl.Label, c, traceIdx int, tr *trace.Trace, t int) sat.Formula {
	future := tr.FuturePos(t)
	switch op.Kind {
	case ltl.KindNot:
		return sat.Not(p.ylit(c, traceIdx, t))
	case ltl.KindNext:
		return p.ylit(c, traceIdx, tr.NextPos(t))
	case ltl.KindGlobally:
		return p.allOf(c, traceIdx, future)
	case ltl.KindGloballyLE:
		return p.allOf(c, traceIdx, future[:min(op.Bound+1, len(future))])
	case ltl.KindGloballyGT:
		if op.Bound+1 >= len(future) {
			return sat.Top()
		}

		return p.allOf(c, traceIdx, future[op.Bound+1:])
	default: // KindFinallyLE
		return p.anyOf(c, traceIdx, future[:min(op.Bound+1, len(future))])
	}
}

// binaryBody builds φ_op(lc, rc, t) for a binary operator.
func (p *Problem) binaryBody(op ltl.Label, lc, rc, traceIdx int, tr *trace.Trace, t int) sat.Formula {
	future := tr.FuturePos(t)
	switch op.Kind {
	case ltl.KindAnd:
		return sat.And(p.ylit(lc, traceIdx, t), p.ylit(rc, traceIdx, t))
	case ltl.KindOr:
		return sat.Or(p.ylit(lc, traceIdx, t), p.ylit(rc, traceIdx, t))
	case ltl.KindImplies:
		return sat.Implies(p.ylit(lc, traceIdx, t), p.ylit(rc, traceIdx, t))
	case ltl.KindUntilLE:
		alts := make([]sat.Formula, 0, min(op.Bound+1, len(future)))
		for q := 0; q <= min(op.Bound, len(future)-1); q++ {
			conj := make([]sat.Formula, 0, q+1)
			conj = append(conj, p.ylit(rc, traceIdx, future[q]))
			for prior := 0; prior < q; prior++ {
				conj = append(conj, p.ylit(lc, traceIdx, future[prior]))
			}
			alts = append(alts, sat.And(conj...))
		}

		return sat.Or(alts...)
	case ltl.KindRelease:
		return p.releaseBody(lc, rc, traceIdx, future, 0, len(future))
	case ltl.KindReleaseLE:
		return p.releaseBody(lc, rc, traceIdx, future, 0, min(op.Bound+1, len(future)))
	default: // KindReleaseGT
		return p.releaseBody(lc, rc, traceIdx, future, op.Bound+1, len(future))
	}
}

// releaseBody: ⋀_{q ∈ [from,to)} ( y_rc_F[q] ∨ ⋁_{q'<q} y_lc_F[q'] ).
// An empty range is the vacuous truth.
func (p *Problem) releaseBody(lc, rc, traceIdx int, future []int, from, to int) sat.Formula {
	conj := make([]sat.Formula, 0, max(to-from, 0))
	for q := from; q < to; q++ {
		alts := make([]sat.Formula, 0, q+1)
		alts = append(alts, p.ylit(rc, traceIdx, future[q]))
		for prior := 0; prior < q; prior++ {
			alts = append(alts, p.ylit(lc, traceIdx, future[prior]))
		}
		conj = append(conj, sat.Or(alts...))
	}

	return sat.And(conj...)
}

// allOf conjoins the child's valuations over the given positions.
func (p *Problem) allOf(c, traceIdx int, positions []int) sat.Formula {
	lits := make([]sat.Formula, len(positions))
	for n, u := range positions {
		lits[n] = p.ylit(c, traceIdx, u)
	}

	return sat.And(lits...)
}

// anyOf disjoins the child's valuations over the given positions.
func (p *Problem) anyOf(c, traceIdx int, positions []int) sat.Formula {
	lits := make([]sat.Formula, len(positions))
	for n, u := range positions {
		lits[n] = p.ylit(c, traceIdx, u)
	}

	return sat.Or(lits...)
}

// semTag names an operator-semantics assertion; parametric operators
// carry their bound so cores separate the family members.
func semTag(op ltl.Label, traceIdx, node int) string {
	if op.Parametric() {
		return fmt.Sprintf("semantics-%s(k=%d,trace=%d,node=%d)", kindName(op.Kind), op.Bound, traceIdx, node)
	}

	return fmt.Sprintf("semantics-%s(trace=%d,node=%d)", kindName(op.Kind), traceIdx, node)
}

// kindName is the tag vocabulary for operator kinds.
func kindName(k ltl.Kind) string {
	switch k {
	case ltl.KindNot:
		return "not"
	case ltl.KindNext:
		return "next"
	case ltl.KindGlobally:
		return "globally"
	case ltl.KindGloballyLE:
		return "globally-le"
	case ltl.KindGloballyGT:
		return "globally-gt"
	case ltl.KindFinallyLE:
		return "finally-le"
	case ltl.KindAnd:
		return "and"
	case ltl.KindOr:
		return "or"
	case ltl.KindImplies:
		return "implies"
	case ltl.KindRelease:
		return "release"
	case ltl.KindUntilLE:
		return "until-le"
	case ltl.KindReleaseLE:
		return "release-le"
	default:
		return "release-gt"
	}
}
