package encoder

import (
	"fmt"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
)

// assertStructure emits the DAG-shape constraints: label uniqueness, a
// leaf at node 0, arity-appropriate child counts, no unreferenced nodes,
// and negation restricted to atoms. At depth 1 every child-related
// assertion is vacuous and skipped.
func (p *Problem) assertStructure() error {
	zeroaryLike := append(p.cat.Props(), p.cat.Zeroary()...)
	unary := p.cat.Unary()
	binary := p.cat.Binary()
	unaryOrBinary := append(append([]ltl.Label(nil), unary...), binary...)

	// 1) Exactly one label per node.
	for i := 0; i < p.depth; i++ {
		row := make([]sat.Var, len(p.labels))
		for n, label := range p.labels {
			row[n] = p.x[xKey{node: i, label: label}]
		}
		tag := fmt.Sprintf("exactly-one-label(node=%d)", i)
		if err := p.solver.Assert(tag, sat.ExactlyOne(row...)); err != nil {
			return err
		}
	}

	// 2) Node 0 has no smaller nodes to reference, so it must be a leaf:
	//    a proposition or ⊥. With zero propositions this forces ⊥.
	if err := p.solver.Assert("root-leaf(node=0)", p.anyLabel(0, zeroaryLike)); err != nil {
		return err
	}

	// 3) Child counts must match the chosen label's arity.
	for i := 1; i < p.depth; i++ {
		if err := p.solver.Assert(
			fmt.Sprintf("left-child(node=%d)", i),
			sat.Implies(p.anyLabel(i, unaryOrBinary), sat.ExactlyOne(p.l[i]...)),
		); err != nil {
			return err
		}
		if err := p.solver.Assert(
			fmt.Sprintf("right-child(node=%d)", i),
			sat.Implies(p.anyLabel(i, binary), sat.ExactlyOne(p.r[i]...)),
		); err != nil {
			return err
		}
		if err := p.solver.Assert(
			fmt.Sprintf("no-right-child(node=%d)", i),
			sat.Implies(p.anyLabel(i, unary), sat.Not(sat.AtLeast1(p.r[i]...))),
		); err != nil {
			return err
		}
		if err := p.solver.Assert(
			fmt.Sprintf("leaf-no-children(node=%d)", i),
			sat.Implies(
				p.anyLabel(i, zeroaryLike),
				sat.Not(sat.Or(sat.AtLeast1(p.l[i]...), sat.AtLeast1(p.r[i]...))),
			),
		); err != nil {
			return err
		}
	}

	// 4) Every non-root node must be referenced by some larger node.
	//    The root itself is exempt: it is the formula.
	if p.depth > 1 {
		referenced := make([]sat.Formula, 0, p.depth-1)
		for j := 0; j < p.depth-1; j++ {
			var uses []sat.Formula
			for i := j + 1; i < p.depth; i++ {
				uses = append(uses, sat.Lit(p.l[i][j]), sat.Lit(p.r[i][j]))
			}
			referenced = append(referenced, sat.Or(uses...))
		}
		if err := p.solver.Assert("no-dangling", sat.And(referenced...)); err != nil {
			return err
		}
	}

	// 5) Negation applies only to atoms: a '!' node's left child must be
	//    labeled by a proposition. At node 0 the disjunction below is
	//    empty, ruling '!' out there altogether.
	props := p.cat.Props()
	negated := make([]sat.Formula, 0, p.depth)
	for i := 0; i < p.depth; i++ {
		var viaAtom []sat.Formula
		for j := 0; j < i; j++ {
			viaAtom = append(viaAtom, sat.And(sat.Lit(p.l[i][j]), p.anyLabel(j, props)))
		}
		negated = append(negated, sat.Implies(p.xlit(i, ltl.Not), sat.Or(viaAtom...)))
	}

	return p.solver.Assert("negate-atoms-only", sat.And(negated...))
}
