package encoder

import (
	"fmt"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
)

// buildVariables materializes the four indicator families. Every (i,o)
// pair gets a variable — admissibility is enforced by constraints, not
// by omission — and names follow the x_i_o / l_i_j / r_i_j / y_i_τ_t
// scheme, so models and cores stay readable.
func (p *Problem) buildVariables() error {
	// 1) Label indicators x_i_o, one per node and catalog label.
	p.x = make(map[xKey]sat.Var, p.depth*len(p.labels))
	for i := 0; i < p.depth; i++ {
		for _, label := range p.labels {
			v, err := p.solver.Bool(fmt.Sprintf("x_%d_%s", i, label))
			if err != nil {
				return err
			}
			p.x[xKey{node: i, label: label}] = v
		}
	}

	// 2) Child indicators l_i_j and r_i_j for j < i. Node 0 has no
	//    candidates; its rows stay empty.
	p.l = make([][]sat.Var, p.depth)
	p.r = make([][]sat.Var, p.depth)
	for i := 1; i < p.depth; i++ {
		p.l[i] = make([]sat.Var, i)
		p.r[i] = make([]sat.Var, i)
		for j := 0; j < i; j++ {
			lv, err := p.solver.Bool(fmt.Sprintf("l_%d_%d", i, j))
			if err != nil {
				return err
			}
			rv, err := p.solver.Bool(fmt.Sprintf("r_%d_%d", i, j))
			if err != nil {
				return err
			}
			p.l[i][j] = lv
			p.r[i][j] = rv
		}
	}

	// 3) Semantic valuations y_i_τ_t over each trace's explicit positions.
	p.y = make([][][]sat.Var, p.depth)
	for i := 0; i < p.depth; i++ {
		p.y[i] = make([][]sat.Var, len(p.traces))
		for tIdx, tr := range p.traces {
			p.y[i][tIdx] = make([]sat.Var, tr.Length())
			for t := 0; t < tr.Length(); t++ {
				v, err := p.solver.Bool(fmt.Sprintf("y_%d_%d_%d", i, tIdx, t))
				if err != nil {
					return err
				}
				p.y[i][tIdx][t] = v
			}
		}
	}

	return nil
}

// xlit returns the positive literal of x_i_label.
func (p *Problem) xlit(i int, label ltl.Label) sat.Formula {
	return sat.Lit(p.x[xKey{node: i, label: label}])
}

// anyLabel returns the disjunction "node i carries one of labels".
func (p *Problem) anyLabel(i int, labels []ltl.Label) sat.Formula {
	lits := make([]sat.Formula, len(labels))
	for n, label := range labels {
		lits[n] = p.xlit(i, label)
	}

	return sat.Or(lits...)
}

// ylit returns the positive literal of y_i_τ_t.
func (p *Problem) ylit(i, traceIdx, t int) sat.Formula {
	return sat.Lit(p.y[i][traceIdx][t])
}

// InformativeVariables returns the structural indicator variables
// (x, then l, then r, in index order): the variables outer tooling
// should focus unsat-core or enumeration work on.
func (p *Problem) InformativeVariables() []sat.Var {
	out := make([]sat.Var, 0, p.depth*len(p.labels)+p.depth*(p.depth-1))
	for i := 0; i < p.depth; i++ {
		for _, label := range p.labels {
			out = append(out, p.x[xKey{node: i, label: label}])
		}
	}
	for i := 1; i < p.depth; i++ {
		out = append(out, p.l[i]...)
	}
	for i := 1; i < p.depth; i++ {
		out = append(out, p.r[i]...)
	}

	return out
}
