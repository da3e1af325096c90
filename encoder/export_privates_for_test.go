package encoder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
)

// Test-only exports: round-trip tests need to force a known DAG labeling
// onto a problem and to read root valuations out of raw models.

// PinDAG asserts unit constraints fixing the problem's labeling to
// present f, laid out bottom-up with shared subformulas. f must have
// exactly Depth() distinct subformulas; the root lands on node D−1 by
// construction.
func (p *Problem) PinDAG(f *ltl.Formula) error {
	nodes := make(map[string]int)

	var place func(g *ltl.Formula) (int, error)
	place = func(g *ltl.Formula) (int, error) {
		if at, done := nodes[g.String()]; done {
			return at, nil
		}

		left, right := -1, -1
		var err error
		if g.Left != nil {
			if left, err = place(g.Left); err != nil {
				return 0, err
			}
		}
		if g.Right != nil {
			if right, err = place(g.Right); err != nil {
				return 0, err
			}
		}

		at := len(nodes)
		if at >= p.depth {
			return 0, fmt.Errorf("formula has more than %d distinct subformulas", p.depth)
		}
		nodes[g.String()] = at

		if err = p.solver.Assert(fmt.Sprintf("pin-label(node=%d)", at), p.xlit(at, g.Label)); err != nil {
			return 0, err
		}
		if left >= 0 {
			if err = p.solver.Assert(fmt.Sprintf("pin-left(node=%d)", at), sat.Lit(p.l[at][left])); err != nil {
				return 0, err
			}
		}
		if right >= 0 {
			if err = p.solver.Assert(fmt.Sprintf("pin-right(node=%d)", at), sat.Lit(p.r[at][right])); err != nil {
				return 0, err
			}
		}

		return at, nil
	}

	root, err := place(f)
	if err != nil {
		return err
	}
	if root != p.depth-1 {
		return fmt.Errorf("formula occupies %d of %d nodes", root+1, p.depth)
	}

	return nil
}

// RootVar returns the y-variable of the root node at position 0 of the
// given trace, for reading valuations straight off a model.
func (p *Problem) RootVar(traceIdx int) sat.Var {
	return p.y[p.depth-1][traceIdx][0]
}

// RawSolve exposes the underlying solver outcome, bypassing formula
// reconstruction.
func (p *Problem) RawSolve(ctx context.Context) (sat.Result, error) {
	return p.solver.Solve(ctx)
}
