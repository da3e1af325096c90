package encoder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
	"github.com/katalvlaran/ltlearn/trace"
)

// Encode builds the synthesis problem for formulas of depth exactly d
// (the DAG has d nodes; shallower formulas are expressible whenever
// their subformula count is d after sharing, so the outer search tries
// depths in increasing order).
//
// Construction is deterministic and eager: all variables and constraints
// exist once Encode returns, and equal inputs yield identical problems.
// Returns ErrInvalidInput for d < 1 or a nil/empty trace set.
func Encode(d int, set *trace.Set, opts Options) (*Problem, error) {
	// 1) Validate the request.
	if d < 1 {
		return nil, fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidInput, d)
	}
	if set == nil {
		return nil, fmt.Errorf("%w: nil trace set", ErrInvalidInput)
	}
	traces := set.All()
	if len(traces) == 0 {
		return nil, fmt.Errorf("%w: trace set has no traces", ErrInvalidInput)
	}

	// 2) Assemble the problem skeleton: catalog from (T, P), one owned
	//    solver instance for the problem's lifetime.
	cat := ltl.NewCatalog(set.MaxLength(), set.NumProps())
	p := &Problem{
		depth:  d,
		set:    set,
		cat:    cat,
		solver: sat.New(opts.Solver),
		labels: cat.All(),
		traces: traces,
	}

	// 3) Variables, then the three constraint groups. Emission order is
	//    fixed; it defines the lexical identity of tags in cores.
	if err := p.buildVariables(); err != nil {
		return nil, err
	}
	if err := p.assertStructure(); err != nil {
		return nil, err
	}
	if err := p.assertSemantics(); err != nil {
		return nil, err
	}
	if err := p.assertAcceptance(); err != nil {
		return nil, err
	}

	return p, nil
}

// Solve hands the problem to the back end and interprets the outcome:
// a model becomes a reconstructed formula, UNSAT carries its tag core,
// and cancellation of ctx surfaces as StatusUnknown.
func (p *Problem) Solve(ctx context.Context) (Result, error) {
	res, err := p.solver.Solve(ctx)
	if err != nil {
		return Result{}, err
	}

	switch res.Status {
	case sat.StatusSat:
		f, err := p.Reconstruct(res.Model)
		if err != nil {
			return Result{}, err
		}

		return Result{Status: sat.StatusSat, Formula: f}, nil

	case sat.StatusUnsat:
		return Result{Status: sat.StatusUnsat, Core: res.Core}, nil

	default:
		return Result{Status: sat.StatusUnknown}, nil
	}
}
