package encoder_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ltlearn/encoder"
	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
	"github.com/katalvlaran/ltlearn/trace"
	"github.com/stretchr/testify/require"
)

// TestReconstruct_RoundTrip (property 6): pin a fresh encoding of the
// same depth to the formula reconstructed from a solved one; it must be
// satisfiable, with the same root valuations at position 0.
func TestReconstruct_RoundTrip(t *testing.T) {
	set := mustSet(t,
		[]*trace.Trace{mustTrace(t, []bool{true, true}, 1)},
		[]*trace.Trace{mustTrace(t, []bool{true, false}, 1)},
	)
	const depth = 2

	// 1) Solve and keep both the formula and the raw model.
	original, err := encoder.Encode(depth, set, encoder.DefaultOptions())
	require.NoError(t, err)
	raw, err := original.RawSolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusSat, raw.Status)
	f, err := original.Reconstruct(raw.Model)
	require.NoError(t, err)
	require.Equal(t, depth, f.Depth(), "witness uses every node at this depth")

	// 2) Re-encode, pin the DAG to the reconstructed formula, re-solve.
	pinned, err := encoder.Encode(depth, set, encoder.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, pinned.PinDAG(f))
	rawPinned, err := pinned.RawSolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusSat, rawPinned.Status, "the pinned labeling must satisfy")

	// 3) Root valuations at position 0 agree trace by trace.
	for traceIdx := range set.All() {
		require.Equal(t,
			raw.Model[original.RootVar(traceIdx)],
			rawPinned.Model[pinned.RootVar(traceIdx)],
			"root valuation of trace %d survives the round trip", traceIdx)
	}

	// 4) And the pinned model reconstructs back to the same formula.
	again, err := pinned.Reconstruct(rawPinned.Model)
	require.NoError(t, err)
	require.Equal(t, f.String(), again.String())
}

// TestReconstruct_MalformedModel: a model from a different problem (all
// indicators false) must be rejected, not misread.
func TestReconstruct_MalformedModel(t *testing.T) {
	set := mustSet(t, []*trace.Trace{mustTrace(t, []bool{true}, 0)}, nil)
	p, err := encoder.Encode(1, set, encoder.DefaultOptions())
	require.NoError(t, err)

	_, err = p.Reconstruct(sat.Model{})
	require.ErrorIs(t, err, encoder.ErrMalformedModel)
}

// TestPinDAG_Classifies pins hand-written formulas and checks the
// encoding agrees with the evaluator about whether they classify the
// sample (the semantic constraints, exercised from the other side).
func TestPinDAG_Classifies(t *testing.T) {
	set := mustSet(t,
		[]*trace.Trace{mustTrace(t, []bool{false, true}, 0)},
		[]*trace.Trace{mustTrace(t, []bool{true, false}, 0)},
	)

	next, err := ltl.NewUnary(ltl.Next, ltl.Atom(0))
	require.NoError(t, err)

	p, err := encoder.Encode(2, set, encoder.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, p.PinDAG(next))

	res, err := p.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusSat, res.Status, "X(x0) classifies the S3 sample")
	require.Equal(t, "X(x0)", res.Formula.String())

	// The same formula pinned against swapped classes must clash.
	swapped := mustSet(t,
		[]*trace.Trace{mustTrace(t, []bool{true, false}, 0)},
		[]*trace.Trace{mustTrace(t, []bool{false, true}, 0)},
	)
	q, err := encoder.Encode(2, swapped, encoder.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, q.PinDAG(next))

	res, err = q.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusUnsat, res.Status, "X(x0) misclassifies the swapped sample")
}
