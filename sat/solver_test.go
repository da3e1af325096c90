package sat_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ltlearn/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustBool registers a variable or fails the test.
func mustBool(t *testing.T, s *sat.Solver, name string) sat.Var {
	t.Helper()
	v, err := s.Bool(name)
	require.NoError(t, err)

	return v
}

// TestSolver_SatModel verifies a satisfiable problem yields a total
// model over the registered variables.
func TestSolver_SatModel(t *testing.T) {
	s := sat.New(sat.DefaultOptions())
	a := mustBool(t, s, "a")
	b := mustBool(t, s, "b")
	idle := mustBool(t, s, "idle")

	require.NoError(t, s.Assert("a-holds", sat.Lit(a)))
	require.NoError(t, s.Assert("a-forces-b", sat.Implies(sat.Lit(a), sat.Lit(b))))

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusSat, res.Status)

	assert.True(t, res.Model[a], "a was asserted")
	assert.True(t, res.Model[b], "b is implied")
	_, present := res.Model[idle]
	assert.True(t, present, "model is total even over unconstrained variables")
}

// TestSolver_UnsatCore verifies deletion minimization drops the
// irrelevant assertion and keeps the clashing pair.
func TestSolver_UnsatCore(t *testing.T) {
	s := sat.New(sat.DefaultOptions())
	a := mustBool(t, s, "a")
	b := mustBool(t, s, "b")

	require.NoError(t, s.Assert("a-holds", sat.Lit(a)))
	require.NoError(t, s.Assert("b-holds", sat.Lit(b)))
	require.NoError(t, s.Assert("a-fails", sat.Not(sat.Lit(a))))

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusUnsat, res.Status)
	assert.Equal(t, []string{"a-holds", "a-fails"}, res.Core,
		"core keeps the clash, drops the bystander")
}

// TestSolver_FullCoreWithoutMinimization verifies the cheap mode blames
// every tag.
func TestSolver_FullCoreWithoutMinimization(t *testing.T) {
	s := sat.New(sat.Options{MinimizeCore: false})
	a := mustBool(t, s, "a")
	mustBool(t, s, "b")

	require.NoError(t, s.Assert("a-holds", sat.Lit(a)))
	require.NoError(t, s.Assert("a-fails", sat.Neg(a)))

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusUnsat, res.Status)
	assert.Equal(t, []string{"a-holds", "a-fails"}, res.Core)
}

// TestSolver_Cardinality verifies the pairwise cardinality helpers.
func TestSolver_Cardinality(t *testing.T) {
	s := sat.New(sat.DefaultOptions())
	vs := []sat.Var{
		mustBool(t, s, "v0"),
		mustBool(t, s, "v1"),
		mustBool(t, s, "v2"),
	}

	require.NoError(t, s.Assert("one-of", sat.ExactlyOne(vs...)))
	require.NoError(t, s.Assert("not-v0", sat.Neg(vs[0])))
	require.NoError(t, s.Assert("not-v2", sat.Neg(vs[2])))

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusSat, res.Status)
	assert.False(t, res.Model[vs[0]])
	assert.True(t, res.Model[vs[1]], "only v1 can carry the one")
	assert.False(t, res.Model[vs[2]])

	require.NoError(t, s.Assert("not-v1", sat.Neg(vs[1])))
	res, err = s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sat.StatusUnsat, res.Status, "all three excluded")
}

// TestSolver_DuplicateNames pins the uniqueness sentinels.
func TestSolver_DuplicateNames(t *testing.T) {
	s := sat.New(sat.DefaultOptions())
	a := mustBool(t, s, "a")

	_, err := s.Bool("a")
	assert.ErrorIs(t, err, sat.ErrDuplicateVar)

	require.NoError(t, s.Assert("tag", sat.Lit(a)))
	err = s.Assert("tag", sat.Lit(a))
	assert.ErrorIs(t, err, sat.ErrDuplicateTag)

	err = s.Assert("", sat.Lit(a))
	assert.ErrorIs(t, err, sat.ErrEmptyTag)
}

// TestSolver_CancelledContext verifies cancellation surfaces as Unknown,
// never as an error or a bogus answer.
func TestSolver_CancelledContext(t *testing.T) {
	s := sat.New(sat.DefaultOptions())
	a := mustBool(t, s, "a")
	require.NoError(t, s.Assert("a-holds", sat.Lit(a)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Solve(ctx)
	require.NoError(t, err)
	assert.Equal(t, sat.StatusUnknown, res.Status)
}

// TestSolver_EmptyProblem: the empty conjunction is satisfiable with an
// all-false model.
func TestSolver_EmptyProblem(t *testing.T) {
	s := sat.New(sat.DefaultOptions())
	a := mustBool(t, s, "a")

	res, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, sat.StatusSat, res.Status)
	assert.False(t, res.Model[a], "unconstrained variables default to false")
}

// TestSolver_Tags verifies assertion order is preserved.
func TestSolver_Tags(t *testing.T) {
	s := sat.New(sat.DefaultOptions())
	a := mustBool(t, s, "a")

	require.NoError(t, s.Assert("first", sat.Lit(a)))
	require.NoError(t, s.Assert("second", sat.Top()))
	assert.Equal(t, []string{"first", "second"}, s.Tags())
}
