package search_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/search"
	"github.com/katalvlaran/ltlearn/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustTrace builds a single-proposition trace from a bit pattern.
func mustTrace(t *testing.T, bits []bool, lassoStart int) *trace.Trace {
	t.Helper()
	values := make([][]bool, len(bits))
	for i, b := range bits {
		values[i] = []bool{b}
	}
	tr, err := trace.New(values, lassoStart)
	require.NoError(t, err)

	return tr
}

// TestLearn_FindsMinimalDepth: the S3 sample needs exactly two nodes,
// so depth 1 must be skipped and depth 2 must answer.
func TestLearn_FindsMinimalDepth(t *testing.T) {
	set, err := trace.NewSet(
		[]*trace.Trace{mustTrace(t, []bool{false, true}, 0)},
		[]*trace.Trace{mustTrace(t, []bool{true, false}, 0)},
	)
	require.NoError(t, err)

	res, err := search.Learn(context.Background(), set, search.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Depth, "no depth-1 leaf separates these traces")
	got, err := ltl.Eval(res.Formula, set.Accepted()[0], 0)
	require.NoError(t, err)
	assert.True(t, got, "%s accepts the positive trace", res.Formula)
	got, err = ltl.Eval(res.Formula, set.Rejected()[0], 0)
	require.NoError(t, err)
	assert.False(t, got, "%s rejects the negative trace", res.Formula)
}

// TestLearn_NoSeparator: identical classes stay unsatisfiable at every
// depth, exhausting the range.
func TestLearn_NoSeparator(t *testing.T) {
	set, err := trace.NewSet(
		[]*trace.Trace{mustTrace(t, []bool{true}, 0)},
		[]*trace.Trace{mustTrace(t, []bool{true}, 0)},
	)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.MaxDepth = 2

	_, err = search.Learn(context.Background(), set, opts)
	assert.ErrorIs(t, err, search.ErrNoSeparator)
}

// TestLearn_BadOptions pins the depth-range validation.
func TestLearn_BadOptions(t *testing.T) {
	set, err := trace.NewSet([]*trace.Trace{mustTrace(t, []bool{true}, 0)}, nil)
	require.NoError(t, err)

	opts := search.DefaultOptions()
	opts.MinDepth = 0
	_, err = search.Learn(context.Background(), set, opts)
	assert.ErrorIs(t, err, search.ErrBadOptions)

	opts = search.DefaultOptions()
	opts.MaxDepth = opts.MinDepth - 1
	_, err = search.Learn(context.Background(), set, opts)
	assert.ErrorIs(t, err, search.ErrBadOptions)
}

// TestLearn_Interrupted: a cancelled context stops the search cleanly.
func TestLearn_Interrupted(t *testing.T) {
	set, err := trace.NewSet(
		[]*trace.Trace{mustTrace(t, []bool{true}, 0)},
		[]*trace.Trace{mustTrace(t, []bool{false}, 0)},
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = search.Learn(ctx, set, search.DefaultOptions())
	assert.ErrorIs(t, err, search.ErrInterrupted)
}
