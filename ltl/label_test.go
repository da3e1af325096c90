package ltl_test

import (
	"testing"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/stretchr/testify/assert"
)

// TestLabel_ClassAndArity pins the class partition and arities of every
// label family.
func TestLabel_ClassAndArity(t *testing.T) {
	tests := []struct {
		label ltl.Label
		class ltl.Class
		arity int
	}{
		{ltl.Bot, ltl.ClassZeroary, 0},
		{ltl.Prop(3), ltl.ClassAtom, 0},
		{ltl.Not, ltl.ClassUnary, 1},
		{ltl.Next, ltl.ClassUnary, 1},
		{ltl.Globally, ltl.ClassUnary, 1},
		{ltl.GloballyLE(0), ltl.ClassUnary, 1},
		{ltl.GloballyGT(2), ltl.ClassUnary, 1},
		{ltl.FinallyLE(1), ltl.ClassUnary, 1},
		{ltl.And, ltl.ClassBinary, 2},
		{ltl.Or, ltl.ClassBinary, 2},
		{ltl.Implies, ltl.ClassBinary, 2},
		{ltl.Release, ltl.ClassBinary, 2},
		{ltl.UntilLE(0), ltl.ClassBinary, 2},
		{ltl.ReleaseLE(4), ltl.ClassBinary, 2},
		{ltl.ReleaseGT(4), ltl.ClassBinary, 2},
	}

	for _, tc := range tests {
		t.Run(tc.label.String(), func(t *testing.T) {
			assert.Equal(t, tc.class, tc.label.Class(), "class of %s", tc.label)
			assert.Equal(t, tc.arity, tc.label.Arity(), "arity of %s", tc.label)
		})
	}
}

// TestLabel_String pins the glyph forms, bounds included.
func TestLabel_String(t *testing.T) {
	assert.Equal(t, "⊥", ltl.Bot.String())
	assert.Equal(t, "x7", ltl.Prop(7).String())
	assert.Equal(t, "G≤2", ltl.GloballyLE(2).String())
	assert.Equal(t, "G>0", ltl.GloballyGT(0).String())
	assert.Equal(t, "F≤1", ltl.FinallyLE(1).String())
	assert.Equal(t, "U≤3", ltl.UntilLE(3).String())
	assert.Equal(t, "R≤3", ltl.ReleaseLE(3).String())
	assert.Equal(t, "R>3", ltl.ReleaseGT(3).String())
	assert.Equal(t, "->", ltl.Implies.String())
}

// TestLabel_Comparable verifies labels work as map keys and that bounds
// are part of identity.
func TestLabel_Comparable(t *testing.T) {
	assert.Equal(t, ltl.GloballyLE(2), ltl.GloballyLE(2), "equal bound, equal label")
	assert.NotEqual(t, ltl.GloballyLE(2), ltl.GloballyLE(3), "bound is part of identity")
	assert.NotEqual(t, ltl.GloballyLE(2), ltl.GloballyGT(2), "kind is part of identity")

	seen := map[ltl.Label]int{ltl.UntilLE(1): 42}
	assert.Equal(t, 42, seen[ltl.UntilLE(1)], "labels index maps by value")

	assert.True(t, ltl.UntilLE(1).Parametric())
	assert.False(t, ltl.Release.Parametric())
}
