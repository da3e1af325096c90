package ltl

import (
	"errors"
	"strings"
)

var (
	// ErrArity indicates a constructor given a label of the wrong arity.
	ErrArity = errors.New("ltl: label arity does not match constructor")
	// ErrNilChild indicates a constructor given a nil operand.
	ErrNilChild = errors.New("ltl: operand must not be nil")
)

// Formula is a pLTL syntax tree. Leaves carry ⊥ or a proposition label
// and have nil children; unary nodes use Left only; binary nodes use
// both. Formulas are plain values with no sharing requirements.
type Formula struct {
	Label Label
	Left  *Formula
	Right *Formula
}

// Atom returns the proposition leaf xp.
func Atom(p int) *Formula { return &Formula{Label: Prop(p)} }

// FalseLeaf returns the ⊥ leaf.
func FalseLeaf() *Formula { return &Formula{Label: Bot} }

// NewUnary wraps child under the unary label op.
func NewUnary(op Label, child *Formula) (*Formula, error) {
	if op.Class() != ClassUnary {
		return nil, ErrArity
	}
	if child == nil {
		return nil, ErrNilChild
	}

	return &Formula{Label: op, Left: child}, nil
}

// NewBinary joins left and right under the binary label op.
func NewBinary(op Label, left, right *Formula) (*Formula, error) {
	if op.Class() != ClassBinary {
		return nil, ErrArity
	}
	if left == nil || right == nil {
		return nil, ErrNilChild
	}

	return &Formula{Label: op, Left: left, Right: right}, nil
}

// String renders the formula in fully parenthesized infix form, e.g.
// "G(x0)", "(x0 & X(x1))", "(x0 U≤2 x1)".
func (f *Formula) String() string {
	var b strings.Builder
	f.write(&b)

	return b.String()
}

func (f *Formula) write(b *strings.Builder) {
	switch f.Label.Class() {
	case ClassZeroary, ClassAtom:
		b.WriteString(f.Label.String())
	case ClassUnary:
		b.WriteString(f.Label.String())
		b.WriteByte('(')
		f.Left.write(b)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		f.Left.write(b)
		b.WriteByte(' ')
		b.WriteString(f.Label.String())
		b.WriteByte(' ')
		f.Right.write(b)
		b.WriteByte(')')
	}
}

// Size returns the number of nodes in the tree.
func (f *Formula) Size() int {
	n := 1
	if f.Left != nil {
		n += f.Left.Size()
	}
	if f.Right != nil {
		n += f.Right.Size()
	}

	return n
}

// Depth returns the number of distinct subformulas, i.e. the minimum
// node count of a DAG presenting f with shared subtrees. A synthesis at
// depth D can present every formula with Depth() = D, and its results
// have Depth() ≤ D (equal nodes collapse); a formula with fewer distinct
// subformulas is not always among them, since every node below the root
// must be referenced.
func (f *Formula) Depth() int {
	distinct := make(map[string]struct{})
	f.collect(distinct)

	return len(distinct)
}

func (f *Formula) collect(distinct map[string]struct{}) {
	distinct[f.String()] = struct{}{}
	if f.Left != nil {
		f.Left.collect(distinct)
	}
	if f.Right != nil {
		f.Right.collect(distinct)
	}
}
