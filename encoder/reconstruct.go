package encoder

import (
	"fmt"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
)

// Reconstruct reads the formula out of a satisfying assignment by
// following the unique true label and child indicators from the root
// node downward. The model must come from this problem's Solve; any
// node with zero or several true indicators yields ErrMalformedModel.
func (p *Problem) Reconstruct(m sat.Model) (*ltl.Formula, error) {
	return p.rebuild(p.depth-1, m)
}

func (p *Problem) rebuild(i int, m sat.Model) (*ltl.Formula, error) {
	label, err := p.trueLabel(i, m)
	if err != nil {
		return nil, err
	}

	switch label.Class() {
	case ltl.ClassAtom:
		return ltl.Atom(label.Prop), nil

	case ltl.ClassZeroary:
		return ltl.FalseLeaf(), nil

	case ltl.ClassUnary:
		child, err := p.trueChild(i, p.l, m)
		if err != nil {
			return nil, err
		}
		sub, err := p.rebuild(child, m)
		if err != nil {
			return nil, err
		}

		return ltl.NewUnary(label, sub)

	default:
		leftIdx, err := p.trueChild(i, p.l, m)
		if err != nil {
			return nil, err
		}
		rightIdx, err := p.trueChild(i, p.r, m)
		if err != nil {
			return nil, err
		}
		left, err := p.rebuild(leftIdx, m)
		if err != nil {
			return nil, err
		}
		right, err := p.rebuild(rightIdx, m)
		if err != nil {
			return nil, err
		}

		return ltl.NewBinary(label, left, right)
	}
}

// trueLabel finds the single label whose indicator is true at node i.
func (p *Problem) trueLabel(i int, m sat.Model) (ltl.Label, error) {
	var found ltl.Label
	count := 0
	for _, label := range p.labels {
		if m[p.x[xKey{node: i, label: label}]] {
			found = label
			count++
		}
	}
	if count != 1 {
		return found, fmt.Errorf("%w: %d true labels at node %d", ErrMalformedModel, count, i)
	}

	return found, nil
}

// trueChild finds the single child index selected for node i in the
// given indicator family (p.l or p.r).
func (p *Problem) trueChild(i int, family [][]sat.Var, m sat.Model) (int, error) {
	found, count := 0, 0
	for j, v := range family[i] {
		if m[v] {
			found = j
			count++
		}
	}
	if count != 1 {
		return 0, fmt.Errorf("%w: %d selected children at node %d", ErrMalformedModel, count, i)
	}

	return found, nil
}
