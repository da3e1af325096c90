package sat

import "github.com/crillab/gophersat/bf"

// Lit returns the positive literal of v.
func Lit(v Var) Formula { return Formula{f: bf.Var(string(v))} }

// Neg returns the negative literal of v.
func Neg(v Var) Formula { return Formula{f: bf.Not(bf.Var(string(v)))} }

// Top is the constant true formula.
func Top() Formula { return Formula{f: bf.True} }

// Bottom is the constant false formula.
func Bottom() Formula { return Formula{f: bf.False} }

// Not negates f.
func Not(f Formula) Formula { return Formula{f: bf.Not(f.f)} }

// And conjoins the given formulas; the empty conjunction is Top.
func And(fs ...Formula) Formula {
	if len(fs) == 0 {
		return Top()
	}
	subs := make([]bf.Formula, len(fs))
	for i, f := range fs {
		subs[i] = f.f
	}

	return Formula{f: bf.And(subs...)}
}

// Or disjoins the given formulas; the empty disjunction is Bottom.
func Or(fs ...Formula) Formula {
	if len(fs) == 0 {
		return Bottom()
	}
	subs := make([]bf.Formula, len(fs))
	for i, f := range fs {
		subs[i] = f.f
	}

	return Formula{f: bf.Or(subs...)}
}

// Implies returns premise → conclusion.
func Implies(premise, conclusion Formula) Formula {
	return Formula{f: bf.Implies(premise.f, conclusion.f)}
}

// Equiv returns a ↔ b.
func Equiv(a, b Formula) Formula { return Formula{f: bf.Eq(a.f, b.f)} }

// AtLeast1 requires at least one of the variables to be true; with no
// variables it is Bottom.
func AtLeast1(vs ...Var) Formula {
	lits := make([]Formula, len(vs))
	for i, v := range vs {
		lits[i] = Lit(v)
	}

	return Or(lits...)
}

// AtMost1 requires at most one of the variables to be true, encoded
// pairwise; with fewer than two variables it is Top.
func AtMost1(vs ...Var) Formula {
	var pairs []Formula
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			pairs = append(pairs, Or(Neg(vs[i]), Neg(vs[j])))
		}
	}

	return And(pairs...)
}

// ExactlyOne requires exactly one of the variables to be true.
func ExactlyOne(vs ...Var) Formula {
	return And(AtLeast1(vs...), AtMost1(vs...))
}
