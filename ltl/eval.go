package ltl

import (
	"errors"

	"github.com/katalvlaran/ltlearn/trace"
)

var (
	// ErrNilFormula indicates evaluation of a nil formula (or nil operand).
	ErrNilFormula = errors.New("ltl: cannot evaluate nil formula")
	// ErrPosition indicates a position outside [0, trace length).
	ErrPosition = errors.New("ltl: position outside trace")
	// ErrProposition indicates an atom index the trace does not carry.
	ErrProposition = errors.New("ltl: proposition index outside trace alphabet")
)

// Eval decides whether f holds at explicit position t of the lasso trace
// tr. Bounded temporal operators quantify over prefixes or suffixes of
// tr.FuturePos(t); a vacuous conjunction is true, a vacuous disjunction
// false.
//
// This is the reference semantics: the SAT encoding is correct exactly
// when its models agree with Eval on every trace position.
func Eval(f *Formula, tr *trace.Trace, t int) (bool, error) {
	if f == nil {
		return false, ErrNilFormula
	}
	if t < 0 || t >= tr.Length() {
		return false, ErrPosition
	}

	switch f.Label.Kind {
	case KindFalse:
		return false, nil

	case KindProp:
		if f.Label.Prop < 0 || f.Label.Prop >= tr.NumProps() {
			return false, ErrProposition
		}

		return tr.Prop(t, f.Label.Prop), nil

	case KindNot:
		v, err := Eval(f.Left, tr, t)

		return !v, err

	case KindNext:
		return Eval(f.Left, tr, tr.NextPos(t))

	case KindGlobally:
		return evalAll(f.Left, tr, tr.FuturePos(t))

	case KindGloballyLE:
		return evalAll(f.Left, tr, prefix(tr.FuturePos(t), f.Label.Bound))

	case KindGloballyGT:
		return evalAll(f.Left, tr, suffix(tr.FuturePos(t), f.Label.Bound))

	case KindFinallyLE:
		return evalAny(f.Left, tr, prefix(tr.FuturePos(t), f.Label.Bound))

	case KindAnd:
		l, err := Eval(f.Left, tr, t)
		if err != nil || !l {
			return false, err
		}

		return Eval(f.Right, tr, t)

	case KindOr:
		l, err := Eval(f.Left, tr, t)
		if err != nil || l {
			return l, err
		}

		return Eval(f.Right, tr, t)

	case KindImplies:
		l, err := Eval(f.Left, tr, t)
		if err != nil {
			return false, err
		}
		if !l {
			return true, nil
		}

		return Eval(f.Right, tr, t)

	case KindUntilLE:
		return evalUntil(f, tr, t, f.Label.Bound)

	case KindRelease:
		return evalRelease(f, tr, t, 0, len(tr.FuturePos(t)))

	case KindReleaseLE:
		future := tr.FuturePos(t)

		return evalRelease(f, tr, t, 0, min(f.Label.Bound+1, len(future)))

	case KindReleaseGT:
		return evalRelease(f, tr, t, f.Label.Bound+1, len(tr.FuturePos(t)))

	default:
		return false, ErrNilFormula
	}
}

// evalAll is the vacuously-true conjunction of f over the positions.
func evalAll(f *Formula, tr *trace.Trace, positions []int) (bool, error) {
	for _, u := range positions {
		v, err := Eval(f, tr, u)
		if err != nil || !v {
			return false, err
		}
	}

	return true, nil
}

// evalAny is the vacuously-false disjunction of f over the positions.
func evalAny(f *Formula, tr *trace.Trace, positions []int) (bool, error) {
	for _, u := range positions {
		v, err := Eval(f, tr, u)
		if err != nil || v {
			return v, err
		}
	}

	return false, nil
}

// evalUntil: ∃ q ≤ min(k, |F|−1): right at F[q] and left at F[q'] ∀ q' < q.
func evalUntil(f *Formula, tr *trace.Trace, t, k int) (bool, error) {
	future := tr.FuturePos(t)
	for q := 0; q <= min(k, len(future)-1); q++ {
		r, err := Eval(f.Right, tr, future[q])
		if err != nil {
			return false, err
		}
		if !r {
			continue
		}
		held, err := evalAll(f.Left, tr, future[:q])
		if err != nil || held {
			return held, err
		}
	}

	return false, nil
}

// evalRelease: ∀ q in [from, to): right at F[q] or left at some F[q'], q' < q.
func evalRelease(f *Formula, tr *trace.Trace, t, from, to int) (bool, error) {
	future := tr.FuturePos(t)
	for q := from; q < to; q++ {
		r, err := Eval(f.Right, tr, future[q])
		if err != nil {
			return false, err
		}
		if r {
			continue
		}
		released, err := evalAny(f.Left, tr, future[:q])
		if err != nil || !released {
			return false, err
		}
	}

	return true, nil
}

// prefix returns F[0..k] inclusive, clipped to the list.
func prefix(future []int, k int) []int {
	return future[:min(k+1, len(future))]
}

// suffix returns F[k+1..], empty when k+1 is past the end.
func suffix(future []int, k int) []int {
	if k+1 >= len(future) {
		return nil
	}

	return future[k+1:]
}
