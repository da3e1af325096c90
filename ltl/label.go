package ltl

import "strconv"

// Kind discriminates the label sum type. Parametric kinds carry a bound,
// the proposition kind carries an index; all other payload fields are zero.
type Kind uint8

const (
	// KindFalse is the zeroary constant ⊥.
	KindFalse Kind = iota
	// KindProp is an atomic proposition x0, x1, …
	KindProp
	// KindNot is atomic negation.
	KindNot
	// KindNext is the next-position operator X.
	KindNext
	// KindGlobally is unbounded G.
	KindGlobally
	// KindGloballyLE is parametric G≤k.
	KindGloballyLE
	// KindGloballyGT is parametric G>k.
	KindGloballyGT
	// KindFinallyLE is parametric F≤k.
	KindFinallyLE
	// KindAnd is conjunction.
	KindAnd
	// KindOr is disjunction.
	KindOr
	// KindImplies is implication; not in the default catalog.
	KindImplies
	// KindRelease is unbounded R.
	KindRelease
	// KindUntilLE is parametric U≤k.
	KindUntilLE
	// KindReleaseLE is parametric R≤k.
	KindReleaseLE
	// KindReleaseGT is parametric R>k.
	KindReleaseGT
)

// Class partitions labels by the shape of the syntax node they head.
type Class uint8

const (
	// ClassZeroary labels head leaves that are operators (only ⊥).
	ClassZeroary Class = iota
	// ClassAtom labels head proposition leaves.
	ClassAtom
	// ClassUnary labels take exactly one operand.
	ClassUnary
	// ClassBinary labels take exactly two operands.
	ClassBinary
)

// Label identifies one node labeling: an operator, possibly with an
// integer bound, or a proposition index. Labels are comparable by value
// and safe to use as map keys.
type Label struct {
	Kind  Kind
	Bound int // bound k of a parametric operator, else 0
	Prop  int // proposition index of a KindProp label, else 0
}

// Fixed, bound-free labels.
var (
	// Bot is the constant-false label ⊥.
	Bot = Label{Kind: KindFalse}
	// Not is atomic negation.
	Not = Label{Kind: KindNot}
	// Next is the X operator.
	Next = Label{Kind: KindNext}
	// Globally is the unbounded G operator.
	Globally = Label{Kind: KindGlobally}
	// And is conjunction.
	And = Label{Kind: KindAnd}
	// Or is disjunction.
	Or = Label{Kind: KindOr}
	// Implies is implication (catalog opt-in).
	Implies = Label{Kind: KindImplies}
	// Release is the unbounded R operator.
	Release = Label{Kind: KindRelease}
)

// Prop returns the label of proposition p.
func Prop(p int) Label { return Label{Kind: KindProp, Prop: p} }

// GloballyLE returns the G≤k label.
func GloballyLE(k int) Label { return Label{Kind: KindGloballyLE, Bound: k} }

// GloballyGT returns the G>k label.
func GloballyGT(k int) Label { return Label{Kind: KindGloballyGT, Bound: k} }

// FinallyLE returns the F≤k label.
func FinallyLE(k int) Label { return Label{Kind: KindFinallyLE, Bound: k} }

// UntilLE returns the U≤k label.
func UntilLE(k int) Label { return Label{Kind: KindUntilLE, Bound: k} }

// ReleaseLE returns the R≤k label.
func ReleaseLE(k int) Label { return Label{Kind: KindReleaseLE, Bound: k} }

// ReleaseGT returns the R>k label.
func ReleaseGT(k int) Label { return Label{Kind: KindReleaseGT, Bound: k} }

// Class reports which structural class l belongs to. Total over all kinds.
func (l Label) Class() Class {
	switch l.Kind {
	case KindFalse:
		return ClassZeroary
	case KindProp:
		return ClassAtom
	case KindNot, KindNext, KindGlobally, KindGloballyLE, KindGloballyGT, KindFinallyLE:
		return ClassUnary
	default:
		return ClassBinary
	}
}

// Arity returns the operand count demanded by l: 0, 1 or 2.
func (l Label) Arity() int {
	switch l.Class() {
	case ClassZeroary, ClassAtom:
		return 0
	case ClassUnary:
		return 1
	default:
		return 2
	}
}

// Parametric reports whether l carries a bound k.
func (l Label) Parametric() bool {
	switch l.Kind {
	case KindGloballyLE, KindGloballyGT, KindFinallyLE, KindUntilLE, KindReleaseLE, KindReleaseGT:
		return true
	default:
		return false
	}
}

// String renders the label in the conventional glyph form: "⊥", "!", "&",
// "|", "->", "X", "G", "R", "G≤2", "G>2", "F≤2", "U≤2", "R≤2", "R>2", "x0".
func (l Label) String() string {
	switch l.Kind {
	case KindFalse:
		return "⊥"
	case KindProp:
		return "x" + strconv.Itoa(l.Prop)
	case KindNot:
		return "!"
	case KindNext:
		return "X"
	case KindGlobally:
		return "G"
	case KindGloballyLE:
		return "G≤" + strconv.Itoa(l.Bound)
	case KindGloballyGT:
		return "G>" + strconv.Itoa(l.Bound)
	case KindFinallyLE:
		return "F≤" + strconv.Itoa(l.Bound)
	case KindAnd:
		return "&"
	case KindOr:
		return "|"
	case KindImplies:
		return "->"
	case KindRelease:
		return "R"
	case KindUntilLE:
		return "U≤" + strconv.Itoa(l.Bound)
	case KindReleaseLE:
		return "R≤" + strconv.Itoa(l.Bound)
	default:
		return "R>" + strconv.Itoa(l.Bound)
	}
}
