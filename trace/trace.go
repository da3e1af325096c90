package trace

// Trace is an immutable finite lasso trace: explicit boolean valuations
// for positions [0..Length()), with positions beyond the end repeating
// [LassoStart()..Length()) cyclically.
//
// Construct with New; the zero value is not usable.
type Trace struct {
	values     [][]bool // values[t][p], rectangular
	lassoStart int      // 0 ≤ lassoStart < len(values)
	future     [][]int  // future[t] = FuturePos(t), precomputed
}

// New builds a Trace from a rectangular valuation matrix (values[t][p])
// and a lasso start position. The input is deep-copied, so callers may
// reuse their slices freely.
//
// Returns ErrEmptyTrace, ErrRaggedTrace or ErrLassoStart on invalid input.
// A proposition count of zero is legal: such traces admit only the
// constant-false formula and its derivatives.
func New(values [][]bool, lassoStart int) (*Trace, error) {
	// 1) At least one position.
	length := len(values)
	if length == 0 {
		return nil, ErrEmptyTrace
	}

	// 2) Rectangular rows, copied into owned storage.
	numProps := len(values[0])
	owned := make([][]bool, length)
	for t, row := range values {
		if len(row) != numProps {
			return nil, ErrRaggedTrace
		}
		owned[t] = make([]bool, numProps)
		copy(owned[t], row)
	}

	// 3) Lasso start must name an explicit position.
	if lassoStart < 0 || lassoStart >= length {
		return nil, ErrLassoStart
	}

	tr := &Trace{values: owned, lassoStart: lassoStart}

	// 4) Precompute FuturePos for every position: downstream encodings
	//    index these lists once per operator, per node, per time step.
	tr.future = make([][]int, length)
	for t := 0; t < length; t++ {
		tr.future[t] = tr.unroll(t)
	}

	return tr, nil
}

// Length returns the number of explicit positions.
func (tr *Trace) Length() int { return len(tr.values) }

// NumProps returns the number of propositions per position.
func (tr *Trace) NumProps() int { return len(tr.values[0]) }

// LassoStart returns the position the trace loops back to.
func (tr *Trace) LassoStart() int { return tr.lassoStart }

// Prop reports the value of proposition p at explicit position t.
// Indices out of range panic, as with any slice access.
func (tr *Trace) Prop(t, p int) bool { return tr.values[t][p] }

// NextPos returns the successor of position t under the lasso:
// t+1 while explicit positions remain, the lasso start otherwise.
func (tr *Trace) NextPos(t int) int {
	if t+1 < len(tr.values) {
		return t + 1
	}

	return tr.lassoStart
}

// FuturePos returns the ordered positions reachable from t by iterating
// NextPos until the cycle closes, each position exactly once. The result
// has length Length() − min(t, LassoStart()) and is never empty.
//
// The returned slice is shared and must not be modified.
func (tr *Trace) FuturePos(t int) []int { return tr.future[t] }

// unroll computes FuturePos(t) by walking NextPos until a repeat.
func (tr *Trace) unroll(t int) []int {
	seen := make([]bool, len(tr.values))
	positions := make([]int, 0, len(tr.values)-min(t, tr.lassoStart))
	for u := t; !seen[u]; u = tr.NextPos(u) {
		seen[u] = true
		positions = append(positions, u)
	}

	return positions
}
