package encoder

import "github.com/katalvlaran/ltlearn/sat"

// Tracking tags of the two acceptance assertions. They are the tags an
// inherently unseparable sample blames, so they are part of the API.
const (
	TagAccepting = "accepting"
	TagRejecting = "rejecting"
)

// assertAcceptance pins the root valuation at position 0: true on every
// accepted trace, false on every rejected one. Either side may be empty,
// in which case its assertion is vacuously true but still tagged.
func (p *Problem) assertAcceptance() error {
	root := p.depth - 1

	accepting := make([]sat.Formula, p.set.NumAccepted())
	for traceIdx := range accepting {
		accepting[traceIdx] = p.ylit(root, traceIdx, 0)
	}
	if err := p.solver.Assert(TagAccepting, sat.And(accepting...)); err != nil {
		return err
	}

	rejecting := make([]sat.Formula, len(p.traces)-p.set.NumAccepted())
	for n := range rejecting {
		rejecting[n] = sat.Not(p.ylit(root, p.set.NumAccepted()+n, 0))
	}

	return p.solver.Assert(TagRejecting, sat.And(rejecting...))
}
