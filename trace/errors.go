package trace

import "errors"

var (
	// ErrEmptyTrace indicates a trace with no positions.
	ErrEmptyTrace = errors.New("trace: trace must have at least one position")
	// ErrRaggedTrace indicates positions with differing proposition counts.
	ErrRaggedTrace = errors.New("trace: all positions must carry the same number of propositions")
	// ErrLassoStart indicates a lasso start outside [0, length).
	ErrLassoStart = errors.New("trace: lasso start must lie within the trace")
	// ErrNilTrace indicates a nil entry in a trace list.
	ErrNilTrace = errors.New("trace: nil trace in set")
	// ErrEmptySet indicates a set with neither accepted nor rejected traces.
	ErrEmptySet = errors.New("trace: set must contain at least one trace")
	// ErrPropsMismatch indicates traces with differing proposition counts in one set.
	ErrPropsMismatch = errors.New("trace: all traces in a set must share one proposition count")
	// ErrBadSyntax indicates unparsable sample text.
	ErrBadSyntax = errors.New("trace: malformed sample line")
)
