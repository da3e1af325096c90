package trace

// Set is an immutable pair of classified trace lists: accepted traces the
// learned formula must satisfy at position 0, rejected traces it must
// falsify there. All traces share one proposition count.
//
// Construct with NewSet or Parse; the zero value is not usable.
type Set struct {
	accepted []*Trace
	rejected []*Trace
	numProps int
	maxLen   int
}

// NewSet validates and assembles a trace set. Either list may be empty,
// but not both. Trace order is preserved: downstream encodings index
// traces as accepted-then-rejected.
//
// Returns ErrEmptySet, ErrNilTrace or ErrPropsMismatch on invalid input.
func NewSet(accepted, rejected []*Trace) (*Set, error) {
	// 1) At least one trace overall.
	if len(accepted)+len(rejected) == 0 {
		return nil, ErrEmptySet
	}

	s := &Set{
		accepted: make([]*Trace, len(accepted)),
		rejected: make([]*Trace, len(rejected)),
		numProps: -1,
	}
	copy(s.accepted, accepted)
	copy(s.rejected, rejected)

	// 2) Every trace present, one shared proposition count, track max length.
	for _, tr := range s.All() {
		if tr == nil {
			return nil, ErrNilTrace
		}
		if s.numProps == -1 {
			s.numProps = tr.NumProps()
		} else if tr.NumProps() != s.numProps {
			return nil, ErrPropsMismatch
		}
		if tr.Length() > s.maxLen {
			s.maxLen = tr.Length()
		}
	}

	return s, nil
}

// Accepted returns the accepted traces in input order.
func (s *Set) Accepted() []*Trace {
	out := make([]*Trace, len(s.accepted))
	copy(out, s.accepted)

	return out
}

// Rejected returns the rejected traces in input order.
func (s *Set) Rejected() []*Trace {
	out := make([]*Trace, len(s.rejected))
	copy(out, s.rejected)

	return out
}

// All returns accepted traces followed by rejected ones; the index of a
// trace in this list is its identity in encodings and tracking tags.
func (s *Set) All() []*Trace {
	out := make([]*Trace, 0, len(s.accepted)+len(s.rejected))
	out = append(out, s.accepted...)
	out = append(out, s.rejected...)

	return out
}

// NumAccepted returns the number of accepted traces.
func (s *Set) NumAccepted() int { return len(s.accepted) }

// NumProps returns the proposition count shared by all traces.
func (s *Set) NumProps() int { return s.numProps }

// MaxLength returns the maximum trace length in the set.
func (s *Set) MaxLength() int { return s.maxLen }
