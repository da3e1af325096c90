package sat

import (
	"context"
	"fmt"

	"github.com/crillab/gophersat/bf"
)

// Solver accumulates named variables and tag-tracked assertions, then
// decides satisfiability of their conjunction. Not safe for concurrent
// use; Solve may be called repeatedly (assertions are append-only).
type Solver struct {
	opts    Options
	vars    map[Var]struct{}
	order   []Var // registration order, for deterministic model domains
	asserts []assertion
	tags    map[string]struct{}
}

// assertion is one tracked constraint.
type assertion struct {
	tag string
	f   Formula
}

// New returns an empty solver with the given options.
func New(opts Options) *Solver {
	return &Solver{
		opts: opts,
		vars: make(map[Var]struct{}),
		tags: make(map[string]struct{}),
	}
}

// Bool registers a fresh variable under the given name.
// Names must be unique per solver; duplicates return ErrDuplicateVar.
func (s *Solver) Bool(name string) (Var, error) {
	v := Var(name)
	if _, dup := s.vars[v]; dup {
		return v, fmt.Errorf("%w: %q", ErrDuplicateVar, name)
	}
	s.vars[v] = struct{}{}
	s.order = append(s.order, v)

	return v, nil
}

// NumVars returns the number of registered variables.
func (s *Solver) NumVars() int { return len(s.order) }

// Assert records f under the tracking tag. Tags name assertions in unsat
// cores and must be unique and non-empty.
func (s *Solver) Assert(tag string, f Formula) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if _, dup := s.tags[tag]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}
	s.tags[tag] = struct{}{}
	s.asserts = append(s.asserts, assertion{tag: tag, f: f})

	return nil
}

// Tags returns every asserted tracking tag in assertion order.
func (s *Solver) Tags() []string {
	out := make([]string, len(s.asserts))
	for i, a := range s.asserts {
		out[i] = a.tag
	}

	return out
}

// Solve decides the conjunction of all assertions.
//
//   - StatusSat: Result.Model is total over registered variables.
//   - StatusUnsat: Result.Core names the blamed tags (minimized per
//     Options.MinimizeCore).
//   - StatusUnknown: ctx was cancelled before the back end answered; the
//     abandoned back-end run completes in the background.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	// 1) Decide the full assertion set.
	active := make([]bool, len(s.asserts))
	for i := range active {
		active[i] = true
	}
	model, unknown, err := s.run(ctx, active)
	if err != nil {
		return Result{}, err
	}
	if unknown {
		return Result{Status: StatusUnknown}, nil
	}
	if model != nil {
		return Result{Status: StatusSat, Model: s.totalModel(model)}, nil
	}

	// 2) UNSAT: blame tags, optionally minimizing by deletion. Dropping
	//    an assertion and staying UNSAT proves it irrelevant; order is
	//    assertion order so cores are deterministic.
	if s.opts.MinimizeCore {
		for i := range s.asserts {
			active[i] = false
			m, unk, err := s.run(ctx, active)
			if err != nil {
				return Result{}, err
			}
			if unk {
				return Result{Status: StatusUnknown}, nil
			}
			if m != nil {
				active[i] = true
			}
		}
	}

	core := make([]string, 0, len(s.asserts))
	for i, a := range s.asserts {
		if active[i] {
			core = append(core, a.tag)
		}
	}

	return Result{Status: StatusUnsat, Core: core}, nil
}

// run hands the conjunction of the active assertions to the back end,
// watching ctx. The back end cannot be interrupted, so on cancellation
// its goroutine is left to finish on its own.
func (s *Solver) run(ctx context.Context, active []bool) (model map[string]bool, unknown bool, err error) {
	if ctx.Err() != nil {
		return nil, true, nil
	}

	var conj bf.Formula = bf.True
	for i, a := range s.asserts {
		if active[i] {
			conj = bf.And(conj, a.f.f)
		}
	}

	type answer struct {
		model map[string]bool
		err   error
	}
	done := make(chan answer, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- answer{err: fmt.Errorf("%w: %v", ErrBackend, r)}
			}
		}()
		done <- answer{model: bf.Solve(conj)}
	}()

	select {
	case <-ctx.Done():
		return nil, true, nil
	case a := <-done:
		return a.model, false, a.err
	}
}

// totalModel extends the back end's partial assignment to every
// registered variable; unconstrained variables default to false.
func (s *Solver) totalModel(assignment map[string]bool) Model {
	m := make(Model, len(s.order))
	for _, v := range s.order {
		m[v] = assignment[string(v)]
	}

	return m
}
