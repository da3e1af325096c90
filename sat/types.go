package sat

import (
	"errors"

	"github.com/crillab/gophersat/bf"
)

var (
	// ErrDuplicateVar indicates a variable name registered twice.
	ErrDuplicateVar = errors.New("sat: variable name already registered")
	// ErrDuplicateTag indicates an assertion tag used twice.
	ErrDuplicateTag = errors.New("sat: tracking tag already used")
	// ErrEmptyTag indicates an assertion with an empty tracking tag.
	ErrEmptyTag = errors.New("sat: tracking tag must be non-empty")
	// ErrBackend wraps a failure inside the SAT back end.
	ErrBackend = errors.New("sat: back end failure")
)

// Var names a registered Boolean variable.
type Var string

// Formula is a propositional formula over registered variables. Build
// with the package combinators; the zero value is not usable.
type Formula struct {
	f bf.Formula
}

// Model is a total assignment over the registered variables. Variables
// the back end left unconstrained are false.
type Model map[Var]bool

// Status is the three-valued solve outcome.
type Status uint8

const (
	// StatusSat: a model was found.
	StatusSat Status = iota
	// StatusUnsat: no model exists; Result.Core names responsible tags.
	StatusUnsat
	// StatusUnknown: the solve was cancelled before an answer.
	StatusUnknown
)

// String renders the status for logs and test output.
func (s Status) String() string {
	switch s {
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Result carries the outcome of one Solve call. Model is set only for
// StatusSat; Core only for StatusUnsat.
type Result struct {
	Status Status
	Model  Model
	Core   []string
}

// Options configures a Solver.
//
//	MinimizeCore - on UNSAT, shrink the core by deletion (one re-solve
//	               per tag); when false the core is every asserted tag.
type Options struct {
	MinimizeCore bool
}

// DefaultOptions returns the recommended configuration.
//
//	MinimizeCore: true
func DefaultOptions() Options {
	return Options{MinimizeCore: true}
}
