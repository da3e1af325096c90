package encoder

import (
	"errors"

	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
	"github.com/katalvlaran/ltlearn/trace"
)

var (
	// ErrInvalidInput indicates an unusable depth or trace set. Trace
	// level defects (zero length, bad lasso starts, ragged rows) cannot
	// reach the encoder: the trace constructors reject them.
	ErrInvalidInput = errors.New("encoder: invalid input")
	// ErrMalformedModel indicates a model with zero or several true label
	// (or child) indicators at one node. Impossible under the structural
	// constraints; seeing it means the model does not belong to this
	// problem.
	ErrMalformedModel = errors.New("encoder: malformed model")
)

// Options configures an encoding.
//
//	Solver - back-end configuration, see sat.Options.
type Options struct {
	Solver sat.Options
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{Solver: sat.DefaultOptions()}
}

// Result is the outcome of Problem.Solve.
//
//	StatusSat     - Formula is the reconstructed classifier.
//	StatusUnsat   - Core names the clashing constraint tags.
//	StatusUnknown - the solve was cancelled; both other fields are nil.
type Result struct {
	Status  sat.Status
	Formula *ltl.Formula
	Core    []string
}

// xKey indexes the label-indicator family: node i carries label.
type xKey struct {
	node  int
	label ltl.Label
}

// Problem is one encoded synthesis instance: the variables and
// constraints for a fixed depth and trace set, owning one solver.
// Build with Encode; the zero value is not usable.
type Problem struct {
	depth  int
	set    *trace.Set
	cat    *ltl.Catalog
	solver *sat.Solver

	labels []ltl.Label      // catalog enumeration order, cached
	traces []*trace.Trace   // accepted then rejected; index = τ in tags
	x      map[xKey]sat.Var // label indicators (sparse key space)
	l      [][]sat.Var      // l[i][j], left-child indicators, j < i
	r      [][]sat.Var      // r[i][j], right-child indicators, j < i
	y      [][][]sat.Var    // y[i][τ][t], semantic valuations
}

// Depth returns the node count D of the encoded DAG.
func (p *Problem) Depth() int { return p.depth }

// Catalog returns the operator catalog the encoding ranges over.
func (p *Problem) Catalog() *ltl.Catalog { return p.cat }

// Tags returns every emitted tracking tag, in emission order.
func (p *Problem) Tags() []string { return p.solver.Tags() }
