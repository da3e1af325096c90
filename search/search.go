package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ltlearn/encoder"
	"github.com/katalvlaran/ltlearn/ltl"
	"github.com/katalvlaran/ltlearn/sat"
	"github.com/katalvlaran/ltlearn/trace"
)

var (
	// ErrBadOptions indicates an invalid depth range.
	ErrBadOptions = errors.New("search: depth bounds must satisfy 1 <= MinDepth <= MaxDepth")
	// ErrNoSeparator indicates no formula within the depth bounds
	// classifies the samples.
	ErrNoSeparator = errors.New("search: no separating formula within depth bounds")
	// ErrInterrupted indicates the search was cancelled mid-depth.
	ErrInterrupted = errors.New("search: interrupted before an answer")
)

// Options configures the depth iteration.
//
//	MinDepth - first DAG size to try (≥ 1).
//	MaxDepth - last DAG size to try, inclusive.
//	Verbose  - print one line per attempted depth via fmt.Printf.
//	Encoder  - forwarded to encoder.Encode.
type Options struct {
	MinDepth int
	MaxDepth int
	Verbose  bool
	Encoder  encoder.Options
}

// DefaultOptions returns the recommended configuration.
//
//	MinDepth: 1
//	MaxDepth: 8
//	Verbose:  false
func DefaultOptions() Options {
	return Options{
		MinDepth: 1,
		MaxDepth: 8,
		Encoder:  encoder.DefaultOptions(),
	}
}

// Validate checks the depth bounds.
func (o *Options) Validate() error {
	if o.MinDepth < 1 || o.MaxDepth < o.MinDepth {
		return ErrBadOptions
	}

	return nil
}

// Result is a successful synthesis.
//
//	Formula - the classifier: true at position 0 of every accepted
//	          trace, false at position 0 of every rejected one.
//	Depth   - the DAG size it was found at (minimal by construction).
type Result struct {
	Formula *ltl.Formula
	Depth   int
}

// Learn searches depths MinDepth..MaxDepth for a formula separating the
// sample set. Unsatisfiable depths advance the search; exhausting the
// range returns ErrNoSeparator wrapped with the last depth's core, and
// cancellation returns ErrInterrupted.
func Learn(ctx context.Context, set *trace.Set, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var lastCore []string
	for depth := opts.MinDepth; depth <= opts.MaxDepth; depth++ {
		if opts.Verbose {
			fmt.Printf("search: trying depth %d\n", depth)
		}

		problem, err := encoder.Encode(depth, set, opts.Encoder)
		if err != nil {
			return Result{}, err
		}
		res, err := problem.Solve(ctx)
		if err != nil {
			return Result{}, err
		}

		switch res.Status {
		case sat.StatusSat:
			if opts.Verbose {
				fmt.Printf("search: depth %d: %s\n", depth, res.Formula)
			}

			return Result{Formula: res.Formula, Depth: depth}, nil

		case sat.StatusUnsat:
			lastCore = res.Core

		default:
			return Result{}, ErrInterrupted
		}
	}

	return Result{}, fmt.Errorf("%w (last core: %v)", ErrNoSeparator, lastCore)
}
