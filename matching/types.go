// Package matching: tunable options, sentinel errors and result types
// shared by the Phased and SinglePath solvers.
package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maxmatch/core"
)

// Sentinel errors for solver execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// BootstrapMode selects the greedy pass that seeds the matching before
// the exact search runs. Any mode yields a valid starting matching; the
// mode only influences how many exact phases follow.
type BootstrapMode int

const (
	// BootstrapNone skips greedy seeding; the exact solver starts from
	// the empty matching.
	BootstrapNone BootstrapMode = iota

	// BootstrapIndex pairs each free vertex, in natural index order, with
	// its lowest-indexed still-free neighbor.
	BootstrapIndex

	// BootstrapDegree pairs free vertices in ascending-degree order with
	// their lowest-degree still-free neighbor — a lower-variance
	// heuristic on skewed degree distributions.
	BootstrapDegree
)

// String returns the CLI-facing name of the mode.
func (b BootstrapMode) String() string {
	switch b {
	case BootstrapNone:
		return "none"
	case BootstrapIndex:
		return "index"
	case BootstrapDegree:
		return "degree"
	default:
		return fmt.Sprintf("BootstrapMode(%d)", int(b))
	}
}

// Option configures solver behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// the solver is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks shared by both solvers.
// Use DefaultOptions() to obtain production-safe defaults.
type Options struct {
	// Bootstrap selects the greedy seeding pass. Default BootstrapIndex.
	Bootstrap BootstrapMode

	// OnPhase, if set, is called after every phase that augmented the
	// matching (or, for SinglePath, after every successful search) with
	// the 1-based phase number and the cardinality at that point.
	OnPhase func(phase, matched int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - BootstrapIndex seeding
//   - no-op OnPhase hook.
func DefaultOptions() Options {
	return Options{
		Bootstrap: BootstrapIndex,
		OnPhase:   func(int, int) {},
	}
}

// WithBootstrap sets the greedy seeding mode. An unknown mode is an
// option violation.
func WithBootstrap(mode BootstrapMode) Option {
	return func(o *Options) {
		switch mode {
		case BootstrapNone, BootstrapIndex, BootstrapDegree:
			o.Bootstrap = mode
		default:
			o.err = fmt.Errorf("%w: unknown bootstrap mode %d", ErrOptionViolation, int(mode))
		}
	}
}

// WithOnPhase registers a per-phase observation hook.
func WithOnPhase(fn func(phase, matched int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// Result is the outcome of a solve.
type Result struct {
	// Matching is the final pairing. Ownership transfers to the caller.
	Matching *core.Matching

	// Phases is the number of forest-growth passes executed, including
	// the final pass that found nothing.
	Phases int

	// Augmentations counts applied augmenting paths; the final matching
	// cardinality exceeds the bootstrapped one by exactly this number.
	Augmentations int
}

// resolve builds Options from functional arguments and validates them.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
