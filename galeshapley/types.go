// Package galeshapley defines the types, sentinel errors and options shared by
// the deferred-acceptance engine, the stability checks and the instance
// generator.
package galeshapley

import (
	"errors"
	"fmt"
)

// Free marks a receiver that holds no engagement.
const Free = -1

// Sentinel errors returned by the galeshapley package.
var (
	// ErrInvalidDimension indicates that the two preference tables disagree in
	// size, that a row has the wrong length, or that n < 1.
	ErrInvalidDimension = errors.New("galeshapley: invalid dimension")

	// ErrInvalidPreferenceTable indicates that a preference row is not a
	// permutation of [0, n). Inspect the wrapping *RowError for the location.
	ErrInvalidPreferenceTable = errors.New("galeshapley: invalid preference table")

	// ErrNotPerfect indicates that a Matching is not a bijection over [0, n).
	ErrNotPerfect = errors.New("galeshapley: matching is not perfect")
)

// Table names a preference table in a RowError.
type Table string

const (
	ProposerTable Table = "proposer" // rows rank receivers
	ReceiverTable Table = "receiver" // rows rank proposers
)

// RowError reports the first offending entry of a preference row.
// It unwraps to ErrInvalidPreferenceTable.
type RowError struct {
	Table  Table
	Row    int
	Col    int
	Value  int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%v: %s row %d col %d: value %d: %s",
		ErrInvalidPreferenceTable, e.Table, e.Row, e.Col, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidPreferenceTable.
func (e *RowError) Unwrap() error { return ErrInvalidPreferenceTable }

// Matching maps each receiver id (index) to its engaged proposer id, or Free.
type Matching []int

// Pair is one (proposer, receiver) engagement.
type Pair struct {
	Proposer int
	Receiver int
}

// Partners returns the inverse view: proposer id → receiver id (Free if unmatched).
//
// Complexity: O(n).
func (m Matching) Partners() []int {
	var (
		out = make([]int, len(m))
		r   int
		p   int
	)
	for p = range out {
		out[p] = Free
	}
	for r, p = range m {
		if p >= 0 && p < len(out) {
			out[p] = r
		}
	}

	return out
}

// Pairs lists the engagements in ascending receiver order, skipping free receivers.
func (m Matching) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m))
	for r, p := range m {
		if p == Free {
			continue
		}
		pairs = append(pairs, Pair{Proposer: p, Receiver: r})
	}

	return pairs
}

// Clone returns an independent copy of m.
func (m Matching) Clone() Matching {
	return append(Matching(nil), m...)
}

// Outcome classifies a single proposal.
type Outcome uint8

const (
	Engaged   Outcome = iota // receiver was free and accepted
	Displaced                // receiver dropped its prior proposer for this one
	Rejected                 // receiver kept its prior proposer
	Exhausted                // proposer had no receivers left; removed from the active set
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Engaged:
		return "engaged"
	case Displaced:
		return "displaced"
	case Rejected:
		return "rejected"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Decision is one trace record emitted by Run.
// For an Exhausted decision Receiver and Prior are Free.
type Decision struct {
	Step     int // 1-based loop iteration
	Proposer int
	Receiver int
	Prior    int // proposer held by Receiver before this step, or Free
	Outcome  Outcome
}

// Tracer observes decisions in the order they are made. It must not retain
// or mutate engine state; its return has no effect on the run.
type Tracer func(Decision)

// Option configures a single Run.
type Option func(*Options)

// Options holds per-run configuration.
type Options struct {
	// Trace, if non-nil, receives one Decision per loop iteration.
	// A nil Trace is the "trace=false" mode: pure computation.
	Trace Tracer
}

// DefaultOptions returns Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Trace: nil}
}

// WithTrace installs fn as the decision tracer. Passing nil disables tracing.
func WithTrace(fn Tracer) Option {
	return func(o *Options) {
		o.Trace = fn
	}
}

// Result is the outcome of one Run.
type Result struct {
	// Matching maps receiver → proposer.
	Matching Matching

	// Proposals counts proposal attempts; never exceeds n².
	Proposals int

	// Rejections counts proposals refused in favour of the prior proposer.
	Rejections int

	// Displacements counts proposals that freed a previously engaged proposer.
	Displacements int

	// Exhausted lists proposers that ran out of receivers, in removal order.
	// Always empty for complete preference tables.
	Exhausted []int
}
