// Package prefio reads and writes stable-matching instances.
//
// Two formats are supported:
//
//   - FormatText: whitespace-separated integers. First n, then the n×n
//     proposer table row by row, then the n×n receiver table.
//
//     3
//     0 1 2
//     0 1 2
//     0 1 2
//     2 1 0
//     1 2 0
//     0 1 2
//
//   - FormatYAML: a document with keys n, proposers and receivers.
//
// Loaders check shape only (token syntax, declared size vs. supplied rows);
// permutation checks belong to galeshapley.New.
package prefio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvmatch/galeshapley"
)

var (
	// ErrMalformedInput indicates a premature end of input, a non-integer
	// token, a size outside [0, MaxSize], or trailing data.
	ErrMalformedInput = errors.New("prefio: malformed input")

	// ErrUnknownFormat indicates an unrecognised format name.
	ErrUnknownFormat = errors.New("prefio: unknown format")
)

// MaxSize is the largest n a loader accepts. Two MaxSize×MaxSize int tables
// take 16 GiB, so anything beyond it is treated as a corrupt size token.
const MaxSize = 1 << 15

// checkSize rejects a declared n outside [0, MaxSize].
func checkSize(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: negative size %d", ErrMalformedInput, n)
	case n > MaxSize:
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrMalformedInput, n, MaxSize)
	}
	return nil
}

// Format selects an instance encoding.
type Format int

const (
	FormatText Format = iota
	FormatYAML
)

// String returns the flag spelling of f.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps "text"/"txt" and "yaml"/"yml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Instance is one stable-matching problem.
type Instance struct {
	N         int     `yaml:"n"`
	Proposers [][]int `yaml:"proposers"`
	Receivers [][]int `yaml:"receivers"`
}

// Engine validates the instance and builds a matching engine.
func (in *Instance) Engine() (*galeshapley.Engine, error) {
	return galeshapley.New(in.Proposers, in.Receivers)
}

// Read decodes an instance in the given format.
func Read(r io.Reader, f Format) (*Instance, error) {
	switch f {
	case FormatText:
		return ReadText(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Write encodes an instance in the given format.
func Write(w io.Writer, in *Instance, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, in)
	case FormatYAML:
		return WriteYAML(w, in)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// NewInstance wraps two tables; N is taken from the proposer table.
func NewInstance(proposers, receivers [][]int) *Instance {
	return &Instance{N: len(proposers), Proposers: proposers, Receivers: receivers}
}
