// Package report renders matching results and trace decisions.
//
// Sinks:
//
//   - WriteMatching: the final "P<p> <-marries-> R<r>" listing.
//   - TextSink: line-per-decision debug trace in plain text.
//   - LogTracer: one zerolog debug event per decision.
//   - Collector: in-memory decisions, mostly for tests.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvmatch/galeshapley"
)

const rule = "---------------------------------"

// WriteMatching writes the banner and one line per receiver in id order.
func WriteMatching(w io.Writer, m galeshapley.Matching) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\nFinal matching\n%s\n", rule, rule)
	for r, p := range m {
		if p == galeshapley.Free {
			fmt.Fprintf(bw, "R%d unmatched\n", r)
			continue
		}
		fmt.Fprintf(bw, "P%d <-marries-> R%d\n", p, r)
	}
	return bw.Flush()
}

// WriteRunHeader writes the banner printed before a run starts.
func WriteRunHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\nRunning GS Algorithm\n\n", rule)
	return err
}

// TextSink prints decisions as
//
//	Debug:: proposer 1 proposes receiver 0 while prior is 0 --> displaced
//
// A free prior prints as -1. The first write error stops further output
// and is kept for Err.
type TextSink struct {
	w   io.Writer
	err error
}

// NewTextSink returns a sink writing to w.
func NewTextSink(w io.Writer) *TextSink { return &TextSink{w: w} }

// Tracer adapts the sink to galeshapley.WithTrace.
func (s *TextSink) Tracer() galeshapley.Tracer {
	return func(d galeshapley.Decision) {
		if s.err != nil {
			return
		}
		if d.Outcome == galeshapley.Exhausted {
			_, s.err = fmt.Fprintf(s.w, "Debug:: proposer %d has no receivers left --> %s\n", d.Proposer, d.Outcome)
			return
		}
		_, s.err = fmt.Fprintf(s.w, "Debug:: proposer %d proposes receiver %d while prior is %d --> %s\n",
			d.Proposer, d.Receiver, d.Prior, d.Outcome)
	}
}

// Err returns the first write error, if any.
func (s *TextSink) Err() error { return s.err }

// LogTracer emits each decision as a zerolog debug event.
func LogTracer(log zerolog.Logger) galeshapley.Tracer {
	return func(d galeshapley.Decision) {
		ev := log.Debug().
			Int("step", d.Step).
			Int("proposer", d.Proposer).
			Str("outcome", d.Outcome.String())
		if d.Receiver != galeshapley.Free {
			ev = ev.Int("receiver", d.Receiver)
		}
		if d.Prior != galeshapley.Free {
			ev = ev.Int("prior", d.Prior)
		}
		ev.Msg("proposal")
	}
}

// Collector keeps decisions in memory. The zero value is ready to use.
type Collector struct {
	mu        sync.Mutex
	decisions []galeshapley.Decision
}

// Tracer returns a tracer appending to c.
func (c *Collector) Tracer() galeshapley.Tracer {
	return func(d galeshapley.Decision) {
		c.mu.Lock()
		c.decisions = append(c.decisions, d)
		c.mu.Unlock()
	}
}

// Decisions returns a copy of everything collected so far.
func (c *Collector) Decisions() []galeshapley.Decision {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]galeshapley.Decision(nil), c.decisions...)
}

// Tee fans one decision out to several tracers in order; nil entries are skipped.
func Tee(tracers ...galeshapley.Tracer) galeshapley.Tracer {
	var live []galeshapley.Tracer
	for _, t := range tracers {
		if t != nil {
			live = append(live, t)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(d galeshapley.Decision) {
		for _, t := range live {
			t(d)
		}
	}
}
