// Package lvmatch is a small toolkit for two-sided stable matching:
// Gale–Shapley deferred acceptance, its correctness checks, and the I/O
// around it.
//
// What is in the box
//
//	• Engine: validated preference tables, O(1) receiver rank lookup,
//	  proposer-optimal stable matching in at most n² proposals
//	• Checks: blocking-pair search, stability and bijection validation
//	• Generators: seeded random instances for tests and benchmarks
//	• I/O: whitespace text and YAML instances, pairing report, decision traces
//	• CLI: lvmatch [-d] and lvmatch gen
//
// Everything is organized under these packages:
//
//	galeshapley/        — the matching engine, stability checks, instance generator
//	prefio/             — instance readers and writers (text, YAML)
//	report/             — pairing report and trace sinks (text, zerolog, in-memory)
//	internal/config/    — TOML configuration for the CLI
//	internal/logging/   — zerolog setup
//	cmd/lvmatch/        — command-line front end
//	examples/residency/ — a worked scenario with named agents
//
// Quick example:
//
//	res, err := galeshapley.Match(
//	    [][]int{{0, 1}, {0, 1}}, // proposers rank receivers
//	    [][]int{{1, 0}, {0, 1}}, // receivers rank proposers
//	)
//	// res.Matching == Matching{1, 0}: receiver 0 ↔ proposer 1, receiver 1 ↔ proposer 0
//
//	go get github.com/katalvlaran/lvmatch
package lvmatch
