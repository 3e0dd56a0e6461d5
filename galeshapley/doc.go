// Package galeshapley computes a stable matching between two equal-sized sets
// of agents, proposers and receivers, with the Gale–Shapley deferred-acceptance
// procedure.
//
// What:
//
//   - New validates an n×n proposer table and an n×n receiver table (row i is
//     agent i's ranking, most preferred first) and builds the receiver
//     priority lookup lookup[r][p] = rank of p for r.
//   - Engine.Run executes the propose/reject loop and returns the
//     proposer-optimal stable matching as receiver → proposer.
//   - BlockingPairs / IsStable / ValidateMatching check any matching.
//   - RandomPreferences / RandomInstance generate seeded test instances.
//
// Guarantees:
//
//   - Validity: the result is a bijection over [0, n).
//   - Stability: no proposer and receiver both prefer each other to their partners.
//   - Optimality: every proposer gets its best partner over all stable matchings.
//   - Determinism: identical input ⇒ identical output and identical trace.
//   - Termination: at most n² proposals.
//
// Tracing:
//
//	res := e.Run(galeshapley.WithTrace(func(d galeshapley.Decision) {
//	    fmt.Println(d.Proposer, d.Receiver, d.Prior, d.Outcome)
//	}))
//
// The tracer is observational only. Without WithTrace, Run performs pure
// computation.
//
// Errors:
//
//   - ErrInvalidDimension        tables differ in size, a row has the wrong length, or n < 1
//   - ErrInvalidPreferenceTable  a row is not a permutation of [0, n) (see *RowError)
//   - ErrNotPerfect              a matching handed to ValidateMatching is not a bijection
//
// Run itself never fails. Non-goals: ties, incomplete lists, unequal sides,
// enumeration of all stable matchings.
package galeshapley
