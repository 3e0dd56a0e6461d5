// Package galeshapley - validation of preference tables and matchings.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case; one O(n) scratch slice reused across rows.
package galeshapley

import "fmt"

// Row-level failure reasons carried by RowError.
const (
	reasonOutOfRange = "out of range"
	reasonDuplicate  = "duplicate"
)

// validateTables checks both tables and returns n on success.
//
// Contract:
//   - n = len(proposers) ≥ 1 and len(receivers) == n.
//   - every row of both tables has length n.
//   - every row is a permutation of [0, n).
//
// Complexity: O(n²) time, O(n) extra space.
func validateTables(proposers, receivers [][]int) (int, error) {
	var n int
	n = len(proposers)
	if n < 1 {
		return 0, fmt.Errorf("%w: need at least one proposer, got %d", ErrInvalidDimension, n)
	}
	if len(receivers) != n {
		return 0, fmt.Errorf("%w: %d proposers but %d receivers", ErrInvalidDimension, n, len(receivers))
	}

	seen := make([]int, n) // seen[id] == stamp ⇔ id already met in the current row
	var (
		stamp int
		err   error
	)
	if stamp, err = validateTable(ProposerTable, proposers, n, seen, stamp); err != nil {
		return 0, err
	}
	if _, err = validateTable(ReceiverTable, receivers, n, seen, stamp); err != nil {
		return 0, err
	}

	return n, nil
}

// validateTable checks every row of one table. seen is a stamped scratch
// buffer so it never needs clearing; the last stamp used is returned.
func validateTable(table Table, rows [][]int, n int, seen []int, stamp int) (int, error) {
	var (
		i, j int
		id   int
		row  []int
	)
	for i = 0; i < n; i++ {
		row = rows[i]
		if len(row) != n {
			return stamp, fmt.Errorf("%w: %s row %d has %d entries, want %d",
				ErrInvalidDimension, table, i, len(row), n)
		}
		stamp++ // fresh generation for this row
		for j = 0; j < n; j++ {
			id = row[j]
			if id < 0 || id >= n {
				return stamp, &RowError{Table: table, Row: i, Col: j, Value: id, Reason: reasonOutOfRange}
			}
			if seen[id] == stamp {
				return stamp, &RowError{Table: table, Row: i, Col: j, Value: id, Reason: reasonDuplicate}
			}
			seen[id] = stamp
		}
	}

	return stamp, nil
}

// ValidateMatching verifies that m is a bijection between receivers and
// proposers over [0, n).
//
// Complexity: O(n).
func ValidateMatching(m Matching, n int) error {
	if err := checkShape(m, n); err != nil {
		return err
	}
	for r, p := range m {
		if p == Free {
			return fmt.Errorf("%w: receiver %d is free", ErrNotPerfect, r)
		}
	}

	return nil
}
