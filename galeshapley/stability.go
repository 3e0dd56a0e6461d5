package galeshapley

import "fmt"

// BlockingPairs returns every pair (p, r) not matched to each other where p
// prefers r over its partner and r prefers p over its partner. A free agent
// prefers any partner to none. The tables are validated first. m may leave
// agents free, but must have length n and assign each proposer at most once
// (ErrNotPerfect otherwise).
//
// Pairs are ordered by proposer id, then by p's preference.
//
// Complexity: O(n²).
func BlockingPairs(proposerPrefs, receiverPrefs [][]int, m Matching) ([]Pair, error) {
	e, err := New(proposerPrefs, receiverPrefs)
	if err != nil {
		return nil, err
	}

	return e.BlockingPairs(m)
}

// IsStable reports whether m has no blocking pair under the given tables.
func IsStable(proposerPrefs, receiverPrefs [][]int, m Matching) (bool, error) {
	pairs, err := BlockingPairs(proposerPrefs, receiverPrefs, m)
	if err != nil {
		return false, err
	}

	return len(pairs) == 0, nil
}

// BlockingPairs is the engine-bound form of the package-level BlockingPairs;
// it reuses the already-built priority lookup.
func (e *Engine) BlockingPairs(m Matching) ([]Pair, error) {
	if err := checkShape(m, e.n); err != nil {
		return nil, err
	}

	partner := m.Partners() // proposer → receiver
	var (
		out     []Pair
		p, i, r int
		q       int
		current int
	)
	for p = 0; p < e.n; p++ {
		current = partner[p]
		// Walk p's list from the top until its own partner; everything above is preferred.
		for i = 0; i < e.n; i++ {
			r = e.prefs[p][i]
			if r == current {
				break
			}
			q = m[r]
			if q == Free || e.lookup[r][p] < e.lookup[r][q] {
				out = append(out, Pair{Proposer: p, Receiver: r})
			}
		}
	}

	return out, nil
}

// checkShape accepts partial matchings but rejects wrong lengths, unknown
// proposers and proposers assigned to two receivers.
func checkShape(m Matching, n int) error {
	if len(m) != n {
		return fmt.Errorf("%w: %d receivers, want %d", ErrNotPerfect, len(m), n)
	}
	taken := make([]bool, n)
	for r, p := range m {
		if p == Free {
			continue
		}
		if p < 0 || p >= n {
			return fmt.Errorf("%w: receiver %d holds unknown proposer %d", ErrNotPerfect, r, p)
		}
		if taken[p] {
			return fmt.Errorf("%w: proposer %d matched twice", ErrNotPerfect, p)
		}
		taken[p] = true
	}

	return nil
}
