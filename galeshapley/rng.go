// Seeded instance generation for tests, benchmarks and `lvmatch gen`.
// Every call draws from its own stream, so the same (n, seed) gives the same
// tables on every platform and concurrent callers never share a source.

package galeshapley

import (
	"fmt"
	"math/rand"
)

// zeroSeed replaces a seed of 0, so "no seed given" still yields a fixed instance.
const zeroSeed int64 = 1

// newStream returns the generator stream for one RandomPreferences or
// RandomInstance call.
func newStream(seed int64) *rand.Rand {
	if seed == 0 {
		seed = zeroSeed
	}
	return rand.New(rand.NewSource(seed))
}

// permRange fills a with 0..len(a)-1 and shuffles it in place (Fisher–Yates).
//
// Complexity: O(n) time, O(1) extra space.
func permRange(a []int, rng *rand.Rand) {
	var i, j int
	for i = range a {
		a[i] = i
	}
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomPreferences returns an n×n table whose rows are independent uniform
// permutations of [0, n). One call produces one side; call it twice with
// different seeds for a full instance, or use RandomInstance.
//
// Complexity: O(n²) time and space.
func RandomPreferences(n int, seed int64) ([][]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidDimension, n)
	}

	rng := newStream(seed)
	table := make([][]int, n)
	for i := 0; i < n; i++ {
		table[i] = make([]int, n)
		permRange(table[i], rng)
	}

	return table, nil
}

// RandomInstance returns proposer and receiver tables drawn from one seeded
// stream: proposers first, then receivers.
func RandomInstance(n int, seed int64) (proposers, receivers [][]int, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: n=%d", ErrInvalidDimension, n)
	}

	rng := newStream(seed)
	proposers = make([][]int, n)
	receivers = make([][]int, n)
	for i := 0; i < n; i++ {
		proposers[i] = make([]int, n)
		permRange(proposers[i], rng)
	}
	for i := 0; i < n; i++ {
		receivers[i] = make([]int, n)
		permRange(receivers[i], rng)
	}

	return proposers, receivers, nil
}
