package galeshapley_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/galeshapley"
)

// identityRows returns n rows each equal to 0..n-1.
func identityRows(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = j
		}
	}
	return rows
}

// permutations calls fn with every permutation of 0..n-1 (Heap's algorithm).
// The slice passed to fn is reused; copy it to retain.
func permutations(n int, fn func([]int)) {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	c := make([]int, n)
	fn(a)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			fn(a)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

// allStable enumerates every stable matching by brute force. Only for small n.
func allStable(t *testing.T, pp, rp [][]int) []galeshapley.Matching {
	t.Helper()
	var out []galeshapley.Matching
	permutations(len(pp), func(a []int) {
		m := galeshapley.Matching(a)
		ok, err := galeshapley.IsStable(pp, rp, m)
		require.NoError(t, err)
		if ok {
			out = append(out, m.Clone())
		}
	})
	return out
}

// rankOf returns the position of x in row.
func rankOf(row []int, x int) int {
	for i, v := range row {
		if v == x {
			return i
		}
	}
	return -1
}
