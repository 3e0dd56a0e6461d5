// Package galeshapley implements the proposer-proposing deferred-acceptance
// procedure on complete, strict preference tables.
//
// Complexity:
//
//   - Each proposer proposes at most n times (monotone counter bounded by n),
//     so the loop body executes at most n² times.
//   - Every iteration does O(1) table work plus O(log n) heap work.
//   - Time:  O(n² log n).
//   - Space: O(n²), dominated by the receiver priority lookup.
package galeshapley

import "container/heap"

// Engine holds validated preference tables and the receiver priority lookup.
// It is immutable after New and safe for concurrent Run calls.
type Engine struct {
	n      int
	prefs  [][]int // prefs[p] = receivers ranked by proposer p, best first
	lookup [][]int // lookup[r][p] = rank of proposer p for receiver r (0 = best)
}

// New validates both tables and builds the receiver priority lookup.
// The input slices are copied; later caller mutation does not affect the engine.
//
// Errors: ErrInvalidDimension, ErrInvalidPreferenceTable (wrapped in *RowError).
func New(proposerPrefs, receiverPrefs [][]int) (*Engine, error) {
	n, err := validateTables(proposerPrefs, receiverPrefs)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		n:      n,
		prefs:  make([][]int, n),
		lookup: make([][]int, n),
	}

	var (
		i, j int
		row  []int
	)
	for i = 0; i < n; i++ {
		e.prefs[i] = append([]int(nil), proposerPrefs[i]...)

		// Invert receiver i's ranking: position j holds proposer row[j].
		row = receiverPrefs[i]
		e.lookup[i] = make([]int, n)
		for j = 0; j < n; j++ {
			e.lookup[i][row[j]] = j
		}
	}

	return e, nil
}

// Match is New followed by Run.
func Match(proposerPrefs, receiverPrefs [][]int, opts ...Option) (*Result, error) {
	e, err := New(proposerPrefs, receiverPrefs)
	if err != nil {
		return nil, err
	}

	return e.Run(opts...), nil
}

// Size returns n, the number of agents on each side.
func (e *Engine) Size() int { return e.n }

// Rank returns the rank receiver r gives proposer p (0 = most preferred).
func (e *Engine) Rank(r, p int) int { return e.lookup[r][p] }

// Prefers reports whether receiver r strictly prefers proposer a over b.
func (e *Engine) Prefers(r, a, b int) bool { return e.lookup[r][a] < e.lookup[r][b] }

// Run executes deferred acceptance and returns the proposer-optimal stable
// matching. Run cannot fail once New has succeeded, and it always terminates.
//
// Selection policy: the lowest active proposer id proposes next. Any policy
// yields the same matching; the policy only fixes the trace order.
func (e *Engine) Run(opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := newRunner(e, o.Trace)
	r.process()

	return r.result()
}

// runner holds the mutable state of a single Run.
type runner struct {
	e       *Engine
	trace   Tracer
	engaged Matching // receiver → proposer, Free if unengaged
	count   []int    // proposals made per proposer; index of next receiver to try
	active  idHeap   // proposers still looking, lowest id on top
	res     Result
	step    int
}

// newRunner sets every receiver free, every counter to zero, and activates
// proposers 0..n-1.
func newRunner(e *Engine, trace Tracer) *runner {
	r := &runner{
		e:       e,
		trace:   trace,
		engaged: make(Matching, e.n),
		count:   make([]int, e.n),
		active:  make(idHeap, e.n),
	}
	var i int
	for i = 0; i < e.n; i++ {
		r.engaged[i] = Free
		r.active[i] = i // ascending ids already satisfy the heap property
	}
	heap.Init(&r.active)

	return r
}

// process is the propose/reject loop. It ends exactly when no proposer is active.
func (r *runner) process() {
	var (
		p, q, recv int
		n          = r.e.n
	)
	for r.active.Len() > 0 {
		r.step++
		p = r.active[0] // peek lowest id

		// 1) Exhausted proposers leave for good.
		if r.count[p] >= n {
			heap.Pop(&r.active)
			r.res.Exhausted = append(r.res.Exhausted, p)
			r.emit(p, Free, Free, Exhausted)
			continue
		}

		// 2) Next receiver on p's list; the counter advances regardless of outcome.
		recv = r.e.prefs[p][r.count[p]]
		r.count[p]++
		r.res.Proposals++

		q = r.engaged[recv]
		switch {
		case q == Free:
			r.engaged[recv] = p
			heap.Pop(&r.active) // p is the top
			r.emit(p, recv, q, Engaged)

		case r.e.lookup[recv][p] < r.e.lookup[recv][q]:
			r.engaged[recv] = p
			heap.Pop(&r.active)
			heap.Push(&r.active, q) // q resumes from its own counter
			r.res.Displacements++
			r.emit(p, recv, q, Displaced)

		default:
			// p stays on top and proposes again next iteration.
			r.res.Rejections++
			r.emit(p, recv, q, Rejected)
		}
	}
}

func (r *runner) emit(p, recv, prior int, out Outcome) {
	if r.trace == nil {
		return
	}
	r.trace(Decision{Step: r.step, Proposer: p, Receiver: recv, Prior: prior, Outcome: out})
}

func (r *runner) result() *Result {
	r.res.Matching = r.engaged

	return &r.res
}

// idHeap is a min-heap of agent ids for container/heap.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *idHeap) Push(x any) { *h = append(*h, x.(int)) }

// Pop removes the last element; called by heap.Pop.
func (h *idHeap) Pop() any {
	old := *h
	last := len(old) - 1
	x := old[last]
	*h = old[:last]

	return x
}
