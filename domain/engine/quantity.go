package engine

import "sync/atomic"

// Qty is a race-free quantity cell. Adding always succeeds; taking is
// conditional on sufficient value remaining, so concurrent matchers can
// never drive the cell below zero.
type Qty struct {
	v atomic.Int64
}

func (q *Qty) Load() int64 {
	return q.v.Load()
}

// Add atomically increases the cell by n.
func (q *Qty) Add(n int64) {
	q.v.Add(n)
}

// TryTake subtracts n only if at least n remains. The compare-and-swap
// is retried while other writers race it, but a single observation of
// insufficient value terminates with false and no mutation.
func (q *Qty) TryTake(n int64) bool {
	for {
		cur := q.v.Load()
		if cur < n {
			return false
		}
		if q.v.CompareAndSwap(cur, cur-n) {
			return true
		}
	}
}
