package engine

import "sync/atomic"

// Arena is a fixed-capacity, append-only slot store with atomic index
// reservation. Indices below the bump pointer are either published or
// explicitly cleared; readers treat nil slots as empty and skip them.
type Arena[T any] struct {
	next  atomic.Int64
	slots []atomic.Pointer[T]
}

func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{slots: make([]atomic.Pointer[T], capacity)}
}

// TryReserve claims the next free index, or reports failure once the
// arena is full. The increment-if-below-bound is a single CAS, so an
// index at or past capacity can never be handed out.
func (a *Arena[T]) TryReserve() (int, bool) {
	for {
		n := a.next.Load()
		if n >= int64(len(a.slots)) {
			return 0, false
		}
		if a.next.CompareAndSwap(n, n+1) {
			return int(n), true
		}
	}
}

// Publish stores v into a reserved slot.
func (a *Arena[T]) Publish(i int, v *T) {
	a.slots[i].Store(v)
}

// Clear marks a slot empty so subsequent scans skip it. Clearing an
// already-empty slot is a no-op.
func (a *Arena[T]) Clear(i int) {
	a.slots[i].Store(nil)
}

// Load returns the slot contents, nil if empty.
func (a *Arena[T]) Load(i int) *T {
	return a.slots[i].Load()
}

// Len reports the reserved prefix length at call time. A scan bounded
// by Len may miss slots reserved afterwards; the next scan sees them.
func (a *Arena[T]) Len() int {
	return int(a.next.Load())
}

func (a *Arena[T]) Cap() int {
	return len(a.slots)
}
