package engine

// Order carries immutable identity plus a single mutable cell, the
// remaining quantity. A filled order is cleared from its side arena but
// the object stays alive; emitted trades may still reference it.
type Order struct {
	ID     uint64
	Side   Side
	Symbol string
	Price  int64

	// Seq is the order's arrival-arena index: the strictly increasing
	// time-priority axis the matching pass walks.
	Seq uint64

	orig int64
	rem  Qty
	slot int // index in the side arena, cleared when the order fills
}

// Remaining reports the unfilled quantity at call time.
func (o *Order) Remaining() int64 {
	return o.rem.Load()
}

// Original reports the quantity the order was created with.
func (o *Order) Original() int64 {
	return o.orig
}

// Filled reports whether the order is terminal.
func (o *Order) Filled() bool {
	return o.rem.Load() == 0
}
