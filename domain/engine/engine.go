package engine

import "sync/atomic"

// DefaultCapacity bounds each arena: one side holds at most this many
// orders over the engine's lifetime, and so does the arrival order.
const DefaultCapacity = 1024

// Engine matches crossing orders with price-time priority. It owns
// three arenas: buy side, sell side, and the global arrival order that
// RunMatchingPass walks. All public methods are safe for concurrent
// use; nothing ever blocks.
type Engine struct {
	buys     *Arena[Order]
	sells    *Arena[Order]
	arrivals *Arena[Order]
	ids      atomic.Uint64
	sink     Sink
}

func New(sink Sink) *Engine {
	return NewWithCapacity(DefaultCapacity, sink)
}

func NewWithCapacity(capacity int, sink Sink) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	return &Engine{
		buys:     NewArena[Order](capacity),
		sells:    NewArena[Order](capacity),
		arrivals: NewArena[Order](capacity),
		sink:     sink,
	}
}

// AddOrder validates the input, reserves an arrival slot and a side
// slot, and publishes the new order to both. The arrival reservation is
// the binding step: an order appears in the arrival order iff it
// appears on its side. Rejection leaves nothing published.
func (e *Engine) AddOrder(side Side, symbol string, qty, price int64) (*Order, error) {
	if !side.valid() {
		return nil, reject(ErrInvalidOrder, "unknown side")
	}
	if qty <= 0 {
		return nil, reject(ErrInvalidOrder, "quantity must be positive")
	}
	if price <= 0 {
		return nil, reject(ErrInvalidOrder, "price must be positive")
	}

	gi, ok := e.arrivals.TryReserve()
	if !ok {
		return nil, reject(ErrBookFull, "arrival capacity")
	}
	book := e.sideArena(side)
	si, ok := book.TryReserve()
	if !ok {
		// The reserved arrival slot stays explicitly empty.
		e.arrivals.Clear(gi)
		return nil, reject(ErrBookFull, side.String()+" capacity")
	}

	o := &Order{
		ID:     e.ids.Add(1),
		Side:   side,
		Symbol: symbol,
		Price:  price,
		Seq:    uint64(gi),
		orig:   qty,
		slot:   si,
	}
	o.rem.v.Store(qty)

	book.Publish(si, o)
	e.arrivals.Publish(gi, o)

	e.sink.OrderAdded(o)
	return o, nil
}

// RunMatchingPass walks the arrival order, oldest reservation first,
// and matches each live order against the opposite side. Orders added
// after the pass snapshots the arena lengths are picked up by the next
// pass. Trades are streamed to the sink and returned in emission order.
func (e *Engine) RunMatchingPass() []Trade {
	var trades []Trade
	n := e.arrivals.Len()
	for i := 0; i < n; i++ {
		o := e.arrivals.Load(i)
		if o == nil || o.Filled() {
			continue
		}
		trades = e.matchOne(o, trades)
	}
	return trades
}

// matchOne scans the opposite side in reservation order and fills the
// active order against every crossing counterparty until either runs
// out. The crossing rule is buy price >= sell price; execution is at
// the sell side's price.
func (e *Engine) matchOne(o *Order, trades []Trade) []Trade {
	book := e.sideArena(o.Side.opposite())
	m := book.Len()
	for j := 0; j < m; j++ {
		c := book.Load(j)
		if c == nil {
			continue
		}
		buy, sell := o, c
		if o.Side == Sell {
			buy, sell = c, o
		}
		if buy.Price < sell.Price {
			continue
		}
		if qty, ok := e.take(o, c); ok {
			t := Trade{
				BuyID:  buy.ID,
				SellID: sell.ID,
				Symbol: buy.Symbol,
				Qty:    qty,
				Price:  sell.Price,
			}
			trades = append(trades, t)
			e.sink.TradeExecuted(t)
		}
		e.clearIfFilled(c)
		if o.Filled() {
			break
		}
	}
	e.clearIfFilled(o)
	return trades
}

// take reserves min(taker.Remaining, maker.Remaining) from both orders.
// A naive read-then-decrement would let two matchers overdraw a shared
// order; here the maker is debited with a conditional take first and
// credited back if the taker raced to zero in between, so a trade is
// only reported for quantity actually held on both sides.
func (e *Engine) take(taker, maker *Order) (int64, bool) {
	for {
		want := min(taker.Remaining(), maker.Remaining())
		if want == 0 {
			return 0, false
		}
		if !maker.rem.TryTake(want) {
			continue // maker shrank, recompute
		}
		if !taker.rem.TryTake(want) {
			// A concurrent pass may have seen the maker's transient
			// zero and retired its slot; the credit-back re-publishes
			// it. Slots are never reused, so the store cannot collide.
			maker.rem.Add(want)
			e.sideArena(maker.Side).Publish(maker.slot, maker)
			continue
		}
		return want, true
	}
}

// clearIfFilled retires o's side slot once its quantity is exhausted. A
// zero observed here can be transient (a matcher between debit and
// credit-back), so the clear is re-checked and undone if the order came
// back to life; the matcher doing the credit-back re-publishes from its
// end as well, so whichever of the two acts last restores the slot.
func (e *Engine) clearIfFilled(o *Order) {
	if !o.Filled() {
		return
	}
	book := e.sideArena(o.Side)
	book.Clear(o.slot)
	if !o.Filled() {
		book.Publish(o.slot, o)
	}
}

// ActiveOrders lists the unfilled orders currently published on either
// side, buys first, in reservation order. The view is a snapshot in the
// same eventual-consistency sense as RunMatchingPass.
func (e *Engine) ActiveOrders() []*Order {
	var out []*Order
	for _, book := range [...]*Arena[Order]{e.buys, e.sells} {
		n := book.Len()
		for i := 0; i < n; i++ {
			if o := book.Load(i); o != nil && !o.Filled() {
				out = append(out, o)
			}
		}
	}
	return out
}

func (e *Engine) sideArena(s Side) *Arena[Order] {
	if s == Sell {
		return e.sells
	}
	return e.buys
}
