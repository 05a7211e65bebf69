package engine

import (
	"errors"
	"sync"
	"testing"
)

// recorder captures sink events; safe for concurrent emitters.
type recorder struct {
	mu     sync.Mutex
	added  []*Order
	trades []Trade
}

func (r *recorder) OrderAdded(o *Order) {
	r.mu.Lock()
	r.added = append(r.added, o)
	r.mu.Unlock()
}

func (r *recorder) TradeExecuted(t Trade) {
	r.mu.Lock()
	r.trades = append(r.trades, t)
	r.mu.Unlock()
}

func TestAddOrderValidation(t *testing.T) {
	e := New(nil)

	cases := []struct {
		name  string
		side  Side
		qty   int64
		price int64
	}{
		{"zero quantity", Buy, 0, 100},
		{"negative quantity", Sell, -5, 100},
		{"zero price", Buy, 10, 0},
		{"negative price", Sell, 10, -1},
		{"unknown side", Side(9), 10, 100},
	}
	for _, tc := range cases {
		if _, err := e.AddOrder(tc.side, "ACME", tc.qty, tc.price); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("%s: expected ErrInvalidOrder, got %v", tc.name, err)
		}
	}
	if got := len(e.ActiveOrders()); got != 0 {
		t.Fatalf("rejected orders must not be published, found %d", got)
	}
}

func TestAddOrderAssignsIdentity(t *testing.T) {
	e := New(nil)

	a, err := e.AddOrder(Buy, "ACME", 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.AddOrder(Sell, "ACME", 5, 200)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatal("order IDs must be unique")
	}
	if b.Seq <= a.Seq {
		t.Fatalf("arrival sequence must increase: %d then %d", a.Seq, b.Seq)
	}
	if a.Remaining() != 5 || a.Original() != 5 {
		t.Fatalf("fresh order should carry its full quantity, got rem=%d orig=%d", a.Remaining(), a.Original())
	}
}

func TestAddOrderCapacityBoundary(t *testing.T) {
	e := NewWithCapacity(4, nil)
	for i := 0; i < 4; i++ {
		if _, err := e.AddOrder(Buy, "ACME", 1, 100); err != nil {
			t.Fatalf("order %d should fit: %v", i, err)
		}
	}
	_, err := e.AddOrder(Buy, "ACME", 1, 100)
	if !errors.Is(err, ErrBookFull) {
		t.Fatalf("expected ErrBookFull, got %v", err)
	}
	var rej *RejectError
	if !errors.As(err, &rej) {
		t.Fatalf("expected a RejectError, got %T", err)
	}

	// The engine stays consistent and queryable after rejection.
	if got := len(e.ActiveOrders()); got != 4 {
		t.Fatalf("expected 4 active orders after rejection, got %d", got)
	}
}

func TestNonCrossingPricesNeverTrade(t *testing.T) {
	e := New(nil)
	mustAdd(t, e, Buy, "ACME", 10, 90)
	mustAdd(t, e, Sell, "ACME", 10, 95)

	if trades := e.RunMatchingPass(); len(trades) != 0 {
		t.Fatalf("buy 90 vs sell 95 must not trade, got %v", trades)
	}
	if got := len(e.ActiveOrders()); got != 2 {
		t.Fatalf("both orders should stay active, got %d", got)
	}
}

func TestTimePriority(t *testing.T) {
	rec := &recorder{}
	e := New(rec)
	s1 := mustAdd(t, e, Sell, "ACME", 4, 90)
	s2 := mustAdd(t, e, Sell, "ACME", 6, 95)
	b := mustAdd(t, e, Buy, "ACME", 10, 100)

	trades := e.RunMatchingPass()
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d: %v", len(trades), trades)
	}
	want := []Trade{
		{BuyID: b.ID, SellID: s1.ID, Symbol: "ACME", Qty: 4, Price: 90},
		{BuyID: b.ID, SellID: s2.ID, Symbol: "ACME", Qty: 6, Price: 95},
	}
	for i, w := range want {
		if trades[i] != w {
			t.Errorf("trade %d: got %+v want %+v", i, trades[i], w)
		}
	}
	if b.Remaining() != 0 || s1.Remaining() != 0 || s2.Remaining() != 0 {
		t.Fatal("all three orders should be fully filled")
	}
	if got := len(e.ActiveOrders()); got != 0 {
		t.Fatalf("filled orders must be cleared from the book, found %d", got)
	}
	if len(rec.trades) != 2 || rec.trades[0] != want[0] || rec.trades[1] != want[1] {
		t.Fatalf("sink should see the same trades in order: %v", rec.trades)
	}
}

func TestExecutionAtSellPrice(t *testing.T) {
	e := New(nil)
	mustAdd(t, e, Buy, "ACME", 5, 100)
	mustAdd(t, e, Sell, "ACME", 5, 90)

	trades := e.RunMatchingPass()
	if len(trades) != 1 {
		t.Fatalf("expected one trade, got %v", trades)
	}
	if trades[0].Price != 90 {
		t.Fatalf("execution must be at the sell side's price 90, got %d", trades[0].Price)
	}
}

func TestPartialFillKeepsRemainderActive(t *testing.T) {
	e := New(nil)
	b := mustAdd(t, e, Buy, "ACME", 10, 100)
	s := mustAdd(t, e, Sell, "ACME", 4, 95)

	trades := e.RunMatchingPass()
	if len(trades) != 1 || trades[0].Qty != 4 {
		t.Fatalf("expected a single 4-lot trade, got %v", trades)
	}
	if b.Remaining() != 6 {
		t.Fatalf("buy should have 6 remaining, got %d", b.Remaining())
	}
	if !s.Filled() {
		t.Fatal("sell should be fully filled")
	}
	active := e.ActiveOrders()
	if len(active) != 1 || active[0] != b {
		t.Fatalf("only the partially filled buy should remain, got %v", active)
	}
}

func TestRepeatedPassEmitsNothingNew(t *testing.T) {
	e := New(nil)
	mustAdd(t, e, Buy, "ACME", 10, 100)
	mustAdd(t, e, Sell, "ACME", 10, 90)
	mustAdd(t, e, Buy, "ACME", 3, 50) // stays non-crossing

	if trades := e.RunMatchingPass(); len(trades) != 1 {
		t.Fatalf("first pass should emit one trade, got %v", trades)
	}
	if trades := e.RunMatchingPass(); len(trades) != 0 {
		t.Fatalf("second pass without new orders must emit nothing, got %v", trades)
	}
}

// The book is deliberately not partitioned by symbol: one engine's
// orders cross regardless of symbol, and the trade carries the buy
// side's symbol.
func TestMatchingIgnoresSymbols(t *testing.T) {
	e := New(nil)
	mustAdd(t, e, Buy, "ACME", 5, 100)
	mustAdd(t, e, Sell, "GLOBEX", 5, 90)

	trades := e.RunMatchingPass()
	if len(trades) != 1 {
		t.Fatalf("cross-symbol orders should still match, got %v", trades)
	}
	if trades[0].Symbol != "ACME" {
		t.Fatalf("trade should carry the buy side's symbol, got %q", trades[0].Symbol)
	}
}

func TestOrderAddedEvents(t *testing.T) {
	rec := &recorder{}
	e := New(MultiSink{rec, NopSink{}})
	mustAdd(t, e, Buy, "ACME", 1, 10)
	mustAdd(t, e, Sell, "ACME", 1, 20)

	if len(rec.added) != 2 {
		t.Fatalf("sink should see every accepted order, got %d", len(rec.added))
	}
	if _, err := e.AddOrder(Buy, "ACME", 0, 10); err == nil {
		t.Fatal("expected rejection")
	}
	if len(rec.added) != 2 {
		t.Fatal("rejected orders must not reach the sink")
	}
}

func mustAdd(t *testing.T, e *Engine, side Side, symbol string, qty, price int64) *Order {
	t.Helper()
	o, err := e.AddOrder(side, symbol, qty, price)
	if err != nil {
		t.Fatalf("add %s %s %d@%d: %v", side, symbol, qty, price, err)
	}
	return o
}
