package engine

// Trade is an executed match. The engine keeps no trade history; sinks
// are the only place trades outlive RunMatchingPass.
type Trade struct {
	BuyID  uint64
	SellID uint64
	Symbol string
	Qty    int64
	Price  int64 // the sell (maker) side's price
}

// Sink consumes engine events. Implementations must tolerate concurrent
// calls: AddOrder and RunMatchingPass may run in parallel.
type Sink interface {
	OrderAdded(o *Order)
	TradeExecuted(t Trade)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) OrderAdded(*Order)   {}
func (NopSink) TradeExecuted(Trade) {}

// MultiSink fans every event out to each sink in order.
type MultiSink []Sink

func (m MultiSink) OrderAdded(o *Order) {
	for _, s := range m {
		s.OrderAdded(o)
	}
}

func (m MultiSink) TradeExecuted(t Trade) {
	for _, s := range m {
		s.TradeExecuted(t)
	}
}
