// Command simulate drives independent engines with deterministic
// synthetic order flow and prints every add and trade, mirroring the
// classic demo: five engines, a hundred orders each, one matching pass.
package main

import (
	"fmt"

	"mimir/domain/engine"
)

const (
	numEngines   = 5
	numOrders    = 100
	symbolSpread = 1024
)

// consoleSink prints engine events as they happen.
type consoleSink struct {
	engine int
}

func (s consoleSink) OrderAdded(o *engine.Order) {
	fmt.Printf("[engine %d] added: %s %d shares of %s at $%d\n",
		s.engine, o.Side, o.Original(), o.Symbol, o.Price)
}

func (s consoleSink) TradeExecuted(t engine.Trade) {
	fmt.Printf("[engine %d] matched %d shares of %s at $%d (buy #%d, sell #%d)\n",
		s.engine, t.Qty, t.Symbol, t.Price, t.BuyID, t.SellID)
}

func main() {
	for n := 0; n < numEngines; n++ {
		e := engine.New(consoleSink{engine: n})
		simulate(e)
	}
	fmt.Println("market simulation complete")
}

// simulate feeds a deterministic bounded order sequence and runs one
// matching pass.
func simulate(e *engine.Engine) {
	for i := 0; i < numOrders; i++ {
		side := engine.Buy
		if i%2 == 1 {
			side = engine.Sell
		}
		symbol := fmt.Sprintf("SYMBOL%d", i%symbolSpread+1)
		qty := int64(i%100 + 1)
		price := int64(i%190 + 10)

		if _, err := e.AddOrder(side, symbol, qty, price); err != nil {
			fmt.Printf("rejected: %v\n", err)
		}
	}
	e.RunMatchingPass()
}
