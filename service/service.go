// Package service is the only write entry point into the system. It
// owns one engine and fans engine events out to the structured log, the
// live Kafka feed, and the durable outbox.
package service

import (
	"context"

	"go.uber.org/zap"

	"mimir/api/pb"
	"mimir/domain/engine"
	"mimir/infra/kafka"
	"mimir/infra/outbox"
	"mimir/infra/sequence"
)

type Service struct {
	engine *engine.Engine
	seq    *sequence.Sequencer
	box    *outbox.Outbox // nil disables the durable path
	feed   *kafka.Feed    // nil disables the live feed
	log    *zap.Logger
}

func New(log *zap.Logger, box *outbox.Outbox, feed *kafka.Feed) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		seq:  sequence.New(0),
		box:  box,
		feed: feed,
		log:  log,
	}
	s.engine = engine.New(s)
	return s
}

// AddOrder submits one order. Rejections come back as values; the
// engine is untouched by a rejected order.
func (s *Service) AddOrder(side engine.Side, symbol string, qty, price int64) (*engine.Order, error) {
	o, err := s.engine.AddOrder(side, symbol, qty, price)
	if err != nil {
		s.log.Warn("order rejected",
			zap.String("side", side.String()),
			zap.String("symbol", symbol),
			zap.Int64("qty", qty),
			zap.Int64("price", price),
			zap.Error(err))
		return nil, err
	}
	return o, nil
}

// RunMatch executes one matching pass and returns the emitted trades.
func (s *Service) RunMatch() []engine.Trade {
	return s.engine.RunMatchingPass()
}

// Snapshot lists the currently active orders.
func (s *Service) Snapshot() []*engine.Order {
	return s.engine.ActiveOrders()
}

// ──────────────────────────────────────────────────────────
// engine.Sink
// ──────────────────────────────────────────────────────────

func (s *Service) OrderAdded(o *engine.Order) {
	s.log.Info("order added",
		zap.Uint64("id", o.ID),
		zap.String("side", o.Side.String()),
		zap.String("symbol", o.Symbol),
		zap.Int64("qty", o.Original()),
		zap.Int64("price", o.Price))

	if s.feed == nil {
		return
	}
	ev := &pb.Event{
		V:       1,
		Type:    "order_added",
		Seq:     s.seq.Next(),
		OrderId: o.ID,
		Side:    o.Side.String(),
		Symbol:  o.Symbol,
		Qty:     o.Original(),
		Price:   o.Price,
	}
	payload, err := pb.Marshal(ev)
	if err != nil {
		s.log.Error("encode order event", zap.Error(err))
		return
	}
	if err := s.feed.Publish(context.Background(), []byte(o.Symbol), payload); err != nil {
		s.log.Warn("feed publish failed", zap.Uint64("id", o.ID), zap.Error(err))
	}
}

func (s *Service) TradeExecuted(t engine.Trade) {
	s.log.Info("trade executed",
		zap.Uint64("buy_id", t.BuyID),
		zap.Uint64("sell_id", t.SellID),
		zap.String("symbol", t.Symbol),
		zap.Int64("qty", t.Qty),
		zap.Int64("price", t.Price))

	if s.box == nil {
		return
	}
	seq := s.seq.Next()
	ev := &pb.Event{
		V:      1,
		Type:   "trade",
		Seq:    seq,
		BuyId:  t.BuyID,
		SellId: t.SellID,
		Symbol: t.Symbol,
		Qty:    t.Qty,
		Price:  t.Price,
	}
	payload, err := outbox.EncodeEvent(ev)
	if err != nil {
		s.log.Error("encode trade event", zap.Error(err))
		return
	}
	if err := s.box.Append(seq, payload); err != nil {
		s.log.Error("outbox append failed", zap.Uint64("seq", seq), zap.Error(err))
	}
}
