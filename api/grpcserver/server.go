// Package grpcserver adapts the order service to the mimir.Engine gRPC
// surface.
package grpcserver

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mimir/api/pb"
	"mimir/domain/engine"
	"mimir/service"
)

type Server struct {
	pb.UnimplementedEngineServer
	svc *service.Service
	log *zap.Logger
}

func New(svc *service.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log}
}

func (s *Server) AddOrder(ctx context.Context, req *pb.AddOrderRequest) (*pb.AddOrderResponse, error) {
	side, ok := parseSide(req.Side)
	if !ok {
		return &pb.AddOrderResponse{Status: "rejected", Reason: "unknown side"}, nil
	}

	o, err := s.svc.AddOrder(side, req.Symbol, req.Qty, req.Price)
	if err != nil {
		// Rejections are values, not transport failures.
		var rej *engine.RejectError
		reason := err.Error()
		if errors.As(err, &rej) {
			reason = rej.Reason
		}
		return &pb.AddOrderResponse{Status: "rejected", Reason: reason}, nil
	}

	s.log.Info("grpc add order",
		zap.Uint64("id", o.ID),
		zap.String("side", o.Side.String()),
		zap.String("symbol", o.Symbol))
	return &pb.AddOrderResponse{Status: "ok", OrderId: o.ID, Seq: o.Seq}, nil
}

func (s *Server) RunMatch(ctx context.Context, req *pb.MatchRequest) (*pb.MatchResponse, error) {
	trades := s.svc.RunMatch()
	resp := &pb.MatchResponse{Trades: make([]*pb.TradeMsg, 0, len(trades))}
	for _, t := range trades {
		resp.Trades = append(resp.Trades, &pb.TradeMsg{
			BuyId:  t.BuyID,
			SellId: t.SellID,
			Symbol: t.Symbol,
			Qty:    t.Qty,
			Price:  t.Price,
		})
	}
	return resp, nil
}

func (s *Server) GetBook(ctx context.Context, req *pb.BookRequest) (*pb.BookResponse, error) {
	orders := s.svc.Snapshot()
	resp := &pb.BookResponse{Orders: make([]*pb.OrderEntry, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, &pb.OrderEntry{
			Id:        o.ID,
			Side:      o.Side.String(),
			Symbol:    o.Symbol,
			Price:     o.Price,
			Remaining: o.Remaining(),
			Seq:       o.Seq,
		})
	}
	return resp, nil
}

func parseSide(s string) (engine.Side, bool) {
	switch s {
	case "buy":
		return engine.Buy, true
	case "sell":
		return engine.Sell, true
	default:
		return 0, false
	}
}
