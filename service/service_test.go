package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"mimir/domain/engine"
	"mimir/infra/outbox"
	"mimir/util"
)

func TestAddMatchSnapshot(t *testing.T) {
	svc := New(zap.NewNop(), nil, nil)

	if _, err := svc.AddOrder(engine.Buy, "ACME", 10, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddOrder(engine.Sell, "ACME", 4, 95); err != nil {
		t.Fatal(err)
	}

	trades := svc.RunMatch()
	if len(trades) != 1 || trades[0].Qty != 4 || trades[0].Price != 95 {
		t.Fatalf("expected one 4-lot trade at 95, got %v", trades)
	}

	active := svc.Snapshot()
	if len(active) != 1 || active[0].Remaining() != 6 {
		t.Fatalf("expected one active order with 6 remaining, got %v", active)
	}
}

func TestRejectionPropagates(t *testing.T) {
	svc := New(zap.NewNop(), nil, nil)
	if _, err := svc.AddOrder(engine.Buy, "ACME", -1, 100); !errors.Is(err, engine.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestTradesLandInOutbox(t *testing.T) {
	box, err := outbox.Open(t.TempDir(), util.RealClock{})
	if err != nil {
		t.Fatal(err)
	}
	defer box.Close()

	svc := New(zap.NewNop(), box, nil)
	if _, err := svc.AddOrder(engine.Buy, "ACME", 5, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddOrder(engine.Sell, "ACME", 5, 90); err != nil {
		t.Fatal(err)
	}
	if trades := svc.RunMatch(); len(trades) != 1 {
		t.Fatalf("expected one trade, got %v", trades)
	}

	var got []outbox.Record
	if err := box.ScanByState(outbox.StateNew, func(rec outbox.Record) error {
		got = append(got, rec)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one pending outbox record, got %d", len(got))
	}
	ev, err := outbox.DecodeEvent(got[0].Payload)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if ev.Type != "trade" || ev.Symbol != "ACME" || ev.Qty != 5 || ev.Price != 90 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
