package broadcaster

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"mimir/infra/outbox"
	"mimir/util"
)

// fakeProducer records sent messages; unused SyncProducer methods stay
// unimplemented via the embedded interface.
type fakeProducer struct {
	sarama.SyncProducer
	mu   sync.Mutex
	fail bool
	sent []*sarama.ProducerMessage
}

func (f *fakeProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return 0, 0, errors.New("broker down")
	}
	f.sent = append(f.sent, msg)
	return 0, int64(len(f.sent)), nil
}

func (f *fakeProducer) Close() error { return nil }

func newTestBox(t *testing.T) *outbox.Outbox {
	t.Helper()
	box, err := outbox.Open(t.TempDir(), util.RealClock{})
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { _ = box.Close() })
	return box
}

func TestDrainPublishesAndAcks(t *testing.T) {
	box := newTestBox(t)
	for seq := uint64(1); seq <= 3; seq++ {
		if err := box.Append(seq, []byte{byte(seq)}); err != nil {
			t.Fatal(err)
		}
	}

	prod := &fakeProducer{}
	b := New(box, prod, "trades", time.Second, zap.NewNop())
	b.drainOnce()

	if len(prod.sent) != 3 {
		t.Fatalf("expected 3 published messages, got %d", len(prod.sent))
	}
	for seq := uint64(1); seq <= 3; seq++ {
		rec, err := box.Get(seq)
		if err != nil {
			t.Fatal(err)
		}
		if rec.State != outbox.StateAcked {
			t.Fatalf("seq %d should be ACKED, got %s", seq, rec.State)
		}
	}
}

func TestDrainLeavesFailedRecordsRetryable(t *testing.T) {
	box := newTestBox(t)
	if err := box.Append(1, []byte("x")); err != nil {
		t.Fatal(err)
	}

	prod := &fakeProducer{fail: true}
	b := New(box, prod, "trades", time.Second, zap.NewNop())
	b.drainOnce()

	rec, err := box.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if rec.State != outbox.StateNew {
		t.Fatalf("failed publish should return to NEW, got %s", rec.State)
	}
	if rec.Retries != 1 {
		t.Fatalf("expected one recorded attempt, got %d", rec.Retries)
	}

	// Broker recovers; the next tick delivers.
	prod.fail = false
	b.drainOnce()
	rec, _ = box.Get(1)
	if rec.State != outbox.StateAcked {
		t.Fatalf("retry should deliver and ack, got %s", rec.State)
	}
}

func TestDrainSkipsAlreadyAcked(t *testing.T) {
	box := newTestBox(t)
	if err := box.Append(1, []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := box.Mark(1, outbox.StateAcked); err != nil {
		t.Fatal(err)
	}

	prod := &fakeProducer{}
	b := New(box, prod, "trades", time.Second, zap.NewNop())
	b.drainOnce()

	if len(prod.sent) != 0 {
		t.Fatalf("acked records must not be republished, sent %d", len(prod.sent))
	}
}
