// Package broadcaster drains the event outbox to Kafka. Records move
// NEW -> SENT -> ACKED; anything not acked is retried on the next tick,
// so consumers get at-least-once delivery and must dedupe on seq.
package broadcaster

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"mimir/infra/outbox"
)

type Broadcaster struct {
	box      *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *zap.Logger
}

// NewSyncProducer builds the sarama producer the broadcaster expects:
// synchronous, acked by all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	return sarama.NewSyncProducer(brokers, cfg)
}

func New(
	box *outbox.Outbox,
	producer sarama.SyncProducer,
	topic string,
	interval time.Duration,
	log *zap.Logger,
) *Broadcaster {
	if log == nil {
		log = zap.NewNop()
	}
	return &Broadcaster{
		box:      box,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log,
	}
}

// Run drains pending records until the context is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("broadcaster started", zap.String("topic", b.topic))
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.drainOnce()
		}
	}
}

func (b *Broadcaster) drainOnce() {
	err := b.box.ScanByState(outbox.StateNew, func(rec outbox.Record) error {
		// Mark SENT first so a crash between publish and ack leaves a
		// retryable record, never a silently dropped one.
		if err := b.box.Mark(rec.Seq, outbox.StateSent); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(fmt.Sprintf("%d", rec.Seq)),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			b.log.Warn("publish failed, will retry",
				zap.Uint64("seq", rec.Seq), zap.Error(err))
			return b.box.Mark(rec.Seq, outbox.StateNew)
		}

		return b.box.Mark(rec.Seq, outbox.StateAcked)
	})
	if err != nil {
		b.log.Error("outbox drain failed", zap.Error(err))
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
