// Package kafka holds the fire-and-forget market feed writer. Delivery
// here is best effort; the durable path for trades is the outbox plus
// broadcaster.
package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

type Feed struct {
	writer *kafka.Writer
}

func NewFeed(brokers []string, topic string) *Feed {
	return &Feed{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (f *Feed) Publish(ctx context.Context, key, value []byte) error {
	return f.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

func (f *Feed) Close() error {
	return f.writer.Close()
}
