// Package kafka publishes recorded tracking events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"

	"kunooz-ads/internal/config/configs"
	"kunooz-ads/internal/core/domain"
	"kunooz-ads/internal/core/port"
	"kunooz-ads/internal/telemetry"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes one JSON message per event, keyed by ad id so events of
// an ad stay ordered within a partition.
type Publisher struct {
	writer messageWriter
}

var _ port.EventPublisher = (*Publisher)(nil)

// NewPublisher returns a publisher for the configured brokers and topic.
func NewPublisher(cfg configs.Kafka) *Publisher {
	return &Publisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}}
}

// Publish encodes and writes events, propagating the trace context in the
// message headers.
func (p *Publisher) Publish(ctx context.Context, events ...domain.TrackingEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		value, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		msg := kafka.Message{
			Key:   []byte(strconv.FormatInt(ev.AdID, 10)),
			Value: value,
			Time:  ev.OccurredAt,
		}
		otel.GetTextMapPropagator().Inject(ctx, headerCarrier{&msg.Headers})
		msgs = append(msgs, msg)
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		telemetry.PublishErrors.Add(float64(len(msgs)))
		return err
	}
	return nil
}

// Close flushes pending batches and closes broker connections.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// headerCarrier adapts Kafka message headers to a propagation.TextMapCarrier.
type headerCarrier struct {
	headers *[]kafka.Header
}

func (c headerCarrier) Get(key string) string {
	for _, h := range *c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c headerCarrier) Set(key, value string) {
	for i, h := range *c.headers {
		if h.Key == key {
			(*c.headers)[i].Value = []byte(value)
			return
		}
	}
	*c.headers = append(*c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(*c.headers))
	for _, h := range *c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

// Nop discards events. It is used when no brokers are configured.
type Nop struct{}

var _ port.EventPublisher = Nop{}

func (Nop) Publish(context.Context, ...domain.TrackingEvent) error { return nil }
