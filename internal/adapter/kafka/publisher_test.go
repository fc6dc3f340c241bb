package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kunooz-ads/internal/core/domain"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestPublishEncodesEvents(t *testing.T) {
	w := &recordingWriter{}
	p := &Publisher{writer: w}
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(),
		domain.TrackingEvent{Type: domain.EventClick, AdID: 7, AdUUID: "u-7", PlacementCode: "header", OccurredAt: at},
		domain.TrackingEvent{Type: domain.EventImpression, AdID: 8, PlacementCode: "footer", OccurredAt: at},
	)
	require.NoError(t, err)
	require.Len(t, w.msgs, 2)

	assert.Equal(t, "7", string(w.msgs[0].Key))
	assert.Equal(t, at, w.msgs[0].Time)

	var got domain.TrackingEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, domain.EventClick, got.Type)
	assert.Equal(t, "header", got.PlacementCode)
	assert.True(t, at.Equal(got.OccurredAt))
}

func TestPublishEmptyAndFailure(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker unavailable")}
	p := &Publisher{writer: w}

	assert.NoError(t, p.Publish(context.Background()))
	assert.Error(t, p.Publish(context.Background(), domain.TrackingEvent{AdID: 1}))
}

func TestHeaderCarrier(t *testing.T) {
	var headers []kafka.Header
	c := headerCarrier{&headers}

	c.Set("traceparent", "a")
	c.Set("traceparent", "b")
	c.Set("baggage", "k=v")

	assert.Equal(t, "b", c.Get("traceparent"))
	assert.Empty(t, c.Get("missing"))
	assert.ElementsMatch(t, []string{"traceparent", "baggage"}, c.Keys())
}
