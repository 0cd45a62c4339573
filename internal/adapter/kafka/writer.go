package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/uninsured-dashboard/internal/config"
	"github.com/couchcryptid/uninsured-dashboard/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces interaction records to a Kafka topic.
// It implements dashboard.InteractionPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates an asynchronous Kafka producer for the configured
// interaction topic. Delivery failures surface only in the log, so a slow
// or unavailable broker never holds up a slider event.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
	}
	w.Completion = func(msgs []kafkago.Message, err error) {
		if err != nil {
			logger.Warn("interaction delivery failed", "error", err, "topic", w.Topic, "messages", len(msgs))
		}
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and enqueues one interaction.
func (w *Writer) Publish(ctx context.Context, in domain.Interaction) error {
	msg, err := serializeToMessage(in)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

// Close flushes pending messages and closes the producer.
func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an Interaction into a Kafka message keyed by
// event name.
func serializeToMessage(in domain.Interaction) (kafkago.Message, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize interaction: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(in.Event),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event", Value: []byte(in.Event)},
			{Key: "occurred_at", Value: []byte(in.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}
