//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/uninsured-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/uninsured-dashboard/internal/config"
	"github.com/couchcryptid/uninsured-dashboard/internal/dashboard"
	"github.com/couchcryptid/uninsured-dashboard/internal/domain"
	"github.com/couchcryptid/uninsured-dashboard/internal/observability"
	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testTopic = "test-interactions"

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("test-cluster"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestSliderEventsReachTopic drives slider events through the dashboard and
// reads the published interactions back from Kafka.
func TestSliderEventsReachTopic(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaTopic: testTopic}
	writer := kafka.NewWriter(cfg, slog.Default())

	records := domain.NewRecordSet([]domain.Record{
		{StateCode: "CA", Year: 2010, UninsuredRate: 0.15},
		{StateCode: "CA", Year: 2011, UninsuredRate: 0.12},
		{StateCode: "NY", Year: 2010, UninsuredRate: 0.10},
	})
	at := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	dash, err := dashboard.New(records, dashboard.Options{
		Variant:   dashboard.FractionVariant(),
		Publisher: writer,
		Clock:     clockwork.NewFakeClockAt(at),
	}, slog.Default(), observability.NewMetricsForTesting())
	require.NoError(t, err)

	for _, year := range []int{2010, 2011, 2015} {
		_, err := dash.Dispatch(ctx, dashboard.YearChanged, year)
		require.NoError(t, err)
	}
	// Close flushes the async batch.
	require.NoError(t, writer.Close())

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testTopic,
		StartOffset: kafkago.FirstOffset,
		MaxWait:     500 * time.Millisecond,
	})
	defer consumer.Close()

	want := []domain.Interaction{
		{Event: dashboard.YearChanged, Value: 2010, Points: 2, OccurredAt: at},
		{Event: dashboard.YearChanged, Value: 2011, Points: 1, OccurredAt: at},
		{Event: dashboard.YearChanged, Value: 2015, Points: 0, OccurredAt: at},
	}
	for _, w := range want {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from interaction topic")

		var got domain.Interaction
		require.NoError(t, json.Unmarshal(msg.Value, &got))
		assert.Equal(t, w.Value, got.Value)
		assert.Equal(t, w.Points, got.Points)
		assert.Equal(t, w.Event, got.Event)
		assert.True(t, w.OccurredAt.Equal(got.OccurredAt))
		assert.Equal(t, dashboard.YearChanged, string(msg.Key))
	}
}
