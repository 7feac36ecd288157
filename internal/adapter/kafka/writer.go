package kafka

import (
	"context"
	"log/slog"
	"sort"

	"github.com/couchcryptid/mrms-cf-etl/internal/config"
	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces grid events to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes one event per grid in a single
// WriteMessages call. Events are keyed by grid id so replays of a product
// time land on the same partition.
func (w *Writer) LoadBatch(ctx context.Context, grids []domain.ConvertedGrid) error {
	if len(grids) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(grids))
	for i := range grids {
		out, err := domain.SerializeGridEvent(grids[i])
		if err != nil {
			return err
		}
		msgs[i] = toMessage(out)
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	w.logger.Debug("grid events published", "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// toMessage converts an OutputEvent into a Kafka message with headers in
// key order.
func toMessage(out domain.OutputEvent) kafkago.Message {
	keys := make([]string, 0, len(out.Headers))
	for k := range out.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	headers := make([]kafkago.Header, len(keys))
	for i, k := range keys {
		headers[i] = kafkago.Header{Key: k, Value: []byte(out.Headers[k])}
	}
	return kafkago.Message{Key: out.Key, Value: out.Value, Headers: headers}
}
