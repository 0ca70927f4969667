package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/atlasgoods/fulfillment-service/internal/config"

	"github.com/segmentio/kafka-go"
)

// kafkaHandler consumes order events the commerce platform exports through
// the message bus. Events that fail to parse or ingest go to the DLQ topic.
type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	ingestor OrderIngestor
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, ingestor OrderIngestor) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		ingestor: ingestor,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		if err := h.handleOrderEvent(ctx, m); err != nil {
			consumerFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// The writer retries internally.
			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			consumerDLQ.Inc()
		} else {
			consumerProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			consumerCommitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleOrderEvent(ctx context.Context, m kafka.Message) error {
	var payload WebhookOrder
	if err := json.Unmarshal(m.Value, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	// Non-order and malformed-but-parseable events come back as ingest
	// results, not errors, so they are committed without hitting the DLQ.
	_, err := h.ingestor.Ingest(ctx, OrderEventFromJSON(payload))
	return err
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
