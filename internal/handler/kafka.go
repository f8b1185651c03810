package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"

	"github.com/storekit/storefront-service/internal/config"
	"github.com/storekit/storefront-service/internal/entities"
)

type CatalogIngestor interface {
	UpsertItem(ctx context.Context, item entities.CatalogItem) error
	RemoveItem(ctx context.Context, storeID, itemID string) error
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	catalog  CatalogIngestor
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, catalog CatalogIngestor) *kafkaHandler {
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
		validate: validator.New(),
		catalog:  catalog,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleCatalogEvent(ctx, m); err != nil {
			h.logger.Error("failed to handle message", slog.Any("error", err))
			eventsFailed.Inc()

			// the writer retries internally
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleCatalogEvent(ctx context.Context, m kafka.Message) error {
	var event CatalogEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal catalog event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid catalog event: %w", err)
	}

	switch event.Op {
	case "upsert":
		return h.catalog.UpsertItem(ctx, CatalogEventToEntity(event))
	case "delete":
		return h.catalog.RemoveItem(ctx, event.StoreID, event.ItemID)
	default:
		return fmt.Errorf("unknown catalog event op %q", event.Op)
	}
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
