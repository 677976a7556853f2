package services

import (
	"context"
	"encoding/json"
	"fmt"
	"photomagnet_server/structs"
	"photomagnet_server/structs/tables"
	"time"

	"github.com/IBM/sarama"
	"github.com/MonkyMars/gecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// EventPublisher publishes order lifecycle events. Publishing is best
// effort: callers log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, order *tables.Order) error
	Close() error
}

// NewEventPublisher returns a Kafka publisher when brokers are configured
// and a no-op publisher otherwise.
func NewEventPublisher(logger *gecho.Logger, cfg *structs.EventsConfig) EventPublisher {
	if len(cfg.Brokers) == 0 {
		logger.Info("No Kafka brokers configured, order events disabled")
		return NoopPublisher{}
	}

	producer, err := NewKafkaProducer(cfg)
	if err != nil {
		logger.Warn("Kafka unavailable, order events disabled", gecho.Field("error", err))
		return NoopPublisher{}
	}

	logger.Info("Kafka producer initialized", gecho.Field("brokers", cfg.Brokers), gecho.Field("topic", cfg.OrderTopic))
	return NewKafkaPublisher(logger, producer, cfg.OrderTopic)
}

func NewKafkaProducer(cfg *structs.EventsConfig) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.ClientID = cfg.ClientID
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 0

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return producer, nil
}

type KafkaPublisher struct {
	logger   *gecho.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(logger *gecho.Logger, producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		logger:   logger,
		producer: producer,
		topic:    topic,
	}
}

func (kp *KafkaPublisher) Publish(ctx context.Context, eventType string, order *tables.Order) error {
	event := structs.OrderEvent{
		Type:       eventType,
		OrderId:    order.OrderId,
		OccurredAt: time.Now().UTC(),
		Order:      order,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: kp.topic,
		Key:   sarama.StringEncoder(order.OrderId),
		Value: sarama.ByteEncoder(eventJSON),
	}

	// Inject trace context into Kafka message headers
	carrier := make(saramaHeaderCarrier, 0)
	otel.GetTextMapPropagator().Inject(ctx, &carrier)
	msg.Headers = []sarama.RecordHeader(carrier)

	partition, offset, err := kp.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	traceID := ""
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		traceID = span.SpanContext().TraceID().String()
	}

	kp.logger.Debug("Order event published",
		gecho.Field("trace_id", traceID),
		gecho.Field("topic", kp.topic),
		gecho.Field("event_type", eventType),
		gecho.Field("order_id", order.OrderId),
		gecho.Field("partition", partition),
		gecho.Field("offset", offset),
	)
	return nil
}

func (kp *KafkaPublisher) Close() error {
	return kp.producer.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, *tables.Order) error { return nil }
func (NoopPublisher) Close() error                                         { return nil }

// saramaHeaderCarrier adapts Kafka record headers to propagation.TextMapCarrier
type saramaHeaderCarrier []sarama.RecordHeader

func (c saramaHeaderCarrier) Get(key string) string {
	for _, h := range c {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *saramaHeaderCarrier) Set(key, value string) {
	*c = append(*c, sarama.RecordHeader{
		Key:   []byte(key),
		Value: []byte(value),
	})
}

func (c saramaHeaderCarrier) Keys() []string {
	keys := make([]string, len(c))
	for i, h := range c {
		keys[i] = string(h.Key)
	}
	return keys
}
