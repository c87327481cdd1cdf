package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/planeseats/config"
	"github.com/segmentio/kafka-go"
)

// Consumer reads ticket events for one consumer group.
type Consumer struct {
	brokers []string
	reader  *kafka.Reader
	log     *slog.Logger
}

func NewConsumer(cfg config.KafkaConfig, log *slog.Logger) *Consumer {
	return &Consumer{
		brokers: cfg.Brokers,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.GroupID,
			Topic:             cfg.TicketEventsTopic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// CheckConnection dials the first broker and lists its partitions.
func (c *Consumer) CheckConnection(ctx context.Context) error {
	if len(c.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", c.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	c.log.InfoContext(ctx, "connected to kafka", slog.Int("partitions", len(partitions)))
	return nil
}

// ConsumeTicketEvents passes every decodable event to handle until ctx ends or
// handle fails. Malformed messages are logged and skipped.
func (c *Consumer) ConsumeTicketEvents(ctx context.Context, handle func(context.Context, TicketEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		if err := c.dispatch(ctx, msg, handle); err != nil {
			return err
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg kafka.Message, handle func(context.Context, TicketEvent) error) error {
	event, err := DecodeTicketEvent(msg)
	if err != nil {
		c.log.WarnContext(ctx, "skipping malformed ticket event",
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return handle(ctx, event)
}

// DecodeTicketEvent unmarshals a message value written by Producer.
func DecodeTicketEvent(msg kafka.Message) (TicketEvent, error) {
	var event TicketEvent
	err := json.Unmarshal(msg.Value, &event)
	return event, err
}
