// Package kafka publishes committed order status changes to a Kafka topic.
// Publishing is best effort by contract: the transition has already committed
// when the event goes out, so callers log failures and move on.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"orderstatus/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

// dialTimeout bounds the startup probe that verifies the broker is reachable.
const dialTimeout = 5 * time.Second

// StatusChangedEvent is the wire shape of one committed status transition.
type StatusChangedEvent struct {
	OrderID        string    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewStatusChangedEvent builds the event describing the transition the
// aggregate just went through, from previous to its current status.
func NewStatusChangedEvent(aggregate *order.Order, previous order.Status, occurredAt time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:        aggregate.ID().String(),
		PreviousStatus: previous.String(),
		NewStatus:      aggregate.Status().String(),
		OccurredAt:     occurredAt,
	}
}

// Publisher emits order status change events to a single Kafka topic.
// Events for the same order share a message key, so consumers reading one
// partition see that order's transitions in commit order.
type Publisher struct {
	writer *kafkago.Writer
	topic  string
	logger *slog.Logger
}

// NewPublisher connects to the broker, makes sure the topic exists and
// returns a ready publisher. The dial probe keeps a misconfigured broker
// from surfacing only on the first transition.
func NewPublisher(host string, topic string, logger *slog.Logger) (*Publisher, error) {
	if host == "" {
		return nil, fmt.Errorf("kafka host is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "kafka-publisher")

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := kafkago.DialContext(ctx, "tcp", host)
	if err != nil {
		return nil, fmt.Errorf("kafka connect: %w", err)
	}
	defer conn.Close()

	ensureTopic(conn, topic, logger)

	return &Publisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(host),
			Balancer: &kafkago.LeastBytes{},
		},
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishStatusChanged emits one status change event. The message key is the
// order identifier, keeping per-order ordering within a partition.
func (p *Publisher) PublishStatusChanged(ctx context.Context, aggregate *order.Order, previous order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := NewStatusChangedEvent(aggregate, previous, time.Now().UTC())
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode status change event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: p.topic,
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// ensureTopic creates the topic if it does not already exist. Requires a live
// connection to any broker; uses it to discover the controller and issue
// CreateTopics. Errors are logged but not fatal since the broker may have
// auto.create.topics.enable=true anyway.
func ensureTopic(conn *kafkago.Conn, topic string, logger *slog.Logger) {
	controller, err := conn.Controller()
	if err != nil {
		logger.Warn("cannot find controller for topic creation", "error", err)
		return
	}

	controllerAddr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	controllerConn, err := kafkago.Dial("tcp", controllerAddr)
	if err != nil {
		logger.Warn("cannot connect to controller", "error", err)
		return
	}
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		logger.Warn("topic auto-create", "topic", topic, "error", err)
		return
	}

	logger.Info("ensured topic exists", "topic", topic)
}
