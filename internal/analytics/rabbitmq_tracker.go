package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// ExchangeName is the name of the topic exchange for analytics events.
	ExchangeName = "vocalis.analytics.events"
)

// RabbitMQTracker publishes analytics events to RabbitMQ.
type RabbitMQTracker struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewRabbitMQTracker creates a new RabbitMQ tracker.
func NewRabbitMQTracker(url string, logger *slog.Logger) (*RabbitMQTracker, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Info("RabbitMQ tracker connected", "exchange", ExchangeName)

	return &RabbitMQTracker{
		conn:     conn,
		channel:  ch,
		exchange: ExchangeName,
		logger:   logger,
	}, nil
}

// Track publishes the event with its name as routing key.
func (t *RabbitMQTracker) Track(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	err = t.channel.PublishWithContext(ctx,
		t.exchange, // exchange
		event.Name, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         payload,
		},
	)
	if err != nil {
		t.logger.Error("failed to publish event",
			"event", event.Name,
			"error", err,
		)
		return err
	}

	t.logger.Debug("event published",
		"event", event.Name,
		"session_id", event.SessionID,
	)

	return nil
}

// Close closes the tracker connection.
func (t *RabbitMQTracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.channel != nil {
		if err := t.channel.Close(); err != nil {
			t.logger.Warn("error closing channel", "error", err)
		}
	}

	if t.conn != nil {
		if err := t.conn.Close(); err != nil {
			return err
		}
	}

	t.logger.Info("RabbitMQ tracker closed")
	return nil
}

// NoopTracker is a no-op tracker for testing/development.
type NoopTracker struct {
	logger *slog.Logger
}

// NewNoopTracker creates a tracker that does nothing.
func NewNoopTracker(logger *slog.Logger) *NoopTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopTracker{logger: logger}
}

// Track logs the event but doesn't actually publish.
func (t *NoopTracker) Track(ctx context.Context, event Event) error {
	t.logger.Debug("noop track",
		"event", event.Name,
		"session_id", event.SessionID,
	)
	return nil
}

// Close is a no-op.
func (t *NoopTracker) Close() error {
	return nil
}

var (
	_ Tracker = (*RabbitMQTracker)(nil)
	_ Tracker = (*NoopTracker)(nil)
)
