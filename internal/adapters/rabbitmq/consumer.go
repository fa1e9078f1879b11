package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/medisupply/medisupply/internal/adapters/config"
	"github.com/medisupply/medisupply/internal/core/dispatch"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventFactory rebuilds a typed domain event from a decoded envelope.
type EventFactory func(id string, occurredAt time.Time, data map[string]any) (domain.Event, error)

// Consumer subscribes a durable queue to the event exchange and feeds decoded
// events into the event bus. Unknown event types and undecodable payloads are
// acked and dropped after logging; handler failures are nacked with requeue,
// so the broker redelivers and the dedup guard absorbs the duplicates.
type Consumer struct {
	config    config.RabbitMQConfig
	bus       *dispatch.EventBus
	factories map[string]EventFactory

	conn    *amqp.Connection
	channel *amqp.Channel
	wg      sync.WaitGroup
}

func NewConsumer(cfg config.RabbitMQConfig, bus *dispatch.EventBus) *Consumer {
	return &Consumer{
		config:    cfg,
		bus:       bus,
		factories: make(map[string]EventFactory),
	}
}

// RegisterFactory is startup-time wiring, one factory per event type this
// service consumes. The consumer binds one routing key per registered type.
func (c *Consumer) RegisterFactory(eventType string, factory EventFactory) {
	c.factories[eventType] = factory
}

// Start declares the queue, binds it and launches the delivery loop. Queue
// and binding declarations are idempotent, restarts reuse the existing queue
// and its backlog.
func (c *Consumer) Start(ctx context.Context) error {
	if c.config.Queue == "" {
		return fmt.Errorf("consumer queue name is empty")
	}

	conn, err := amqp.Dial(c.config.URL)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(c.config.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange %s: %w", c.config.Exchange, err)
	}

	queue, err := ch.QueueDeclare(c.config.Queue, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", c.config.Queue, err)
	}

	for eventType := range c.factories {
		if err := ch.QueueBind(queue.Name, RoutingKeyFor(eventType), c.config.Exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return fmt.Errorf("failed to bind queue %s: %w", queue.Name, err)
		}
	}

	if err := ch.Qos(c.config.Prefetch, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := ch.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.conn = conn
	c.channel = ch

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				c.handle(ctx, delivery)
			}
		}
	}()

	logger.Info(ctx, "Consumer started", map[string]any{
		"queue":    queue.Name,
		"exchange": c.config.Exchange,
	})
	return nil
}

func (c *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	var envelope domain.Envelope
	if err := json.Unmarshal(delivery.Body, &envelope); err != nil {
		logger.Error(ctx, "consumer: undecodable message dropped", err, map[string]any{
			"routing_key": delivery.RoutingKey,
		})
		_ = delivery.Ack(false)
		return
	}

	attrs := map[string]any{
		"event_id":   envelope.ID,
		"event_type": envelope.EventType,
	}

	if envelope.Version != domain.EnvelopeVersion {
		logger.Warn(ctx, "consumer: unsupported envelope version dropped", map[string]any{
			"event_id": envelope.ID,
			"version":  envelope.Version,
		})
		_ = delivery.Ack(false)
		return
	}

	factory, ok := c.factories[envelope.EventType]
	if !ok {
		logger.Warn(ctx, "consumer: no factory for event type, dropping", attrs)
		_ = delivery.Ack(false)
		return
	}

	occurredAt, err := time.Parse(time.RFC3339Nano, envelope.OccurredAt)
	if err != nil {
		occurredAt = time.Now()
	}

	event, err := factory(envelope.ID, occurredAt, envelope.Data)
	if err != nil {
		logger.Error(ctx, "consumer: malformed payload dropped", err, attrs)
		_ = delivery.Ack(false)
		return
	}

	if _, err := c.bus.Execute(ctx, event); err != nil {
		logger.Error(ctx, "consumer: event handling failed, requeueing", err, attrs)
		_ = delivery.Nack(false, true)
		return
	}

	_ = delivery.Ack(false)
}

// Stop closes the subscription and waits for the in-flight delivery to
// finish.
func (c *Consumer) Stop() {
	if c.channel != nil {
		c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.wg.Wait()
}
