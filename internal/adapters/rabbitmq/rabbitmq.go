// Package rabbitmq bridges the in-process event dispatcher to the broker.
// The publisher side implements events.Publisher; the consumer side feeds
// decoded envelopes back into the dispatch.EventBus. Delivery is
// at-least-once, duplicate suppression lives with the event handlers.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/medisupply/medisupply/internal/adapters/config"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQAdapter struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	config  config.RabbitMQConfig
}

func NewRabbitMQAdapter(cfg config.RabbitMQConfig) (*RabbitMQAdapter, error) {
	adapter := &RabbitMQAdapter{config: cfg, mu: sync.Mutex{}}

	if err := adapter.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return adapter, nil
}

func (r *RabbitMQAdapter) connect() error {
	conn, err := amqp.Dial(r.config.URL)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	// Declaration is idempotent: redeclaring an existing exchange with the
	// same settings is a no-op, so both services can race on startup.
	if err := ch.ExchangeDeclare(r.config.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange %s: %w", r.config.Exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	r.conn = conn
	r.channel = ch
	return nil
}

func (r *RabbitMQAdapter) reconnect() error {
	if r.channel != nil {
		r.channel.Close()
		r.channel = nil
	}
	if r.conn != nil {
		r.conn.Close()
		r.conn = nil
	}
	return r.connect()
}

// Publish wraps the event in its versioned envelope and sends it with the
// routing key from the static table. It waits for the broker confirm so a
// returned nil really means the broker owns the message.
func (r *RabbitMQAdapter) Publish(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(domain.NewEnvelope(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	routingKey := RoutingKeyFor(event.EventType())
	if err := r.publish(ctx, routingKey, body); err != nil {
		return err
	}

	logger.Info(ctx, "Event published", map[string]any{
		"event_id":    event.EventID(),
		"event_type":  event.EventType(),
		"routing_key": routingKey,
	})
	return nil
}

func (r *RabbitMQAdapter) publish(ctx context.Context, routingKey string, body []byte) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}

	var lastErr error
	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(r.config.RetryDelay)
		}

		r.mu.Lock()

		if r.channel == nil {
			if err := r.reconnect(); err != nil {
				r.mu.Unlock()
				lastErr = fmt.Errorf("reconnect failed: %w", err)
				logger.Error(ctx, "publish: reconnect failed", err, map[string]any{
					"attempt": attempt + 1,
				})
				continue
			}
		}

		confirmation, err := r.channel.PublishWithDeferredConfirmWithContext(
			ctx, r.config.Exchange, routingKey, false, false, msg)
		if err != nil {
			r.channel = nil
			r.mu.Unlock()
			lastErr = err
			logger.Error(ctx, "publish: failed", err, map[string]any{
				"attempt": attempt + 1,
			})
			continue
		}

		r.mu.Unlock()

		acked, err := confirmation.WaitContext(ctx)
		if err != nil {
			return err
		}
		if !acked {
			lastErr = fmt.Errorf("broker nacked the message")
			continue
		}
		return nil
	}

	return fmt.Errorf("failed to publish after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *RabbitMQAdapter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing channel: %w", err))
		}
		r.channel = nil
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing connection: %w", err))
		}
		r.conn = nil
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ: %v", errs)
	}
	return nil
}

func (r *RabbitMQAdapter) HealthCheck() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return fmt.Errorf("connection is closed")
	}
	if r.channel == nil {
		return fmt.Errorf("channel is nil")
	}
	return nil
}
