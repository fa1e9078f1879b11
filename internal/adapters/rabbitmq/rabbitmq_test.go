package rabbitmq_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	"github.com/medisupply/medisupply/internal/adapters/config"
	"github.com/medisupply/medisupply/internal/adapters/rabbitmq"
	"github.com/medisupply/medisupply/internal/core/dispatch"
	"github.com/medisupply/medisupply/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

var (
	testAdapter      *rabbitmq.RabbitMQAdapter
	testAmqpEndpoint string
)

func testConfig(queue string) config.RabbitMQConfig {
	return config.RabbitMQConfig{
		URL:        testAmqpEndpoint,
		Exchange:   "medisupply.events",
		MaxRetries: 2,
		RetryDelay: 100 * time.Millisecond,
		Queue:      queue,
		Prefetch:   1,
	}
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("failed to start rabbitmq container: %v", err)
	}

	testAmqpEndpoint, err = container.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("failed to get amqp url: %v", err)
	}

	testAdapter, err = rabbitmq.NewRabbitMQAdapter(testConfig(""))
	if err != nil {
		log.Fatalf("failed to create rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = testAdapter.Close()
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func TestRabbitMQAdapter_HealthCheck(t *testing.T) {
	t.Run("healthy after connection", func(t *testing.T) {
		if err := testAdapter.HealthCheck(); err != nil {
			t.Fatalf("expected healthy, got %v", err)
		}
	})

	t.Run("fails after close", func(t *testing.T) {
		adapter, err := rabbitmq.NewRabbitMQAdapter(testConfig(""))
		if err != nil {
			t.Fatalf("failed to create adapter: %v", err)
		}

		_ = adapter.Close()

		if err := adapter.HealthCheck(); err == nil {
			t.Fatal("expected health check to fail after close")
		}
	})
}

func TestRabbitMQAdapter_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes the versioned envelope under the type's routing key", func(t *testing.T) {
		conn, err := amqp.Dial(testAmqpEndpoint)
		if err != nil {
			t.Fatalf("consumer dial failed: %v", err)
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			t.Fatalf("consumer channel failed: %v", err)
		}
		defer ch.Close()

		q, err := ch.QueueDeclare("envelope-capture", false, true, false, false, nil)
		if err != nil {
			t.Fatalf("queue declare failed: %v", err)
		}
		if err := ch.QueueBind(q.Name, "productos.tipo_creado", "medisupply.events", false, nil); err != nil {
			t.Fatalf("queue bind failed: %v", err)
		}
		msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
		if err != nil {
			t.Fatalf("consume failed: %v", err)
		}

		event := domain.NewProductTypeCreated(domain.NewProductType("Analgesico", "Pain relief"))
		if err := testAdapter.Publish(ctx, event); err != nil {
			t.Fatalf("publish failed: %v", err)
		}

		select {
		case msg := <-msgs:
			var envelope domain.Envelope
			if err := json.Unmarshal(msg.Body, &envelope); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if envelope.ID != event.EventID() {
				t.Fatalf("expected id %s, got %s", event.EventID(), envelope.ID)
			}
			if envelope.EventType != "TipoProductoCreado" {
				t.Fatalf("expected TipoProductoCreado, got %s", envelope.EventType)
			}
			if envelope.Version != domain.EnvelopeVersion {
				t.Fatalf("expected version %s, got %s", domain.EnvelopeVersion, envelope.Version)
			}
			if envelope.Data["nombre"] != "Analgesico" {
				t.Fatalf("payload not carried: %v", envelope.Data)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for message")
		}
	})
}

func TestConsumer_SubscribeTwice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan domain.OrderCreated, 2)

	newConsumer := func() *rabbitmq.Consumer {
		bus := dispatch.NewEventBus()
		bus.Bind(domain.OrderCreated{}, dispatch.Handle(func(ctx context.Context, event domain.OrderCreated) (any, error) {
			received <- event
			return nil, nil
		}))
		consumer := rabbitmq.NewConsumer(testConfig("test.pedidos.shared"), bus)
		consumer.RegisterFactory("PedidoCreado", func(id string, occurredAt time.Time, data map[string]any) (domain.Event, error) {
			return domain.OrderCreatedFromPayload(id, occurredAt, data)
		})
		return consumer
	}

	first := newConsumer()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("first subscription failed: %v", err)
	}
	defer first.Stop()

	// The queue, exchange and binding already exist. Subscribing again must
	// reuse them without error.
	second := newConsumer()
	if err := second.Start(ctx); err != nil {
		t.Fatalf("second subscription on the same queue failed: %v", err)
	}
	defer second.Stop()

	order := domain.NewOrder("client-2", time.Now().UTC(), domain.OrderStatusPending, []domain.Item{
		{ProductID: "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb", Quantity: 1, UnitPrice: 1050},
	})
	published := domain.NewOrderCreated(order)

	if err := testAdapter.Publish(context.Background(), published); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case event := <-received:
		if event.EventID() != published.EventID() {
			t.Fatalf("expected event id %s, got %s", published.EventID(), event.EventID())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case event := <-received:
		t.Fatalf("event %s delivered twice", event.EventID())
	case <-time.After(2 * time.Second):
	}
}

func TestConsumer_Roundtrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan domain.OrderCreated, 1)

	bus := dispatch.NewEventBus()
	bus.Bind(domain.OrderCreated{}, dispatch.Handle(func(ctx context.Context, event domain.OrderCreated) (any, error) {
		received <- event
		return nil, nil
	}))

	consumer := rabbitmq.NewConsumer(testConfig("test.pedidos"), bus)
	consumer.RegisterFactory("PedidoCreado", func(id string, occurredAt time.Time, data map[string]any) (domain.Event, error) {
		return domain.OrderCreatedFromPayload(id, occurredAt, data)
	})

	if err := consumer.Start(ctx); err != nil {
		t.Fatalf("consumer start failed: %v", err)
	}
	defer consumer.Stop()

	order := domain.NewOrder("client-1", time.Now().UTC(), domain.OrderStatusPending, []domain.Item{
		{ProductID: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", Quantity: 2, UnitPrice: 1050},
	})
	published := domain.NewOrderCreated(order)

	if err := testAdapter.Publish(context.Background(), published); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case event := <-received:
		if event.EventID() != published.EventID() {
			t.Fatalf("expected event id %s, got %s", published.EventID(), event.EventID())
		}
		if event.OrderID != order.ID() {
			t.Fatalf("expected order id %s, got %s", order.ID(), event.OrderID)
		}
		if len(event.Items) != 1 || event.Items[0].Quantity != 2 {
			t.Fatalf("items not carried: %+v", event.Items)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}
