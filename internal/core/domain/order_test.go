package domain

import (
	"testing"
	"time"
)

func TestOrderTotal(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Quantity: 2, UnitPrice: 1050},
		{ProductID: "p2", Quantity: 1, UnitPrice: 399},
	}
	if OrderTotal(items) != 2499 {
		t.Fatalf("expected 2499, got %d", OrderTotal(items))
	}
}

func TestNewOrder(t *testing.T) {
	items := []Item{{ProductID: "p1", Quantity: 3, UnitPrice: 500}}
	order := NewOrder("client-1", time.Now(), OrderStatusPending, items)

	if order.ID() == "" {
		t.Fatal("expected assigned id")
	}
	if order.Total != 1500 {
		t.Fatalf("expected total 1500, got %d", order.Total)
	}

	// total is captured at creation, later price changes never reprice it
	order.Items[0].UnitPrice = 9999
	if order.Total != 1500 {
		t.Fatal("total must not be re-derived")
	}
}

func TestOrderCreatedFromPayload(t *testing.T) {
	t.Run("roundtrip through payload", func(t *testing.T) {
		order := NewOrder("client-1", time.Now(), OrderStatusPending, []Item{
			{ProductID: "p1", Quantity: 2, UnitPrice: 1050},
		})
		original := NewOrderCreated(order)

		// numbers arrive as float64 after JSON decoding
		payload := original.Payload()
		items := payload["items_info"].([]map[string]any)
		decoded := make([]any, len(items))
		for i, item := range items {
			decoded[i] = map[string]any{
				"producto_id": item["producto_id"],
				"cantidad":    float64(item["cantidad"].(int)),
				"precio":      item["precio"],
			}
		}
		payload["items_info"] = decoded

		event, err := OrderCreatedFromPayload(original.EventID(), original.OccurredAt(), payload)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if event.OrderID != order.ID() {
			t.Fatalf("expected order id %s, got %s", order.ID(), event.OrderID)
		}
		if len(event.Items) != 1 || event.Items[0].Quantity != 2 {
			t.Fatalf("items not rebuilt: %+v", event.Items)
		}
		if event.Items[0].UnitPrice != 10.50 {
			t.Fatalf("expected unit price 10.50, got %f", event.Items[0].UnitPrice)
		}
	})

	t.Run("missing order id fails", func(t *testing.T) {
		_, err := OrderCreatedFromPayload("evt-1", time.Now(), map[string]any{
			"cliente_id": "client-1",
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestNewEnvelope(t *testing.T) {
	order := NewOrder("client-1", time.Now(), OrderStatusPending, []Item{
		{ProductID: "p1", Quantity: 1, UnitPrice: 100},
	})
	event := NewOrderCreated(order)
	envelope := NewEnvelope(event)

	if envelope.ID != event.EventID() {
		t.Fatal("envelope id mismatch")
	}
	if envelope.EventType != "PedidoCreado" {
		t.Fatalf("unexpected event type %q", envelope.EventType)
	}
	if envelope.Version != EnvelopeVersion {
		t.Fatalf("unexpected version %q", envelope.Version)
	}
	if envelope.Data["pedido_id"] != string(order.ID()) {
		t.Fatal("payload not carried")
	}
}
