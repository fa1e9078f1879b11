package domain

import (
	"fmt"
	"time"
)

// OrderStatus values keep the Spanish wire names of the existing contract.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDIENTE"
	OrderStatusConfirmed OrderStatus = "CONFIRMADO"
	OrderStatusShipped   OrderStatus = "ENVIADO"
	OrderStatusDelivered OrderStatus = "ENTREGADO"
	OrderStatusCancelled OrderStatus = "CANCELADO"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Item is owned by its Order. The unit price is captured at order time and
// never re-derived from the product afterwards.
type Item struct {
	ProductID ID
	Quantity  int
	UnitPrice Amount
}

func NewItem(productID ID, quantity int, unitPrice Amount) Item {
	return Item{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice}
}

func (i Item) Total() Amount {
	return i.UnitPrice.Multiply(i.Quantity)
}

// Order is an aggregate root and the sole consistency boundary for its items.
type Order struct {
	Entity
	ClientID  ID
	OrderDate time.Time
	Status    OrderStatus
	Items     []Item
	Total     Amount

	events []Event
}

func OrderTotal(items []Item) Amount {
	total := Amount(0)
	for _, item := range items {
		total = total.Add(item.Total())
	}
	return total
}

// NewOrder computes the total once, from the unit prices captured in the
// items. Later price changes on the referenced products never reprice it.
func NewOrder(clientID ID, orderDate time.Time, status OrderStatus, items []Item) *Order {
	o := &Order{
		Entity:    NewEntity(),
		ClientID:  clientID,
		OrderDate: orderDate,
		Status:    status,
		Items:     items,
		Total:     OrderTotal(items),
	}
	_ = o.SetID(NextID())
	return o
}

func RehydrateOrder(id ID, e Entity, clientID ID, orderDate time.Time, status OrderStatus, items []Item, total Amount) *Order {
	o := &Order{
		Entity:    e,
		ClientID:  clientID,
		OrderDate: orderDate,
		Status:    status,
		Items:     items,
		Total:     total,
	}
	_ = o.SetID(id)
	return o
}

func (o *Order) Record(event Event) {
	o.events = append(o.events, event)
}

func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

// OrderCreatedItem is the flat item shape carried inside the PedidoCreado
// payload.
type OrderCreatedItem struct {
	ProductID ID
	Quantity  int
	UnitPrice float64
}

type OrderCreated struct {
	BaseEvent
	OrderID   ID
	ClientID  ID
	OrderDate time.Time
	Status    OrderStatus
	Items     []OrderCreatedItem
	Total     float64
}

func NewOrderCreated(o *Order) OrderCreated {
	items := make([]OrderCreatedItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderCreatedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.ToValue(),
		}
	}
	return OrderCreated{
		BaseEvent: NewBaseEvent(),
		OrderID:   o.ID(),
		ClientID:  o.ClientID,
		OrderDate: o.OrderDate,
		Status:    o.Status,
		Items:     items,
		Total:     o.Total.ToValue(),
	}
}

func (e OrderCreated) EventType() string {
	return "PedidoCreado"
}

func (e OrderCreated) Payload() map[string]any {
	items := make([]map[string]any, len(e.Items))
	for i, item := range e.Items {
		items[i] = map[string]any{
			"producto_id": string(item.ProductID),
			"cantidad":    item.Quantity,
			"precio":      item.UnitPrice,
		}
	}
	return map[string]any{
		"pedido_id":    string(e.OrderID),
		"cliente_id":   string(e.ClientID),
		"fecha_pedido": e.OrderDate.Format(time.RFC3339Nano),
		"estado":       string(e.Status),
		"items_info":   items,
		"total":        e.Total,
	}
}

// OrderCreatedFromPayload rebuilds a typed OrderCreated from a decoded
// envelope. The consumer's event factory table uses it when a PedidoCreado
// message arrives from the other service.
func OrderCreatedFromPayload(id string, occurredAt time.Time, data map[string]any) (OrderCreated, error) {
	event := OrderCreated{BaseEvent: BaseEvent{ID: id, At: occurredAt}}

	orderID, ok := data["pedido_id"].(string)
	if !ok || orderID == "" {
		return OrderCreated{}, fmt.Errorf("pedido_id missing in PedidoCreado payload")
	}
	event.OrderID = ID(orderID)

	if clientID, ok := data["cliente_id"].(string); ok {
		event.ClientID = ID(clientID)
	}
	if rawDate, ok := data["fecha_pedido"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, rawDate); err == nil {
			event.OrderDate = parsed
		}
	}
	if status, ok := data["estado"].(string); ok {
		event.Status = OrderStatus(status)
	}
	if total, ok := data["total"].(float64); ok {
		event.Total = total
	}

	rawItems, _ := data["items_info"].([]any)
	for _, rawItem := range rawItems {
		fields, ok := rawItem.(map[string]any)
		if !ok {
			continue
		}
		item := OrderCreatedItem{}
		if productID, ok := fields["producto_id"].(string); ok {
			item.ProductID = ID(productID)
		}
		if quantity, ok := fields["cantidad"].(float64); ok {
			item.Quantity = int(quantity)
		}
		if price, ok := fields["precio"].(float64); ok {
			item.UnitPrice = price
		}
		event.Items = append(event.Items, item)
	}

	return event, nil
}
