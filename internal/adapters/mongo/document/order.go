package document

import (
	"time"

	"github.com/medisupply/medisupply/internal/core/domain"
)

type OrderItemDocument struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
	UnitPrice int64  `bson:"unit_price"`
}

type OrderDocument struct {
	ID        string              `bson:"_id"`
	ClientID  string              `bson:"client_id"`
	OrderDate time.Time           `bson:"order_date"`
	Status    string              `bson:"status"`
	Items     []OrderItemDocument `bson:"items"`
	Total     int64               `bson:"total"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

func (doc OrderDocument) GetID() string {
	return doc.ID
}

func (doc *OrderDocument) ToDomain() *domain.Order {
	items := make([]domain.Item, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = domain.Item{
			ProductID: domain.ID(item.ProductID),
			Quantity:  item.Quantity,
			UnitPrice: domain.Amount(item.UnitPrice),
		}
	}
	return domain.RehydrateOrder(
		domain.ID(doc.ID),
		domain.Entity{CreatedAt: doc.CreatedAt, UpdatedAt: doc.UpdatedAt},
		domain.ID(doc.ClientID),
		doc.OrderDate,
		domain.OrderStatus(doc.Status),
		items,
		domain.Amount(doc.Total),
	)
}

func ToOrderDocument(o *domain.Order) *OrderDocument {
	items := make([]OrderItemDocument, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemDocument{
			ProductID: string(item.ProductID),
			Quantity:  item.Quantity,
			UnitPrice: int64(item.UnitPrice),
		}
	}
	return &OrderDocument{
		ID:        string(o.ID()),
		ClientID:  string(o.ClientID),
		OrderDate: o.OrderDate,
		Status:    string(o.Status),
		Items:     items,
		Total:     int64(o.Total),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
