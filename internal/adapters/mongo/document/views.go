package document

import (
	"time"

	"github.com/medisupply/medisupply/internal/core/domain"
)

// View documents are written only by the projection path of the command
// repositories. Amounts stay in cents on disk and surface as values through
// the domain view types.

type ProductViewDocument struct {
	ID              string    `bson:"_id"`
	Name            string    `bson:"name"`
	Description     string    `bson:"description"`
	Price           int64     `bson:"price"`
	Stock           int       `bson:"stock"`
	Brand           string    `bson:"brand"`
	Batch           string    `bson:"batch"`
	TypeID          string    `bson:"type_id"`
	TypeName        string    `bson:"type_name"`
	TypeDescription string    `bson:"type_description"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

func (doc ProductViewDocument) GetID() string {
	return doc.ID
}

func (doc *ProductViewDocument) ToDomain() *domain.ProductView {
	return &domain.ProductView{
		ID:              domain.ID(doc.ID),
		Name:            doc.Name,
		Description:     doc.Description,
		Price:           domain.Amount(doc.Price),
		Stock:           doc.Stock,
		Brand:           doc.Brand,
		Batch:           doc.Batch,
		TypeID:          domain.ID(doc.TypeID),
		TypeName:        doc.TypeName,
		TypeDescription: doc.TypeDescription,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

type ProductTypeViewDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Description  string    `bson:"description"`
	ProductCount int       `bson:"product_count"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (doc ProductTypeViewDocument) GetID() string {
	return doc.ID
}

func (doc *ProductTypeViewDocument) ToDomain() *domain.ProductTypeView {
	return &domain.ProductTypeView{
		ID:           domain.ID(doc.ID),
		Name:         doc.Name,
		Description:  doc.Description,
		ProductCount: doc.ProductCount,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

type OrderItemViewDocument struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
	UnitPrice int64  `bson:"unit_price"`
	Total     int64  `bson:"total"`
}

type OrderViewDocument struct {
	ID          string                  `bson:"_id"`
	ClientID    string                  `bson:"client_id"`
	OrderDate   time.Time               `bson:"order_date"`
	Status      string                  `bson:"status"`
	ItemsDetail []OrderItemViewDocument `bson:"items_detail"`
	ItemCount   int                     `bson:"item_count"`
	Total       int64                   `bson:"total"`
	CreatedAt   time.Time               `bson:"created_at"`
	UpdatedAt   time.Time               `bson:"updated_at"`
}

func (doc OrderViewDocument) GetID() string {
	return doc.ID
}

func (doc *OrderViewDocument) ToDomain() *domain.OrderView {
	items := make([]domain.OrderItemView, len(doc.ItemsDetail))
	for i, item := range doc.ItemsDetail {
		items[i] = domain.OrderItemView{
			ProductID: domain.ID(item.ProductID),
			Quantity:  item.Quantity,
			UnitPrice: domain.Amount(item.UnitPrice).ToValue(),
			Total:     domain.Amount(item.Total).ToValue(),
		}
	}
	return &domain.OrderView{
		ID:          domain.ID(doc.ID),
		ClientID:    domain.ID(doc.ClientID),
		OrderDate:   doc.OrderDate,
		Status:      domain.OrderStatus(doc.Status),
		ItemsDetail: items,
		ItemCount:   doc.ItemCount,
		Total:       domain.Amount(doc.Total),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
