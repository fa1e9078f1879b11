package document

import (
	"time"

	"github.com/medisupply/medisupply/internal/core/domain"
)

type ProductDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Price       int64     `bson:"price"`
	Stock       int       `bson:"stock"`
	Brand       string    `bson:"brand"`
	Batch       string    `bson:"batch"`
	TypeID      string    `bson:"type_id"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (doc ProductDocument) GetID() string {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	return domain.RehydrateProduct(
		domain.ID(doc.ID),
		domain.Entity{CreatedAt: doc.CreatedAt, UpdatedAt: doc.UpdatedAt},
		domain.Name(doc.Name),
		domain.Description(doc.Description),
		domain.Amount(doc.Price),
		domain.Stock(doc.Stock),
		domain.Brand(doc.Brand),
		domain.Batch(doc.Batch),
		domain.ID(doc.TypeID),
	)
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	return &ProductDocument{
		ID:          string(p.ID()),
		Name:        string(p.Name),
		Description: string(p.Description),
		Price:       int64(p.Price),
		Stock:       int(p.Stock),
		Brand:       string(p.Brand),
		Batch:       string(p.Batch),
		TypeID:      string(p.TypeID),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ProductTypeDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (doc ProductTypeDocument) GetID() string {
	return doc.ID
}

func (doc *ProductTypeDocument) ToDomain() *domain.ProductType {
	return domain.RehydrateProductType(
		domain.ID(doc.ID),
		domain.Entity{CreatedAt: doc.CreatedAt, UpdatedAt: doc.UpdatedAt},
		domain.Name(doc.Name),
		domain.Description(doc.Description),
	)
}

func ToProductTypeDocument(pt *domain.ProductType) *ProductTypeDocument {
	return &ProductTypeDocument{
		ID:          string(pt.ID()),
		Name:        string(pt.Name),
		Description: string(pt.Description),
		CreatedAt:   pt.CreatedAt,
		UpdatedAt:   pt.UpdatedAt,
	}
}
