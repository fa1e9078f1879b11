package port

import (
	"context"

	"github.com/medisupply/medisupply/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductCommandRepository is the write side: normalized schema, full
// mutation surface. Add and Update are responsible for synchronously
// projecting the written state into the read store (best effort; a failed
// projection is logged and the read side lags).
type ProductCommandRepository interface {
	Add(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id domain.ID) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
}

// ProductQueryRepository is the read side: denormalized schema, reads only.
// Mutating calls fail with an unsupported-operation error by contract.
type ProductQueryRepository interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.ProductView, error)
	GetAll(ctx context.Context) ([]*domain.ProductView, error)
	GetByType(ctx context.Context, typeID domain.ID) ([]*domain.ProductView, error)
	Add(ctx context.Context, view *domain.ProductView) error
	Update(ctx context.Context, view *domain.ProductView) error
	Delete(ctx context.Context, id domain.ID) error
}
