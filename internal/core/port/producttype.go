package port

import (
	"context"

	"github.com/medisupply/medisupply/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductTypeCommandRepository interface {
	Add(ctx context.Context, productType *domain.ProductType) error
	Update(ctx context.Context, productType *domain.ProductType) error
	Delete(ctx context.Context, id domain.ID) error
	GetByID(ctx context.Context, id domain.ID) (*domain.ProductType, error)
}

type ProductTypeQueryRepository interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.ProductTypeView, error)
	GetAll(ctx context.Context) ([]*domain.ProductTypeView, error)
	Add(ctx context.Context, view *domain.ProductTypeView) error
	Update(ctx context.Context, view *domain.ProductTypeView) error
	Delete(ctx context.Context, id domain.ID) error
}
