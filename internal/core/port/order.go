package port

import (
	"context"

	"github.com/medisupply/medisupply/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type OrderCommandRepository interface {
	Add(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id domain.ID) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Order, error)
}

type OrderQueryRepository interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.OrderView, error)
	GetAll(ctx context.Context) ([]*domain.OrderView, error)
	GetByClientID(ctx context.Context, clientID domain.ID) ([]*domain.OrderView, error)
	Add(ctx context.Context, view *domain.OrderView) error
	Update(ctx context.Context, view *domain.OrderView) error
	Delete(ctx context.Context, id domain.ID) error
}
