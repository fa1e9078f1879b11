package repository

import (
	"context"

	"github.com/medisupply/medisupply/internal/adapters/mongo/document"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderViewRepository struct {
	views *BaseRepository[document.OrderViewDocument]
}

func NewOrderViewRepository(readDB *mongo.Database) port.OrderQueryRepository {
	return &OrderViewRepository{
		views: NewBaseRepository[document.OrderViewDocument](readDB, "order_views"),
	}
}

func (r *OrderViewRepository) GetByID(ctx context.Context, id domain.ID) (*domain.OrderView, error) {
	doc, err := r.views.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *OrderViewRepository) GetAll(ctx context.Context) ([]*domain.OrderView, error) {
	docs, err := r.views.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	views := make([]*domain.OrderView, len(docs))
	for i, doc := range docs {
		views[i] = doc.ToDomain()
	}

	return views, nil
}

func (r *OrderViewRepository) GetByClientID(ctx context.Context, clientID domain.ID) ([]*domain.OrderView, error) {
	docs, err := r.views.Find(ctx, bson.M{"client_id": string(clientID)})
	if err != nil {
		return nil, err
	}

	views := make([]*domain.OrderView, len(docs))
	for i, doc := range docs {
		views[i] = doc.ToDomain()
	}

	return views, nil
}

func (r *OrderViewRepository) Add(ctx context.Context, view *domain.OrderView) error {
	return errReadOnlyStore()
}

func (r *OrderViewRepository) Update(ctx context.Context, view *domain.OrderView) error {
	return errReadOnlyStore()
}

func (r *OrderViewRepository) Delete(ctx context.Context, id domain.ID) error {
	return errReadOnlyStore()
}
