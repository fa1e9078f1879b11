package repository

import (
	"context"

	"github.com/medisupply/medisupply/internal/adapters/mongo/document"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductTypeViewRepository struct {
	views *BaseRepository[document.ProductTypeViewDocument]
}

func NewProductTypeViewRepository(readDB *mongo.Database) port.ProductTypeQueryRepository {
	return &ProductTypeViewRepository{
		views: NewBaseRepository[document.ProductTypeViewDocument](readDB, "product_type_views"),
	}
}

func (r *ProductTypeViewRepository) GetByID(ctx context.Context, id domain.ID) (*domain.ProductTypeView, error) {
	doc, err := r.views.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductTypeViewRepository) GetAll(ctx context.Context) ([]*domain.ProductTypeView, error) {
	docs, err := r.views.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	views := make([]*domain.ProductTypeView, len(docs))
	for i, doc := range docs {
		views[i] = doc.ToDomain()
	}

	return views, nil
}

func (r *ProductTypeViewRepository) Add(ctx context.Context, view *domain.ProductTypeView) error {
	return errReadOnlyStore()
}

func (r *ProductTypeViewRepository) Update(ctx context.Context, view *domain.ProductTypeView) error {
	return errReadOnlyStore()
}

func (r *ProductTypeViewRepository) Delete(ctx context.Context, id domain.ID) error {
	return errReadOnlyStore()
}
