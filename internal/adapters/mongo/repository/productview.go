package repository

import (
	"context"

	"github.com/medisupply/medisupply/internal/adapters/mongo/document"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/port"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// errReadOnlyStore rejects mutations through the query side. The projection
// path inside the command repositories is the only writer of view documents.
func errReadOnlyStore() error {
	return serviceerrors.NewUnsupportedError("query store is read-only")
}

type ProductViewRepository struct {
	views *BaseRepository[document.ProductViewDocument]
}

func NewProductViewRepository(readDB *mongo.Database) port.ProductQueryRepository {
	return &ProductViewRepository{
		views: NewBaseRepository[document.ProductViewDocument](readDB, "product_views"),
	}
}

func (r *ProductViewRepository) GetByID(ctx context.Context, id domain.ID) (*domain.ProductView, error) {
	doc, err := r.views.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductViewRepository) GetAll(ctx context.Context) ([]*domain.ProductView, error) {
	docs, err := r.views.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	views := make([]*domain.ProductView, len(docs))
	for i, doc := range docs {
		views[i] = doc.ToDomain()
	}

	return views, nil
}

func (r *ProductViewRepository) GetByType(ctx context.Context, typeID domain.ID) ([]*domain.ProductView, error) {
	docs, err := r.views.Find(ctx, bson.M{"type_id": string(typeID)})
	if err != nil {
		return nil, err
	}

	views := make([]*domain.ProductView, len(docs))
	for i, doc := range docs {
		views[i] = doc.ToDomain()
	}

	return views, nil
}

func (r *ProductViewRepository) Add(ctx context.Context, view *domain.ProductView) error {
	return errReadOnlyStore()
}

func (r *ProductViewRepository) Update(ctx context.Context, view *domain.ProductView) error {
	return errReadOnlyStore()
}

func (r *ProductViewRepository) Delete(ctx context.Context, id domain.ID) error {
	return errReadOnlyStore()
}
