package repository

import (
	"context"

	"github.com/medisupply/medisupply/internal/adapters/mongo/document"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/port"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductTypeRepository struct {
	types     *BaseRepository[document.ProductTypeDocument]
	products  *BaseRepository[document.ProductDocument]
	typeViews *BaseRepository[document.ProductTypeViewDocument]
	views     *BaseRepository[document.ProductViewDocument]
	tx        port.TransactionManager
}

func NewProductTypeRepository(writeDB, readDB *mongo.Database, tx port.TransactionManager) port.ProductTypeCommandRepository {
	return &ProductTypeRepository{
		types:     NewBaseRepository[document.ProductTypeDocument](writeDB, "product_types"),
		products:  NewBaseRepository[document.ProductDocument](writeDB, "products"),
		typeViews: NewBaseRepository[document.ProductTypeViewDocument](readDB, "product_type_views"),
		views:     NewBaseRepository[document.ProductViewDocument](readDB, "product_views"),
		tx:        tx,
	}
}

func (r *ProductTypeRepository) Add(ctx context.Context, productType *domain.ProductType) error {
	if err := r.types.Create(ctx, document.ToProductTypeDocument(productType)); err != nil {
		return err
	}

	r.projectType(ctx, productType.ID())
	return nil
}

func (r *ProductTypeRepository) Update(ctx context.Context, productType *domain.ProductType) error {
	if err := r.types.Replace(ctx, string(productType.ID()), document.ToProductTypeDocument(productType)); err != nil {
		return err
	}

	r.projectType(ctx, productType.ID())

	// Re-denormalize name and description into every product view under
	// this type.
	err := r.views.UpdateMany(ctx,
		bson.M{"type_id": string(productType.ID())},
		bson.M{
			"type_name":        string(productType.Name),
			"type_description": string(productType.Description),
		})
	if err != nil {
		logger.Error(ctx, "projection: product views re-denormalize failed", err, map[string]any{
			"type_id": productType.ID(),
		})
	}
	return nil
}

// Delete refuses to remove a type that products still reference. The check
// and the delete run in one transaction so a concurrent product insert
// cannot slip between them.
func (r *ProductTypeRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		count, err := r.products.Count(ctx, bson.M{"type_id": string(id)})
		if err != nil {
			return err
		}
		if count > 0 {
			return serviceerrors.NewConflictError("product type is still referenced by products")
		}
		return r.types.DeleteByID(ctx, string(id))
	})
	if err != nil {
		return err
	}

	if err := r.typeViews.DeleteByID(ctx, string(id)); err != nil {
		logger.Error(ctx, "projection: product type view delete failed", err, map[string]any{
			"type_id": id,
		})
	}
	return nil
}

func (r *ProductTypeRepository) GetByID(ctx context.Context, id domain.ID) (*domain.ProductType, error) {
	doc, err := r.types.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductTypeRepository) projectType(ctx context.Context, id domain.ID) {
	err := func() error {
		typeDoc, err := r.types.FindByID(ctx, string(id))
		if err != nil {
			return err
		}
		count, err := r.products.Count(ctx, bson.M{"type_id": string(id)})
		if err != nil {
			return err
		}

		view := &document.ProductTypeViewDocument{
			ID:           typeDoc.ID,
			Name:         typeDoc.Name,
			Description:  typeDoc.Description,
			ProductCount: int(count),
			CreatedAt:    typeDoc.CreatedAt,
			UpdatedAt:    typeDoc.UpdatedAt,
		}
		return r.typeViews.Upsert(ctx, view.ID, view)
	}()
	if err != nil {
		logger.Error(ctx, "projection: product type view failed", err, map[string]any{
			"type_id": id,
		})
	}
}
