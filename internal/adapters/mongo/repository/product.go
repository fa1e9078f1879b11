package repository

import (
	"context"
	"fmt"

	"github.com/medisupply/medisupply/internal/adapters/mongo/document"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepository is the write side for products. Every successful write is
// followed by a synchronous projection into the read store; a failed
// projection is logged and swallowed, the write itself stands and the read
// model lags until the next projection of the same document.
type ProductRepository struct {
	products  *BaseRepository[document.ProductDocument]
	types     *BaseRepository[document.ProductTypeDocument]
	views     *BaseRepository[document.ProductViewDocument]
	typeViews *BaseRepository[document.ProductTypeViewDocument]
}

func NewProductRepository(writeDB, readDB *mongo.Database) port.ProductCommandRepository {
	return &ProductRepository{
		products:  NewBaseRepository[document.ProductDocument](writeDB, "products"),
		types:     NewBaseRepository[document.ProductTypeDocument](writeDB, "product_types"),
		views:     NewBaseRepository[document.ProductViewDocument](readDB, "product_views"),
		typeViews: NewBaseRepository[document.ProductTypeViewDocument](readDB, "product_type_views"),
	}
}

func (r *ProductRepository) Add(ctx context.Context, product *domain.Product) error {
	if err := r.products.Create(ctx, document.ToProductDocument(product)); err != nil {
		return err
	}

	r.projectProduct(ctx, product.ID())
	r.projectTypeCount(ctx, product.TypeID)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.products.Replace(ctx, string(product.ID()), document.ToProductDocument(product)); err != nil {
		return err
	}

	r.projectProduct(ctx, product.ID())
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) error {
	doc, err := r.products.FindByID(ctx, string(id))
	if err != nil {
		return err
	}

	if err := r.products.DeleteByID(ctx, string(id)); err != nil {
		return err
	}

	if err := r.views.DeleteByID(ctx, string(id)); err != nil {
		logger.Error(ctx, "projection: product view delete failed", err, map[string]any{
			"product_id": id,
		})
	}
	r.projectTypeCount(ctx, domain.ID(doc.TypeID))
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.products.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

// projectProduct recomputes the denormalized product view from write-side
// state: the product document joined with its type document. Nothing is
// copied from the caller's in-memory aggregate.
func (r *ProductRepository) projectProduct(ctx context.Context, id domain.ID) {
	err := func() error {
		productDoc, err := r.products.FindByID(ctx, string(id))
		if err != nil {
			return err
		}
		typeDoc, err := r.types.FindByID(ctx, productDoc.TypeID)
		if err != nil {
			return fmt.Errorf("type lookup for projection: %w", err)
		}

		view := &document.ProductViewDocument{
			ID:              productDoc.ID,
			Name:            productDoc.Name,
			Description:     productDoc.Description,
			Price:           productDoc.Price,
			Stock:           productDoc.Stock,
			Brand:           productDoc.Brand,
			Batch:           productDoc.Batch,
			TypeID:          typeDoc.ID,
			TypeName:        typeDoc.Name,
			TypeDescription: typeDoc.Description,
			CreatedAt:       productDoc.CreatedAt,
			UpdatedAt:       productDoc.UpdatedAt,
		}
		return r.views.Upsert(ctx, view.ID, view)
	}()
	if err != nil {
		logger.Error(ctx, "projection: product view failed", err, map[string]any{
			"product_id": id,
		})
	}
}

// projectTypeCount refreshes the product_count on the type view after a
// product was added or removed under that type.
func (r *ProductRepository) projectTypeCount(ctx context.Context, typeID domain.ID) {
	err := func() error {
		typeDoc, err := r.types.FindByID(ctx, string(typeID))
		if err != nil {
			return err
		}
		count, err := r.products.Count(ctx, bson.M{"type_id": string(typeID)})
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
			"type_id": typeID,
		})
	}
}
