package repository_test

import (
	"context"
	"testing"

	adaptermongo "github.com/medisupply/medisupply/internal/adapters/mongo"
	"github.com/medisupply/medisupply/internal/adapters/mongo/repository"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/port"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

func newProductRepos(dbSuffix string) (port.ProductCommandRepository, port.ProductTypeCommandRepository, port.ProductQueryRepository, port.ProductTypeQueryRepository) {
	writeDB := testClient.Database("products_command_" + dbSuffix)
	readDB := testClient.Database("products_query_" + dbSuffix)
	tx := adaptermongo.NewTransactionManager(testClient)
	return repository.NewProductRepository(writeDB, readDB),
		repository.NewProductTypeRepository(writeDB, readDB, tx),
		repository.NewProductViewRepository(readDB),
		repository.NewProductTypeViewRepository(readDB)
}

func createTestType(t *testing.T, types port.ProductTypeCommandRepository) *domain.ProductType {
	t.Helper()
	productType := domain.NewProductType("Analgesico", "Pain relief")
	if err := types.Add(context.Background(), productType); err != nil {
		t.Fatalf("setup: create product type failed: %v", err)
	}
	return productType
}

func createTestProduct(t *testing.T, products port.ProductCommandRepository, typeID domain.ID) *domain.Product {
	t.Helper()
	product := domain.NewProduct("Paracetamol 500mg", "Analgesic", 1050, 100, "Genfar", "L-2025-01", typeID)
	if err := products.Add(context.Background(), product); err != nil {
		t.Fatalf("setup: create product failed: %v", err)
	}
	return product
}

func TestProductRepository_Add(t *testing.T) {
	products, types, productViews, typeViews := newProductRepos("add")
	ctx := context.Background()

	t.Run("persists and projects a denormalized view", func(t *testing.T) {
		productType := createTestType(t, types)
		product := createTestProduct(t, products, productType.ID())

		view, err := productViews.GetByID(ctx, product.ID())
		if err != nil {
			t.Fatalf("expected projected view, got %v", err)
		}
		if view.Name != "Paracetamol 500mg" {
			t.Fatalf("unexpected name %q", view.Name)
		}
		if int64(view.Price) != 1050 {
			t.Fatalf("expected price 1050 cents, got %d", view.Price)
		}
		if view.TypeName != "Analgesico" || view.TypeDescription != "Pain relief" {
			t.Fatalf("type fields not denormalized: %+v", view)
		}
	})

	t.Run("refreshes the type product count", func(t *testing.T) {
		productType := createTestType(t, types)
		createTestProduct(t, products, productType.ID())
		createTestProduct(t, products, productType.ID())

		typeView, err := typeViews.GetByID(ctx, productType.ID())
		if err != nil {
			t.Fatalf("expected projected type view, got %v", err)
		}
		if typeView.ProductCount != 2 {
			t.Fatalf("expected product count 2, got %d", typeView.ProductCount)
		}
	})

	t.Run("write stands when the projection cannot resolve the type", func(t *testing.T) {
		product := domain.NewProduct("Orphan", "No type on file", 500, 5, "", "", domain.NextID())

		if err := products.Add(ctx, product); err != nil {
			t.Fatalf("expected the write to stand, got %v", err)
		}

		if _, err := products.GetByID(ctx, product.ID()); err != nil {
			t.Fatalf("expected product in the write store, got %v", err)
		}
		if _, err := productViews.GetByID(ctx, product.ID()); !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected no view for orphan product, got %v", err)
		}
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	products, types, _, _ := newProductRepos("get")
	ctx := context.Background()

	t.Run("rehydrates the aggregate", func(t *testing.T) {
		productType := createTestType(t, types)
		created := createTestProduct(t, products, productType.ID())

		found, err := products.GetByID(ctx, created.ID())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID() != created.ID() {
			t.Fatalf("expected id %s, got %s", created.ID(), found.ID())
		}
		if found.Name != created.Name {
			t.Fatalf("expected name %q, got %q", created.Name, found.Name)
		}
		if found.Price != created.Price {
			t.Fatalf("expected price %d, got %d", created.Price, found.Price)
		}
		if found.TypeID != productType.ID() {
			t.Fatalf("expected type id %s, got %s", productType.ID(), found.TypeID)
		}
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := products.GetByID(ctx, domain.NextID())
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductRepository_Update(t *testing.T) {
	products, types, productViews, _ := newProductRepos("update")
	ctx := context.Background()

	t.Run("reprojects the view", func(t *testing.T) {
		productType := createTestType(t, types)
		product := createTestProduct(t, products, productType.ID())

		product.UpdateStock(product.Stock.Deduct(30), "venta")
		if err := products.Update(ctx, product); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		view, err := productViews.GetByID(ctx, product.ID())
		if err != nil {
			t.Fatalf("expected view, got %v", err)
		}
		if view.Stock != 70 {
			t.Fatalf("expected projected stock 70, got %d", view.Stock)
		}
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		ghost := domain.NewProduct("Ghost", "Never persisted", 100, 1, "", "", domain.NextID())

		err := products.Update(ctx, ghost)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestProductRepository_Delete(t *testing.T) {
	products, types, productViews, typeViews := newProductRepos("delete")
	ctx := context.Background()

	t.Run("removes the view and refreshes the type count", func(t *testing.T) {
		productType := createTestType(t, types)
		product := createTestProduct(t, products, productType.ID())

		if err := products.Delete(ctx, product.ID()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := productViews.GetByID(ctx, product.ID()); !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected view removed, got %v", err)
		}
		typeView, err := typeViews.GetByID(ctx, productType.ID())
		if err != nil {
			t.Fatalf("expected type view, got %v", err)
		}
		if typeView.ProductCount != 0 {
			t.Fatalf("expected product count 0, got %d", typeView.ProductCount)
		}
	})
}

func TestProductViewRepository_ReadOnly(t *testing.T) {
	_, _, productViews, typeViews := newProductRepos("readonly")
	ctx := context.Background()

	if err := productViews.Add(ctx, &domain.ProductView{}); !serviceerrors.IsOfKind(err, serviceerrors.KindUnsupported) {
		t.Fatalf("expected KindUnsupported, got %v", err)
	}
	if err := productViews.Update(ctx, &domain.ProductView{}); !serviceerrors.IsOfKind(err, serviceerrors.KindUnsupported) {
		t.Fatalf("expected KindUnsupported, got %v", err)
	}
	if err := typeViews.Delete(ctx, domain.NextID()); !serviceerrors.IsOfKind(err, serviceerrors.KindUnsupported) {
		t.Fatalf("expected KindUnsupported, got %v", err)
	}
}
