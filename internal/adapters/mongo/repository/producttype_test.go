package repository_test

import (
	"context"
	"testing"

	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

func TestProductTypeRepository_Add(t *testing.T) {
	_, types, _, typeViews := newProductRepos("type_add")
	ctx := context.Background()

	productType := createTestType(t, types)

	view, err := typeViews.GetByID(ctx, productType.ID())
	if err != nil {
		t.Fatalf("expected projected type view, got %v", err)
	}
	if view.Name != "Analgesico" {
		t.Fatalf("unexpected name %q", view.Name)
	}
	if view.ProductCount != 0 {
		t.Fatalf("expected product count 0, got %d", view.ProductCount)
	}
}

func TestProductTypeRepository_Update(t *testing.T) {
	products, types, productViews, _ := newProductRepos("type_update")
	ctx := context.Background()

	t.Run("re-denormalizes product views under the type", func(t *testing.T) {
		productType := createTestType(t, types)
		product := createTestProduct(t, products, productType.ID())

		productType.Name = "Antiinflamatorio"
		productType.Description = "Inflammation relief"
		if err := types.Update(ctx, productType); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		view, err := productViews.GetByID(ctx, product.ID())
		if err != nil {
			t.Fatalf("expected view, got %v", err)
		}
		if view.TypeName != "Antiinflamatorio" {
			t.Fatalf("type name not re-denormalized: %q", view.TypeName)
		}
		if view.TypeDescription != "Inflammation relief" {
			t.Fatalf("type description not re-denormalized: %q", view.TypeDescription)
		}
	})
}

func TestProductTypeRepository_Delete(t *testing.T) {
	products, types, _, typeViews := newProductRepos("type_delete")
	ctx := context.Background()

	t.Run("refuses while products reference the type", func(t *testing.T) {
		productType := createTestType(t, types)
		createTestProduct(t, products, productType.ID())

		err := types.Delete(ctx, productType.ID())
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected KindConflict, got %v", err)
		}
		if _, err := types.GetByID(ctx, productType.ID()); err != nil {
			t.Fatalf("type must survive the refused delete, got %v", err)
		}
	})

	t.Run("deletes an unreferenced type and its view", func(t *testing.T) {
		productType := createTestType(t, types)

		if err := types.Delete(ctx, productType.ID()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := types.GetByID(ctx, productType.ID()); !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
		if _, err := typeViews.GetByID(ctx, productType.ID()); !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected view removed, got %v", err)
		}
	})

	t.Run("unknown type is not found", func(t *testing.T) {
		err := types.Delete(ctx, domain.NextID())
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
