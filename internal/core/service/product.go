package service

import (
	"context"
	"fmt"
	"time"

	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
	"github.com/medisupply/medisupply/internal/core/events"
	"github.com/medisupply/medisupply/internal/core/factory"
	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/port"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

const productCacheTTL = 15 * time.Minute

type ProductService struct {
	products     port.ProductCommandRepository
	productViews port.ProductQueryRepository
	types        port.ProductTypeCommandRepository
	typeViews    port.ProductTypeQueryRepository
	viewCache    port.CachePort[domain.ProductView]
	factory      *factory.ProductFactory
	typeFactory  *factory.ProductTypeFactory
	dispatcher   *events.Dispatcher
}

func NewProductService(
	products port.ProductCommandRepository,
	productViews port.ProductQueryRepository,
	types port.ProductTypeCommandRepository,
	typeViews port.ProductTypeQueryRepository,
	viewCache port.CachePort[domain.ProductView],
	dispatcher *events.Dispatcher,
) *ProductService {
	return &ProductService{
		products:     products,
		productViews: productViews,
		types:        types,
		typeViews:    typeViews,
		viewCache:    viewCache,
		factory:      factory.NewProductFactory(),
		typeFactory:  factory.NewProductTypeFactory(),
		dispatcher:   dispatcher,
	}
}

func (s *ProductService) cacheKey(id domain.ID) string {
	return fmt.Sprintf("product:%s", id)
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	// Referential integrity is strict: a missing type reference rejects the
	// write, there is no placeholder substitution.
	if _, err := s.types.GetByID(ctx, domain.ID(request.ProductTypeID)); err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewInvalidRequestError(
				fmt.Sprintf("referenced product type %s does not exist", request.ProductTypeID))
		}
		return nil, err
	}

	product, err := s.factory.Build(request)
	if err != nil {
		return nil, err
	}

	if err := s.products.Add(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":    request.Name,
			"type_id": request.ProductTypeID,
		})
		return nil, err
	}

	s.dispatcher.DispatchAll(ctx, product.PullEvents())

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID()})
	return product, nil
}

func (s *ProductService) CreateProductType(ctx context.Context, request *dto.CreateProductTypeRequest) (*domain.ProductType, error) {
	productType, err := s.typeFactory.Build(request)
	if err != nil {
		return nil, err
	}

	if err := s.types.Add(ctx, productType); err != nil {
		logger.Error(ctx, "product type: create failed", err, map[string]any{
			"name": request.Name,
		})
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, domain.NewProductTypeCreated(productType))

	logger.Info(ctx, "Product type created", map[string]any{"type_id": productType.ID()})
	return productType, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id domain.ID, request *dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.factory.Apply(product, request); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: update failed", err, map[string]any{
			"product_id": id,
		})
		return nil, err
	}

	if err := s.viewCache.Del(ctx, s.cacheKey(id)); err != nil {
		logger.Error(ctx, "cache: invalidate product failed", err, map[string]any{
			"product_id": id,
		})
	}

	logger.Info(ctx, "Product updated", map[string]any{"product_id": id})
	return product, nil
}

// DeductStock applies a sale to the product's stock and re-projects. It backs
// both the HTTP stock command and the PedidoCreado event handler, so stock
// can never go negative regardless of which path mutates it.
func (s *ProductService) DeductStock(ctx context.Context, id domain.ID, quantity int, reason string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !product.Stock.CanDeduct(quantity) {
		return nil, serviceerrors.NewUnprocessableEntityError(fmt.Sprintf(
			"insufficient stock for product %s: available %d, requested %d",
			id, product.Stock, quantity))
	}

	product.UpdateStock(product.Stock.Deduct(quantity), reason)

	if err := s.products.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: stock update failed", err, map[string]any{
			"product_id": id,
			"quantity":   quantity,
		})
		return nil, err
	}

	if err := s.viewCache.Del(ctx, s.cacheKey(id)); err != nil {
		logger.Error(ctx, "cache: invalidate product failed", err, map[string]any{
			"product_id": id,
		})
	}

	s.dispatcher.DispatchAll(ctx, product.PullEvents())

	logger.Info(ctx, "Product stock updated", map[string]any{
		"product_id": id,
		"stock":      int(product.Stock),
	})
	return product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id domain.ID) (*domain.ProductView, error) {
	cached, err := s.viewCache.Get(ctx, s.cacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": id,
		})
	}
	if cached != nil {
		return cached, nil
	}

	view, err := s.productViews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.viewCache.Set(ctx, s.cacheKey(id), view, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{
			"product_id": id,
		})
	}

	return view, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]*domain.ProductView, error) {
	return s.productViews.GetAll(ctx)
}

func (s *ProductService) GetProductsByType(ctx context.Context, typeID domain.ID) ([]*domain.ProductView, error) {
	return s.productViews.GetByType(ctx, typeID)
}

func (s *ProductService) GetAllProductTypes(ctx context.Context) ([]*domain.ProductTypeView, error) {
	return s.typeViews.GetAll(ctx)
}

// GetProductInfo serves the inter-service lookup. It reads the write store:
// the Orders service validates stock against it, and the freshest state wins
// over read-model latency here.
func (s *ProductService) GetProductInfo(ctx context.Context, id domain.ID) (*dto.ProductInfoDTO, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	typeName := ""
	if productType, err := s.types.GetByID(ctx, product.TypeID); err == nil {
		typeName = string(productType.Name)
	}

	info := s.factory.ToInfoDTO(product, typeName)
	return &info, nil
}
