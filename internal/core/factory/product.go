// Package factory builds validated aggregates from transport DTOs and maps
// them back out to read DTOs. It is the single translation point between the
// domain and the transport layer: controllers and handlers never touch value
// objects directly.
package factory

import (
	"time"

	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

// ProductFactory validates fail-fast: the first failing rule's message is
// what the caller sees.
type ProductFactory struct{}

func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

func (f *ProductFactory) Build(request *dto.CreateProductRequest) (*domain.Product, error) {
	name := domain.Name(request.Name)
	description := domain.Description(request.Description)
	price := domain.NewAmountFromValue(request.Price)
	stock := domain.Stock(request.Stock)
	typeID := domain.ID(request.ProductTypeID)

	if rule := domain.CheckRules(
		domain.ProductNameRequired{Value: name},
		domain.ProductDescriptionRequired{Value: description},
		domain.ProductPriceMustBePositive{Value: price},
		domain.ProductStockMustNotBeNegative{Value: stock},
		domain.ProductTypeRequired{Value: typeID},
	); rule != nil {
		return nil, serviceerrors.NewInvalidRequestError(rule.Message())
	}

	product := domain.NewProduct(name, description, price, stock,
		domain.Brand(request.Brand), domain.Batch(request.Batch), typeID)
	product.Record(domain.NewProductCreated(product))
	return product, nil
}

// Apply overwrites the mutable fields of an existing product from an update
// request, re-running the same rules.
func (f *ProductFactory) Apply(product *domain.Product, request *dto.UpdateProductRequest) error {
	name := domain.Name(request.Name)
	description := domain.Description(request.Description)
	price := domain.NewAmountFromValue(request.Price)
	stock := domain.Stock(request.Stock)

	if rule := domain.CheckRules(
		domain.ProductNameRequired{Value: name},
		domain.ProductDescriptionRequired{Value: description},
		domain.ProductPriceMustBePositive{Value: price},
		domain.ProductStockMustNotBeNegative{Value: stock},
	); rule != nil {
		return serviceerrors.NewInvalidRequestError(rule.Message())
	}

	product.Name = name
	product.Description = description
	product.Price = price
	product.Stock = stock
	product.Brand = domain.Brand(request.Brand)
	product.Batch = domain.Batch(request.Batch)
	product.Touch()
	return nil
}

func (f *ProductFactory) ViewToDTO(view *domain.ProductView) dto.ProductDTO {
	return dto.ProductDTO{
		ID:              string(view.ID),
		Name:            view.Name,
		Description:     view.Description,
		Price:           view.Price.ToValue(),
		Stock:           view.Stock,
		Brand:           view.Brand,
		Batch:           view.Batch,
		TypeID:          string(view.TypeID),
		TypeName:        view.TypeName,
		TypeDescription: view.TypeDescription,
		CreatedAt:       view.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       view.UpdatedAt.Format(time.RFC3339),
	}
}

func (f *ProductFactory) ToInfoDTO(product *domain.Product, typeName string) dto.ProductInfoDTO {
	return dto.ProductInfoDTO{
		ID:    string(product.ID()),
		Name:  string(product.Name),
		Price: product.Price.ToValue(),
		Stock: int(product.Stock),
		Type:  typeName,
	}
}

type ProductTypeFactory struct{}

func NewProductTypeFactory() *ProductTypeFactory {
	return &ProductTypeFactory{}
}

func (f *ProductTypeFactory) Build(request *dto.CreateProductTypeRequest) (*domain.ProductType, error) {
	name := domain.Name(request.Name)
	description := domain.Description(request.Description)

	if rule := domain.CheckRules(
		domain.ProductTypeNameRequired{Value: name},
		domain.ProductTypeDescriptionRequired{Value: description},
	); rule != nil {
		return nil, serviceerrors.NewInvalidRequestError(rule.Message())
	}

	return domain.NewProductType(name, description), nil
}

func (f *ProductTypeFactory) ViewToDTO(view *domain.ProductTypeView) dto.ProductTypeDTO {
	return dto.ProductTypeDTO{
		ID:           string(view.ID),
		Name:         view.Name,
		Description:  view.Description,
		ProductCount: view.ProductCount,
		CreatedAt:    view.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    view.UpdatedAt.Format(time.RFC3339),
	}
}
