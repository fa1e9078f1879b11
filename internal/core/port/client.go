package port

import (
	"context"

	"github.com/medisupply/medisupply/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductInfo is what the Products service exposes for inter-service lookups.
type ProductInfo struct {
	ID    domain.ID
	Name  string
	Price domain.Amount
	Stock int
	Type  string
}

// ItemRequest is one order line to validate: product id plus requested
// quantity.
type ItemRequest struct {
	ProductID domain.ID
	Quantity  int
}

// ItemValidation reports existence and stock for one distinct product id.
type ItemValidation struct {
	Exists    bool
	StockOK   bool
	Available int
	Requested int
	Product   *ProductInfo
}

// ProductsClient is the synchronous HTTP lookup against the Products service.
// All call sites are fail-closed: a network failure or timeout reads as
// "product missing", which blocks order creation rather than risking an
// order against unknown stock.
type ProductsClient interface {
	GetProduct(ctx context.Context, id domain.ID) (*ProductInfo, error)
	ValidateProductsAndStock(ctx context.Context, items []ItemRequest) (map[domain.ID]ItemValidation, error)
}
