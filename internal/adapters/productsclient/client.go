// Package productsclient is the Orders-side HTTP client for the Products
// service. Every failure mode reads as "product missing": a timeout, a
// refused connection or a non-200 all block order creation instead of
// letting an order through against unknown stock.
package productsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/medisupply/medisupply/internal/adapters/config"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/port"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.ProductsClientConfig) port.ProductsClient {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) GetProduct(ctx context.Context, id domain.ID) (*port.ProductInfo, error) {
	url := fmt.Sprintf("%s/api/v1/products/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error(ctx, "products client: request failed", err, map[string]any{
			"product_id": id,
		})
		return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not reachable", id))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	if resp.StatusCode != http.StatusOK {
		logger.Error(ctx, "products client: unexpected status", nil, map[string]any{
			"product_id": id,
			"status":     resp.StatusCode,
		})
		return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not reachable", id))
	}

	var info dto.ProductInfoDTO
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s response malformed", id))
	}

	return &port.ProductInfo{
		ID:    domain.ID(info.ID),
		Name:  info.Name,
		Price: domain.NewAmountFromValue(info.Price),
		Stock: info.Stock,
		Type:  info.Type,
	}, nil
}

// ValidateProductsAndStock checks each distinct product once. A missing or
// unreachable product yields Exists=false rather than an error, so the
// caller sees one uniform validation result per id.
func (c *Client) ValidateProductsAndStock(ctx context.Context, items []port.ItemRequest) (map[domain.ID]port.ItemValidation, error) {
	results := make(map[domain.ID]port.ItemValidation, len(items))

	for _, item := range items {
		info, err := c.GetProduct(ctx, item.ProductID)
		if err != nil {
			results[item.ProductID] = port.ItemValidation{
				Exists:    false,
				Requested: item.Quantity,
			}
			continue
		}

		results[item.ProductID] = port.ItemValidation{
			Exists:    true,
			StockOK:   info.Stock >= item.Quantity,
			Available: info.Stock,
			Requested: item.Quantity,
			Product:   info,
		}
	}

	return results, nil
}
