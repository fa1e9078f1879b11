package service

import (
	"context"
	"fmt"

	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

// StockOnOrderCreated is the Products-side reaction to a PedidoCreado event
// coming off the broker: one stock deduction per order line.
//
// The dedup claim makes redeliveries no-ops, so applying is idempotent at the
// event level. Business rejections on single lines (product gone, stock
// already short) are logged and skipped rather than nacked: redelivering the
// event would never fix them, and holding the whole event hostage to one bad
// line would poison the queue.
type StockOnOrderCreated struct {
	products *ProductService
	dedup    *EventDedup
}

func NewStockOnOrderCreated(products *ProductService, dedup *EventDedup) *StockOnOrderCreated {
	return &StockOnOrderCreated{products: products, dedup: dedup}
}

func (h *StockOnOrderCreated) Handle(ctx context.Context, event domain.OrderCreated) (any, error) {
	claimed, err := h.dedup.Claim(ctx, event.EventID(), event.EventType())
	if err != nil {
		return nil, err
	}
	if !claimed {
		logger.Info(ctx, "Order event already applied, skipping", map[string]any{
			"event_id": event.EventID(),
			"order_id": event.OrderID,
		})
		return nil, nil
	}

	reason := fmt.Sprintf("venta pedido %s", event.OrderID)
	for _, item := range event.Items {
		// Broker payloads are not trusted: a non-positive quantity would
		// pass the stock check and inflate stock on deduction.
		if item.Quantity <= 0 {
			logger.Error(ctx, "order event: line skipped", fmt.Errorf("non-positive quantity %d", item.Quantity), map[string]any{
				"event_id":   event.EventID(),
				"order_id":   event.OrderID,
				"product_id": item.ProductID,
			})
			continue
		}
		_, err := h.products.DeductStock(ctx, item.ProductID, item.Quantity, reason)
		if err == nil {
			continue
		}
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) ||
			serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			logger.Error(ctx, "order event: line skipped", err, map[string]any{
				"event_id":   event.EventID(),
				"order_id":   event.OrderID,
				"product_id": item.ProductID,
			})
			continue
		}
		// Infrastructure failure: release the claim so the redelivery
		// retries the event.
		h.dedup.Release(ctx, event.EventID())
		return nil, err
	}

	logger.Info(ctx, "Order event applied", map[string]any{
		"event_id": event.EventID(),
		"order_id": event.OrderID,
		"items":    len(event.Items),
	})
	return nil, nil
}
