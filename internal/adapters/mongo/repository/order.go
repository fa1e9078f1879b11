package repository

import (
	"context"

	"github.com/medisupply/medisupply/internal/adapters/mongo/document"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/port"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	orders *BaseRepository[document.OrderDocument]
	views  *BaseRepository[document.OrderViewDocument]
}

func NewOrderRepository(writeDB, readDB *mongo.Database) port.OrderCommandRepository {
	return &OrderRepository{
		orders: NewBaseRepository[document.OrderDocument](writeDB, "orders"),
		views:  NewBaseRepository[document.OrderViewDocument](readDB, "order_views"),
	}
}

func (r *OrderRepository) Add(ctx context.Context, order *domain.Order) error {
	if err := r.orders.Create(ctx, document.ToOrderDocument(order)); err != nil {
		return err
	}

	r.projectOrder(ctx, order.ID())
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	if err := r.orders.Replace(ctx, string(order.ID()), document.ToOrderDocument(order)); err != nil {
		return err
	}

	r.projectOrder(ctx, order.ID())
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id domain.ID) error {
	if err := r.orders.DeleteByID(ctx, string(id)); err != nil {
		return err
	}

	if err := r.views.DeleteByID(ctx, string(id)); err != nil {
		logger.Error(ctx, "projection: order view delete failed", err, map[string]any{
			"order_id": id,
		})
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Order, error) {
	doc, err := r.orders.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

// projectOrder recomputes the order view from the write-side document: line
// totals and item_count are derived here, not taken from the caller.
func (r *OrderRepository) projectOrder(ctx context.Context, id domain.ID) {
	err := func() error {
		orderDoc, err := r.orders.FindByID(ctx, string(id))
		if err != nil {
			return err
		}

		items := make([]document.OrderItemViewDocument, len(orderDoc.Items))
		for i, item := range orderDoc.Items {
			items[i] = document.OrderItemViewDocument{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Total:     item.UnitPrice * int64(item.Quantity),
			}
		}

		view := &document.OrderViewDocument{
			ID:          orderDoc.ID,
			ClientID:    orderDoc.ClientID,
			OrderDate:   orderDoc.OrderDate,
			Status:      orderDoc.Status,
			ItemsDetail: items,
			ItemCount:   len(items),
			Total:       orderDoc.Total,
			CreatedAt:   orderDoc.CreatedAt,
			UpdatedAt:   orderDoc.UpdatedAt,
		}
		return r.views.Upsert(ctx, view.ID, view)
	}()
	if err != nil {
		logger.Error(ctx, "projection: order view failed", err, map[string]any{
			"order_id": id,
		})
	}
}
