package factory

import (
	"time"

	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

type OrderFactory struct{}

func NewOrderFactory() *OrderFactory {
	return &OrderFactory{}
}

// Build constructs the order from already-priced items. Unit prices come from
// the Products lookup at creation time; the total is computed here once and
// never re-derived.
func (f *OrderFactory) Build(clientID domain.ID, items []domain.Item) (*domain.Order, error) {
	if rule := domain.CheckRules(
		domain.OrderMustHaveItems{Items: items},
		domain.ItemQuantityMustBePositive{Items: items},
	); rule != nil {
		return nil, serviceerrors.NewInvalidRequestError(rule.Message())
	}

	order := domain.NewOrder(clientID, time.Now(), domain.OrderStatusPending, items)
	order.Record(domain.NewOrderCreated(order))
	return order, nil
}

func (f *OrderFactory) ViewToDTO(view *domain.OrderView) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, len(view.ItemsDetail))
	for i, item := range view.ItemsDetail {
		items[i] = dto.OrderItemDTO{
			ProductID: string(item.ProductID),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}
	return dto.OrderDTO{
		ID:        string(view.ID),
		ClientID:  string(view.ClientID),
		OrderDate: view.OrderDate.Format(time.RFC3339),
		Status:    string(view.Status),
		Items:     items,
		ItemCount: view.ItemCount,
		Total:     view.Total.ToValue(),
		CreatedAt: view.CreatedAt.Format(time.RFC3339),
		UpdatedAt: view.UpdatedAt.Format(time.RFC3339),
	}
}
