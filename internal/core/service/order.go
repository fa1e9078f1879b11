package service

import (
	"context"
	"fmt"

	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
	"github.com/medisupply/medisupply/internal/core/events"
	"github.com/medisupply/medisupply/internal/core/factory"
	"github.com/medisupply/medisupply/internal/core/logger"
	"github.com/medisupply/medisupply/internal/core/port"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

type OrderService struct {
	orders     port.OrderCommandRepository
	orderViews port.OrderQueryRepository
	products   port.ProductsClient
	factory    *factory.OrderFactory
	dispatcher *events.Dispatcher
}

func NewOrderService(
	orders port.OrderCommandRepository,
	orderViews port.OrderQueryRepository,
	products port.ProductsClient,
	dispatcher *events.Dispatcher,
) *OrderService {
	return &OrderService{
		orders:     orders,
		orderViews: orderViews,
		products:   products,
		factory:    factory.NewOrderFactory(),
		dispatcher: dispatcher,
	}
}

// CreateOrder validates every referenced product against the Products service
// before anything is persisted. Validation is all-or-nothing: the first
// missing product or short stock rejects the whole order, and nothing is
// written. Unit prices come from the lookup, never from the request.
func (s *OrderService) CreateOrder(ctx context.Context, request *dto.CreateOrderRequest) (*domain.Order, error) {
	if len(request.Items) == 0 {
		return nil, serviceerrors.NewInvalidRequestError("an order must contain at least one item")
	}

	// Duplicate product ids collapse into one validated line so stock is
	// checked against the summed quantity, not per line.
	requested := make([]port.ItemRequest, 0, len(request.Items))
	index := make(map[domain.ID]int, len(request.Items))
	for _, item := range request.Items {
		id := domain.ID(item.ProductID)
		if at, seen := index[id]; seen {
			requested[at].Quantity += item.Quantity
			continue
		}
		index[id] = len(requested)
		requested = append(requested, port.ItemRequest{ProductID: id, Quantity: item.Quantity})
	}

	validations, err := s.products.ValidateProductsAndStock(ctx, requested)
	if err != nil {
		logger.Error(ctx, "order: product validation failed", err, map[string]any{
			"client_id": request.ClientID,
		})
		return nil, serviceerrors.NewUnprocessableEntityError("could not validate products for the order")
	}

	for _, line := range requested {
		validation, ok := validations[line.ProductID]
		if !ok || !validation.Exists {
			return nil, serviceerrors.NewInvalidRequestError(
				fmt.Sprintf("product %s does not exist", line.ProductID))
		}
		if !validation.StockOK {
			return nil, serviceerrors.NewUnprocessableEntityError(fmt.Sprintf(
				"insufficient stock for product %s: available %d, requested %d",
				line.ProductID, validation.Available, validation.Requested))
		}
	}

	items := make([]domain.Item, len(requested))
	for i, line := range requested {
		items[i] = domain.Item{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: validations[line.ProductID].Product.Price,
		}
	}

	order, err := s.factory.Build(domain.ID(request.ClientID), items)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Add(ctx, order); err != nil {
		logger.Error(ctx, "order: create failed", err, map[string]any{
			"client_id": request.ClientID,
		})
		return nil, err
	}

	s.dispatcher.DispatchAll(ctx, order.PullEvents())

	logger.Info(ctx, "Order created", map[string]any{
		"order_id":  order.ID(),
		"client_id": order.ClientID,
		"items":     len(order.Items),
	})
	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id domain.ID) (*domain.OrderView, error) {
	return s.orderViews.GetByID(ctx, id)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]*domain.OrderView, error) {
	return s.orderViews.GetAll(ctx)
}

func (s *OrderService) GetOrdersByClient(ctx context.Context, clientID domain.ID) ([]*domain.OrderView, error) {
	return s.orderViews.GetByClientID(ctx, clientID)
}
