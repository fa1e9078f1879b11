package service

import (
	"context"
	"errors"
	"testing"

	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
	"github.com/medisupply/medisupply/internal/core/events"
	eventsmock "github.com/medisupply/medisupply/internal/core/events/mock"
	"github.com/medisupply/medisupply/internal/core/port"
	"github.com/medisupply/medisupply/internal/core/port/mock"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

type orderServiceMocks struct {
	orders    *mock.MockOrderCommandRepository
	views     *mock.MockOrderQueryRepository
	client    *mock.MockProductsClient
	publisher *eventsmock.MockPublisher
}

func setupOrderService(t *testing.T) (*OrderService, orderServiceMocks) {
	ctrl := gomock.NewController(t)
	m := orderServiceMocks{
		orders:    mock.NewMockOrderCommandRepository(ctrl),
		views:     mock.NewMockOrderQueryRepository(ctrl),
		client:    mock.NewMockProductsClient(ctrl),
		publisher: eventsmock.NewMockPublisher(ctrl),
	}
	dispatcher := events.NewDispatcher()
	dispatcher.RegisterPublisher(m.publisher)
	svc := NewOrderService(m.orders, m.views, m.client, dispatcher)
	return svc, m
}

func validatedProduct(id domain.ID, price domain.Amount, stock int) *port.ProductInfo {
	return &port.ProductInfo{ID: id, Name: "Producto " + string(id), Price: price, Stock: stock, Type: "Analgesico"}
}

func TestOrderService_CreateOrder(t *testing.T) {
	const productA = domain.ID("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	const productB = domain.ID("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")

	t.Run("success prices lines from the lookup", func(t *testing.T) {
		svc, m := setupOrderService(t)
		request := &dto.CreateOrderRequest{
			ClientID: "client-1",
			Items: []dto.OrderItemRequest{
				{ProductID: string(productA), Quantity: 2},
				{ProductID: string(productB), Quantity: 1},
			},
		}

		m.client.EXPECT().
			ValidateProductsAndStock(gomock.Any(), gomock.Any()).
			Return(map[domain.ID]port.ItemValidation{
				productA: {Exists: true, StockOK: true, Available: 10, Requested: 2, Product: validatedProduct(productA, 1050, 10)},
				productB: {Exists: true, StockOK: true, Available: 5, Requested: 1, Product: validatedProduct(productB, 399, 5)},
			}, nil)
		m.orders.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			Return(nil)
		m.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event domain.Event) error {
				if event.EventType() != "PedidoCreado" {
					t.Fatalf("expected PedidoCreado, got %s", event.EventType())
				}
				return nil
			})

		order, err := svc.CreateOrder(context.Background(), request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		// 2*1050 + 1*399, from the lookup prices only
		if order.Total != 2499 {
			t.Fatalf("expected total 2499, got %d", order.Total)
		}
		if order.Status != domain.OrderStatusPending {
			t.Fatalf("expected PENDIENTE, got %s", order.Status)
		}
	})

	t.Run("duplicate product ids collapse before validation", func(t *testing.T) {
		svc, m := setupOrderService(t)
		request := &dto.CreateOrderRequest{
			ClientID: "client-1",
			Items: []dto.OrderItemRequest{
				{ProductID: string(productA), Quantity: 2},
				{ProductID: string(productA), Quantity: 3},
			},
		}

		m.client.EXPECT().
			ValidateProductsAndStock(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, items []port.ItemRequest) (map[domain.ID]port.ItemValidation, error) {
				if len(items) != 1 {
					t.Fatalf("expected 1 distinct line, got %d", len(items))
				}
				if items[0].Quantity != 5 {
					t.Fatalf("expected summed quantity 5, got %d", items[0].Quantity)
				}
				return map[domain.ID]port.ItemValidation{
					productA: {Exists: true, StockOK: true, Available: 10, Requested: 5, Product: validatedProduct(productA, 1050, 10)},
				}, nil
			})
		m.orders.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		order, err := svc.CreateOrder(context.Background(), request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(order.Items) != 1 || order.Items[0].Quantity != 5 {
			t.Fatalf("expected one merged item of 5, got %+v", order.Items)
		}
	})

	t.Run("empty order rejected", func(t *testing.T) {
		svc, _ := setupOrderService(t)

		_, err := svc.CreateOrder(context.Background(), &dto.CreateOrderRequest{ClientID: "client-1"})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("missing product rejects the whole order", func(t *testing.T) {
		svc, m := setupOrderService(t)
		request := &dto.CreateOrderRequest{
			ClientID: "client-1",
			Items:    []dto.OrderItemRequest{{ProductID: string(productA), Quantity: 1}},
		}

		m.client.EXPECT().
			ValidateProductsAndStock(gomock.Any(), gomock.Any()).
			Return(map[domain.ID]port.ItemValidation{
				productA: {Exists: false, Requested: 1},
			}, nil)

		_, err := svc.CreateOrder(context.Background(), request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("insufficient stock names the failing product", func(t *testing.T) {
		svc, m := setupOrderService(t)
		request := &dto.CreateOrderRequest{
			ClientID: "client-1",
			Items: []dto.OrderItemRequest{
				{ProductID: string(productA), Quantity: 1},
				{ProductID: string(productB), Quantity: 8},
			},
		}

		m.client.EXPECT().
			ValidateProductsAndStock(gomock.Any(), gomock.Any()).
			Return(map[domain.ID]port.ItemValidation{
				productA: {Exists: true, StockOK: true, Available: 10, Requested: 1, Product: validatedProduct(productA, 1050, 10)},
				productB: {Exists: true, StockOK: false, Available: 5, Requested: 8, Product: validatedProduct(productB, 399, 5)},
			}, nil)

		_, err := svc.CreateOrder(context.Background(), request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			t.Fatalf("expected KindUnprocessableEntity, got %v", err)
		}
		want := "insufficient stock for product " + string(productB) + ": available 5, requested 8"
		if err.Error() != want {
			t.Fatalf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("validation transport failure is unprocessable", func(t *testing.T) {
		svc, m := setupOrderService(t)
		request := &dto.CreateOrderRequest{
			ClientID: "client-1",
			Items:    []dto.OrderItemRequest{{ProductID: string(productA), Quantity: 1}},
		}

		m.client.EXPECT().
			ValidateProductsAndStock(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.CreateOrder(context.Background(), request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
			t.Fatalf("expected KindUnprocessableEntity, got %v", err)
		}
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		svc, m := setupOrderService(t)
		request := &dto.CreateOrderRequest{
			ClientID: "client-1",
			Items:    []dto.OrderItemRequest{{ProductID: string(productA), Quantity: 1}},
		}

		m.client.EXPECT().
			ValidateProductsAndStock(gomock.Any(), gomock.Any()).
			Return(map[domain.ID]port.ItemValidation{
				productA: {Exists: true, StockOK: true, Available: 10, Requested: 1, Product: validatedProduct(productA, 1050, 10)},
			}, nil)
		m.orders.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := svc.CreateOrder(context.Background(), request)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestOrderService_GetOrdersByClient(t *testing.T) {
	svc, m := setupOrderService(t)
	views := []*domain.OrderView{{ID: "o1", ClientID: "client-1"}}

	m.views.EXPECT().
		GetByClientID(gomock.Any(), domain.ID("client-1")).
		Return(views, nil)

	got, err := svc.GetOrdersByClient(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "o1" {
		t.Fatalf("unexpected views %+v", got)
	}
}
