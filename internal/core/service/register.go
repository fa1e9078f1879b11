package service

import (
	"context"

	"github.com/medisupply/medisupply/internal/core/dispatch"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
)

// Command and query messages. Each concrete type binds to exactly one handler
// at startup; dispatching an unbound type is a wiring bug and surfaces as
// dispatch.ErrNoHandler.

type CreateProductCommand struct {
	Request *dto.CreateProductRequest
}

type UpdateProductCommand struct {
	ProductID domain.ID
	Request   *dto.UpdateProductRequest
}

type UpdateProductStockCommand struct {
	ProductID domain.ID
	Request   *dto.UpdateStockRequest
}

type CreateProductTypeCommand struct {
	Request *dto.CreateProductTypeRequest
}

type CreateOrderCommand struct {
	Request *dto.CreateOrderRequest
}

type GetAllProductsQuery struct{}

type GetProductByIDQuery struct {
	ProductID domain.ID
}

type GetProductsByTypeQuery struct {
	TypeID domain.ID
}

type GetAllProductTypesQuery struct{}

type GetProductInfoQuery struct {
	ProductID domain.ID
}

type GetAllOrdersQuery struct{}

type GetOrderByIDQuery struct {
	OrderID domain.ID
}

type GetOrdersByClientQuery struct {
	ClientID domain.ID
}

// RegisterProductHandlers wires the Products service onto its buses.
func RegisterProductHandlers(commands *dispatch.CommandBus, queries *dispatch.QueryBus, svc *ProductService) {
	commands.Bind(CreateProductCommand{}, dispatch.Handle(
		func(ctx context.Context, cmd CreateProductCommand) (any, error) {
			return svc.CreateProduct(ctx, cmd.Request)
		}))
	commands.Bind(UpdateProductCommand{}, dispatch.Handle(
		func(ctx context.Context, cmd UpdateProductCommand) (any, error) {
			return svc.UpdateProduct(ctx, cmd.ProductID, cmd.Request)
		}))
	commands.Bind(UpdateProductStockCommand{}, dispatch.Handle(
		func(ctx context.Context, cmd UpdateProductStockCommand) (any, error) {
			return svc.DeductStock(ctx, cmd.ProductID, cmd.Request.QuantitySold, cmd.Request.Reason)
		}))
	commands.Bind(CreateProductTypeCommand{}, dispatch.Handle(
		func(ctx context.Context, cmd CreateProductTypeCommand) (any, error) {
			return svc.CreateProductType(ctx, cmd.Request)
		}))

	queries.Bind(GetAllProductsQuery{}, dispatch.Handle(
		func(ctx context.Context, _ GetAllProductsQuery) (any, error) {
			return svc.GetAllProducts(ctx)
		}))
	queries.Bind(GetProductByIDQuery{}, dispatch.Handle(
		func(ctx context.Context, q GetProductByIDQuery) (any, error) {
			return svc.GetProductByID(ctx, q.ProductID)
		}))
	queries.Bind(GetProductsByTypeQuery{}, dispatch.Handle(
		func(ctx context.Context, q GetProductsByTypeQuery) (any, error) {
			return svc.GetProductsByType(ctx, q.TypeID)
		}))
	queries.Bind(GetAllProductTypesQuery{}, dispatch.Handle(
		func(ctx context.Context, _ GetAllProductTypesQuery) (any, error) {
			return svc.GetAllProductTypes(ctx)
		}))
	queries.Bind(GetProductInfoQuery{}, dispatch.Handle(
		func(ctx context.Context, q GetProductInfoQuery) (any, error) {
			return svc.GetProductInfo(ctx, q.ProductID)
		}))
}

// RegisterOrderHandlers wires the Orders service onto its buses.
func RegisterOrderHandlers(commands *dispatch.CommandBus, queries *dispatch.QueryBus, svc *OrderService) {
	commands.Bind(CreateOrderCommand{}, dispatch.Handle(
		func(ctx context.Context, cmd CreateOrderCommand) (any, error) {
			return svc.CreateOrder(ctx, cmd.Request)
		}))

	queries.Bind(GetAllOrdersQuery{}, dispatch.Handle(
		func(ctx context.Context, _ GetAllOrdersQuery) (any, error) {
			return svc.GetAllOrders(ctx)
		}))
	queries.Bind(GetOrderByIDQuery{}, dispatch.Handle(
		func(ctx context.Context, q GetOrderByIDQuery) (any, error) {
			return svc.GetOrderByID(ctx, q.OrderID)
		}))
	queries.Bind(GetOrdersByClientQuery{}, dispatch.Handle(
		func(ctx context.Context, q GetOrdersByClientQuery) (any, error) {
			return svc.GetOrdersByClient(ctx, q.ClientID)
		}))
}

// RegisterStockEventHandler binds the PedidoCreado reaction on the Products
// side. The broker consumer re-enters through this bus.
func RegisterStockEventHandler(events *dispatch.EventBus, handler *StockOnOrderCreated) {
	events.Bind(domain.OrderCreated{}, dispatch.Handle(handler.Handle))
}
