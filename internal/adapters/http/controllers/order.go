package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medisupply/medisupply/internal/adapters/http/handlers"
	"github.com/medisupply/medisupply/internal/core/dispatch"
	"github.com/medisupply/medisupply/internal/core/domain"
	"github.com/medisupply/medisupply/internal/core/dto"
	"github.com/medisupply/medisupply/internal/core/factory"
	"github.com/medisupply/medisupply/internal/core/service"
	"github.com/medisupply/medisupply/internal/core/serviceerrors"
)

type OrderController struct {
	commands *dispatch.CommandBus
	queries  *dispatch.QueryBus
	factory  *factory.OrderFactory
}

func NewOrderController(commands *dispatch.CommandBus, queries *dispatch.QueryBus) *OrderController {
	return &OrderController{
		commands: commands,
		queries:  queries,
		factory:  factory.NewOrderFactory(),
	}
}

// CreateOrder godoc
// @Summary     Create an order
// @Description Accepts an order creation command; products and stock are
// @Description validated against the Products service before anything persists
// @Tags        orders
// @Accept      json
// @Param       request body dto.CreateOrderRequest true "Order data"
// @Success     202
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     422 {object} handlers.ErrorResponse
// @Router      /api/v1/orders [post]
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	_, err := oc.commands.Execute(c.Request.Context(), service.CreateOrderCommand{Request: &request})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// GetAll godoc
// @Summary     List orders
// @Description Returns all order views, optionally filtered by client
// @Tags        orders
// @Produce     json
// @Param       cliente_id query string false "Filter by client id"
// @Success     200 {array} dto.OrderDTO
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/orders [get]
func (oc *OrderController) GetAll(c *gin.Context) {
	var (
		result any
		err    error
	)
	if clientID := c.Query("cliente_id"); clientID != "" {
		result, err = oc.queries.Execute(c.Request.Context(), service.GetOrdersByClientQuery{
			ClientID: domain.ID(clientID),
		})
	} else {
		result, err = oc.queries.Execute(c.Request.Context(), service.GetAllOrdersQuery{})
	}
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	views := result.([]*domain.OrderView)
	response := make([]dto.OrderDTO, len(views))
	for i, view := range views {
		response[i] = oc.factory.ViewToDTO(view)
	}

	c.JSON(http.StatusOK, response)
}

// GetOrderByID godoc
// @Summary     Order detail
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order id"
// @Success     200 {object} dto.OrderDTO
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id} [get]
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	result, err := oc.queries.Execute(c.Request.Context(), service.GetOrderByIDQuery{
		OrderID: domain.ID(c.Param("id")),
	})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, oc.factory.ViewToDTO(result.(*domain.OrderView)))
}
