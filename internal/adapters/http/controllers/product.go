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

// ProductController terminates the Products HTTP surface. Commands go
// through the command bus and answer 202 with an empty body; queries go
// through the query bus and answer the read-model DTOs.
type ProductController struct {
	commands *dispatch.CommandBus
	queries  *dispatch.QueryBus
	factory  *factory.ProductFactory
}

func NewProductController(commands *dispatch.CommandBus, queries *dispatch.QueryBus) *ProductController {
	return &ProductController{
		commands: commands,
		queries:  queries,
		factory:  factory.NewProductFactory(),
	}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Accepts a product creation command
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body dto.CreateProductRequest true "Product data"
// @Success     202
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     422 {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	_, err := pc.commands.Execute(c.Request.Context(), service.CreateProductCommand{Request: &request})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// UpdateProduct godoc
// @Summary     Update a product
// @Tags        products
// @Accept      json
// @Param       id      path string                   true "Product id"
// @Param       request body dto.UpdateProductRequest true "Product data"
// @Success     202
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	_, err := pc.commands.Execute(c.Request.Context(), service.UpdateProductCommand{
		ProductID: domain.ID(c.Param("id")),
		Request:   &request,
	})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// UpdateStock godoc
// @Summary     Deduct product stock
// @Description Applies a sale against the product's stock
// @Tags        products
// @Accept      json
// @Param       id      path string                 true "Product id"
// @Param       request body dto.UpdateStockRequest true "Sale data"
// @Success     202
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     422 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/stock [patch]
func (pc *ProductController) UpdateStock(c *gin.Context) {
	var request dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	_, err := pc.commands.Execute(c.Request.Context(), service.UpdateProductStockCommand{
		ProductID: domain.ID(c.Param("id")),
		Request:   &request,
	})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// GetAll godoc
// @Summary     List all products
// @Description Returns the denormalized product views
// @Tags        products
// @Produce     json
// @Success     200 {array} dto.ProductDTO
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	result, err := pc.queries.Execute(c.Request.Context(), service.GetAllProductsQuery{})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	views := result.([]*domain.ProductView)
	response := make([]dto.ProductDTO, len(views))
	for i, view := range views {
		response[i] = pc.factory.ViewToDTO(view)
	}

	c.JSON(http.StatusOK, response)
}

// GetProductInfo godoc
// @Summary     Product lookup
// @Description Inter-service product lookup against the write store
// @Tags        products
// @Produce     json
// @Param       id path string true "Product id"
// @Success     200 {object} dto.ProductInfoDTO
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetProductInfo(c *gin.Context) {
	result, err := pc.queries.Execute(c.Request.Context(), service.GetProductInfoQuery{
		ProductID: domain.ID(c.Param("id")),
	})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result.(*dto.ProductInfoDTO))
}

// GetProductDetail godoc
// @Summary     Product detail view
// @Description Returns the denormalized product view
// @Tags        products
// @Produce     json
// @Param       id path string true "Product id"
// @Success     200 {object} dto.ProductDTO
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/detail [get]
func (pc *ProductController) GetProductDetail(c *gin.Context) {
	result, err := pc.queries.Execute(c.Request.Context(), service.GetProductByIDQuery{
		ProductID: domain.ID(c.Param("id")),
	})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pc.factory.ViewToDTO(result.(*domain.ProductView)))
}
