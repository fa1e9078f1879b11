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

type ProductTypeController struct {
	commands       *dispatch.CommandBus
	queries        *dispatch.QueryBus
	typeFactory    *factory.ProductTypeFactory
	productFactory *factory.ProductFactory
}

func NewProductTypeController(commands *dispatch.CommandBus, queries *dispatch.QueryBus) *ProductTypeController {
	return &ProductTypeController{
		commands:       commands,
		queries:        queries,
		typeFactory:    factory.NewProductTypeFactory(),
		productFactory: factory.NewProductFactory(),
	}
}

// CreateProductType godoc
// @Summary     Create a product type
// @Tags        product-types
// @Accept      json
// @Param       request body dto.CreateProductTypeRequest true "Product type data"
// @Success     202
// @Failure     400 {object} handlers.ErrorResponse
// @Router      /api/v1/product-types [post]
func (tc *ProductTypeController) CreateProductType(c *gin.Context) {
	var request dto.CreateProductTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	_, err := tc.commands.Execute(c.Request.Context(), service.CreateProductTypeCommand{Request: &request})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// GetAll godoc
// @Summary     List all product types
// @Description Returns the type views with their product counts
// @Tags        product-types
// @Produce     json
// @Success     200 {array} dto.ProductTypeDTO
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/product-types [get]
func (tc *ProductTypeController) GetAll(c *gin.Context) {
	result, err := tc.queries.Execute(c.Request.Context(), service.GetAllProductTypesQuery{})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	views := result.([]*domain.ProductTypeView)
	response := make([]dto.ProductTypeDTO, len(views))
	for i, view := range views {
		response[i] = tc.typeFactory.ViewToDTO(view)
	}

	c.JSON(http.StatusOK, response)
}

// GetProducts godoc
// @Summary     List products of a type
// @Tags        product-types
// @Produce     json
// @Param       id path string true "Product type id"
// @Success     200 {array} dto.ProductDTO
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/product-types/{id}/products [get]
func (tc *ProductTypeController) GetProducts(c *gin.Context) {
	result, err := tc.queries.Execute(c.Request.Context(), service.GetProductsByTypeQuery{
		TypeID: domain.ID(c.Param("id")),
	})
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	views := result.([]*domain.ProductView)
	response := make([]dto.ProductDTO, len(views))
	for i, view := range views {
		response[i] = tc.productFactory.ViewToDTO(view)
	}

	c.JSON(http.StatusOK, response)
}
