package dto

// Command payloads bind with gin; read DTOs keep the Spanish wire keys of the
// existing query contract.

type CreateProductRequest struct {
	Name          string  `json:"nombre" binding:"required"`
	Description   string  `json:"descripcion" binding:"required"`
	Price         float64 `json:"precio" binding:"required,gt=0"`
	Stock         int     `json:"stock" binding:"gte=0"`
	Brand         string  `json:"marca"`
	Batch         string  `json:"lote"`
	ProductTypeID string  `json:"tipo_producto_id" binding:"required"`
}

type UpdateProductRequest struct {
	Name        string  `json:"nombre" binding:"required"`
	Description string  `json:"descripcion" binding:"required"`
	Price       float64 `json:"precio" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Brand       string  `json:"marca"`
	Batch       string  `json:"lote"`
}

type UpdateStockRequest struct {
	QuantitySold int    `json:"cantidad_vendida" binding:"required,gt=0"`
	Reason       string `json:"motivo"`
}

type CreateProductTypeRequest struct {
	Name        string `json:"nombre" binding:"required"`
	Description string `json:"descripcion" binding:"required"`
}

type ProductDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"nombre"`
	Description     string  `json:"descripcion"`
	Price           float64 `json:"precio"`
	Stock           int     `json:"stock"`
	Brand           string  `json:"marca"`
	Batch           string  `json:"lote"`
	TypeID          string  `json:"tipo_producto_id"`
	TypeName        string  `json:"tipo_producto_nombre"`
	TypeDescription string  `json:"tipo_producto_descripcion"`
	CreatedAt       string  `json:"fecha_creacion"`
	UpdatedAt       string  `json:"fecha_actualizacion"`
}

type ProductTypeDTO struct {
	ID           string `json:"id"`
	Name         string `json:"nombre"`
	Description  string `json:"descripcion"`
	ProductCount int    `json:"cantidad_productos"`
	CreatedAt    string `json:"fecha_creacion"`
	UpdatedAt    string `json:"fecha_actualizacion"`
}

// ProductInfoDTO is the inter-service lookup shape on GET /products/{id}.
// English keys; the Orders service consumes it.
type ProductInfoDTO struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Type  string  `json:"type"`
}
