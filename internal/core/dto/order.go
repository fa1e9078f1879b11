package dto

type OrderItemRequest struct {
	ProductID string `json:"producto_id" binding:"required"`
	Quantity  int    `json:"cantidad" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	ClientID string             `json:"cliente_id" binding:"required"`
	Items    []OrderItemRequest `json:"items" binding:"required"`
}

type OrderItemDTO struct {
	ProductID string  `json:"producto_id"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio"`
	Total     float64 `json:"total"`
}

type OrderDTO struct {
	ID        string         `json:"id"`
	ClientID  string         `json:"cliente_id"`
	OrderDate string         `json:"fecha_pedido"`
	Status    string         `json:"estado"`
	Items     []OrderItemDTO `json:"items_detail"`
	ItemCount int            `json:"item_count"`
	Total     float64        `json:"total"`
	CreatedAt string         `json:"fecha_creacion"`
	UpdatedAt string         `json:"fecha_actualizacion"`
}
