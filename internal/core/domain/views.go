package domain

import "time"

// Read-model records. They live in the denormalized query store and every
// field is recomputed from write-side state at projection time, never copied
// from caller-supplied values.

type ProductView struct {
	ID              ID
	Name            string
	Description     string
	Price           Amount
	Stock           int
	Brand           string
	Batch           string
	TypeID          ID
	TypeName        string
	TypeDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProductTypeView struct {
	ID           ID
	Name         string
	Description  string
	ProductCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItemView struct {
	ProductID ID      `json:"producto_id"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio"`
	Total     float64 `json:"total"`
}

type OrderView struct {
	ID        ID
	ClientID  ID
	OrderDate time.Time
	Status    OrderStatus
	// ItemsDetail is the serialized item list; ItemCount is derived from it
	// at projection time.
	ItemsDetail []OrderItemView
	ItemCount   int
	Total       Amount
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
