package domain

// ProductType is a shared lookup entity. Products reference it by id; the
// read model denormalizes its name and description into every product view.
type ProductType struct {
	Entity
	Name        Name
	Description Description
}

func NewProductType(name Name, description Description) *ProductType {
	pt := &ProductType{
		Entity:      NewEntity(),
		Name:        name,
		Description: description,
	}
	_ = pt.SetID(NextID())
	return pt
}

// RehydrateProductType rebuilds a persisted product type. Storage mappers are
// the only callers.
func RehydrateProductType(id ID, e Entity, name Name, description Description) *ProductType {
	pt := &ProductType{Entity: e, Name: name, Description: description}
	_ = pt.SetID(id)
	return pt
}

// Product is an aggregate root. It is the exclusive source of domain events
// about itself; callers drain them with PullEvents after persistence.
type Product struct {
	Entity
	Name        Name
	Description Description
	Price       Amount
	Stock       Stock
	Brand       Brand
	Batch       Batch
	TypeID      ID

	events []Event
}

func NewProduct(name Name, description Description, price Amount, stock Stock, brand Brand, batch Batch, typeID ID) *Product {
	p := &Product{
		Entity:      NewEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Brand:       brand,
		Batch:       batch,
		TypeID:      typeID,
	}
	_ = p.SetID(NextID())
	return p
}

func RehydrateProduct(id ID, e Entity, name Name, description Description, price Amount, stock Stock, brand Brand, batch Batch, typeID ID) *Product {
	p := &Product{
		Entity:      e,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Brand:       brand,
		Batch:       batch,
		TypeID:      typeID,
	}
	_ = p.SetID(id)
	return p
}

func (p *Product) Record(event Event) {
	p.events = append(p.events, event)
}

// PullEvents returns and clears the pending domain events.
func (p *Product) PullEvents() []Event {
	events := p.events
	p.events = nil
	return events
}

// UpdateStock replaces the stock value object and records the corresponding
// event. The caller persists and publishes.
func (p *Product) UpdateStock(newStock Stock, reason string) {
	previous := p.Stock
	p.Stock = newStock
	p.Touch()
	p.Record(NewProductStockUpdated(p.ID(), previous, newStock, reason))
}

type ProductCreated struct {
	BaseEvent
	ProductID   ID
	Name        string
	Description string
	Price       float64
	Stock       int
	Brand       string
	Batch       string
	TypeID      ID
}

func NewProductCreated(p *Product) ProductCreated {
	return ProductCreated{
		BaseEvent:   NewBaseEvent(),
		ProductID:   p.ID(),
		Name:        string(p.Name),
		Description: string(p.Description),
		Price:       p.Price.ToValue(),
		Stock:       int(p.Stock),
		Brand:       string(p.Brand),
		Batch:       string(p.Batch),
		TypeID:      p.TypeID,
	}
}

func (e ProductCreated) EventType() string {
	return "ProductoCreado"
}

func (e ProductCreated) Payload() map[string]any {
	return map[string]any{
		"producto_id":      string(e.ProductID),
		"nombre":           e.Name,
		"descripcion":      e.Description,
		"precio":           e.Price,
		"stock":            e.Stock,
		"marca":            e.Brand,
		"lote":             e.Batch,
		"tipo_producto_id": string(e.TypeID),
	}
}

type ProductStockUpdated struct {
	BaseEvent
	ProductID     ID
	PreviousStock Stock
	NewStock      Stock
	Reason        string
}

func NewProductStockUpdated(productID ID, previous, current Stock, reason string) ProductStockUpdated {
	return ProductStockUpdated{
		BaseEvent:     NewBaseEvent(),
		ProductID:     productID,
		PreviousStock: previous,
		NewStock:      current,
		Reason:        reason,
	}
}

func (e ProductStockUpdated) EventType() string {
	return "ProductoStockActualizado"
}

func (e ProductStockUpdated) Payload() map[string]any {
	return map[string]any{
		"producto_id":    string(e.ProductID),
		"stock_anterior": int(e.PreviousStock),
		"stock_nuevo":    int(e.NewStock),
		"motivo":         e.Reason,
	}
}

type ProductTypeCreated struct {
	BaseEvent
	TypeID      ID
	Name        string
	Description string
}

func NewProductTypeCreated(pt *ProductType) ProductTypeCreated {
	return ProductTypeCreated{
		BaseEvent:   NewBaseEvent(),
		TypeID:      pt.ID(),
		Name:        string(pt.Name),
		Description: string(pt.Description),
	}
}

func (e ProductTypeCreated) EventType() string {
	return "TipoProductoCreado"
}

func (e ProductTypeCreated) Payload() map[string]any {
	return map[string]any{
		"tipo_producto_id": string(e.TypeID),
		"nombre":           e.Name,
		"descripcion":      e.Description,
	}
}
