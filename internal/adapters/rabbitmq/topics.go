package rabbitmq

// routingKeys is the static event-type to routing-key table. Unknown event
// types fall back to the catch-all key instead of failing the publish.
var routingKeys = map[string]string{
	"ProductoCreado":           "productos.creado",
	"ProductoStockActualizado": "productos.stock_actualizado",
	"TipoProductoCreado":       "productos.tipo_creado",
	"PedidoCreado":             "pedidos.creado",
}

const defaultRoutingKey = "eventos.sin_ruta"

func RoutingKeyFor(eventType string) string {
	if key, ok := routingKeys[eventType]; ok {
		return key
	}
	return defaultRoutingKey
}
