package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest cuerpo para crear un producto.
// Stock es opcional (default 0); PorPeso es opcional (default false).
type CreateProductoRequest struct {
	Nombre  string           `json:"nombre"`
	Precio  *decimal.Decimal `json:"precio"`
	Stock   *decimal.Decimal `json:"stock"`
	PorPeso *bool            `json:"por_peso"`
}

// ProductoResponse representación JSON de un producto.
type ProductoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     decimal.Decimal `json:"stock"`
	PorPeso   bool            `json:"por_peso"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ListaPOSResponse datos para la pantalla de venta: catálogo completo + métodos de pago.
type ListaPOSResponse struct {
	Productos   []ProductoResponse   `json:"productos"`
	MetodosPago []MetodoPagoResponse `json:"metodos_pago"`
}
